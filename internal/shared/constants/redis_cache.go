package constants

import (
	"fmt"
	"time"
)

// Cache keys follow cineplex:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_LONG   = 24 * time.Hour
	TTL_STATIC_MEDIUM = 12 * time.Hour
)

const (
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour
	TTL_SEMI_STATIC_QUICK = 15 * time.Minute
)

const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute
	TTL_DYNAMIC_SHORT  = 5 * time.Minute
	TTL_DYNAMIC_QUICK  = 2 * time.Minute
)

const (
	TTL_REALTIME_SHORT = 30 * time.Second
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "cineplex"
)

// ================== MOVIES ==================

const (
	CACHE_KEY_MOVIES_LIST  = CACHE_PREFIX + ":movies:list"
	CACHE_KEY_MOVIE_DETAIL = CACHE_PREFIX + ":movies:detail:"  // + movie-id
	CACHE_KEY_GENRES       = CACHE_PREFIX + ":movies:genres"
)

const (
	TTL_MOVIES_LIST  = TTL_SEMI_STATIC_QUICK
	TTL_MOVIE_DETAIL = TTL_SEMI_STATIC_SHORT
)

// ================== HALLS ==================

const (
	CACHE_KEY_CINEMAS    = CACHE_PREFIX + ":halls:cinemas"
	CACHE_KEY_HALL_SEATS = CACHE_PREFIX + ":halls:seats:" // + hall-id
)

const (
	TTL_CINEMAS    = TTL_STATIC_MEDIUM
	TTL_HALL_SEATS = TTL_STATIC_LONG
)

// ================== CONCESSIONS ==================

const (
	CACHE_KEY_CONCESSIONS = CACHE_PREFIX + ":concessions:items"
)

const (
	TTL_CONCESSIONS = TTL_SEMI_STATIC_QUICK
)

// ================== SELECTION / AUTH ==================

const (
	CACHE_KEY_SELECTION   = CACHE_PREFIX + ":selection:user:" // + user-id
	CACHE_KEY_RESET_TOKEN = CACHE_PREFIX + ":auth:reset:"     // + token
	CACHE_KEY_REVOKED     = CACHE_PREFIX + ":auth:revoked:"   // + token id
)

// ================== ANALYTICS ==================

const (
	CACHE_KEY_ANALYTICS_DASHBOARD = CACHE_PREFIX + ":analytics:dashboard"
	CACHE_KEY_ANALYTICS_REPORTS   = CACHE_PREFIX + ":analytics:reports"
)

const (
	TTL_ANALYTICS_DASHBOARD = TTL_DYNAMIC_QUICK
	TTL_ANALYTICS_REPORTS   = TTL_DYNAMIC_MEDIUM
)

// ================== KEY BUILDERS ==================

// BuildMoviesListKey builds the key for a filtered movie listing
func BuildMoviesListKey(genre, language, status, query, sort string) string {
	return fmt.Sprintf("%s:genre:%s:lang:%s:status:%s:q:%s:sort:%s", CACHE_KEY_MOVIES_LIST, genre, language, status, query, sort)
}

// BuildMovieDetailKey builds the key for one movie
func BuildMovieDetailKey(movieID string) string {
	return CACHE_KEY_MOVIE_DETAIL + movieID
}

// BuildHallSeatsKey builds the key for a hall's seat layout
func BuildHallSeatsKey(hallID string) string {
	return CACHE_KEY_HALL_SEATS + hallID
}

// BuildSelectionKey builds the key for a user's in-progress booking
func BuildSelectionKey(userID string) string {
	return CACHE_KEY_SELECTION + userID
}

// BuildResetTokenKey builds the key for a password reset token
func BuildResetTokenKey(token string) string {
	return CACHE_KEY_RESET_TOKEN + token
}

// BuildRevokedTokenKey builds the key for a logged-out refresh token
func BuildRevokedTokenKey(jti string) string {
	return CACHE_KEY_REVOKED + jti
}

// Patterns for invalidation

// MoviesPattern matches every movie cache entry
func MoviesPattern() string {
	return CACHE_PREFIX + ":movies:*"
}

// AnalyticsPattern matches every analytics cache entry
func AnalyticsPattern() string {
	return CACHE_PREFIX + ":analytics:*"
}
