package favorites

import (
	"time"

	"cineplex/internal/movies"
)

type FavoriteResponse struct {
	MovieID string       `json:"movie_id"`
	AddedAt time.Time    `json:"added_at"`
	Movie   movies.Movie `json:"movie"`
}

// FavoritesResponse is the member's watch list
type FavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	Count     int                `json:"count"`
}

type FavoriteStatusResponse struct {
	MovieID    string `json:"movie_id"`
	IsFavorite bool   `json:"is_favorite"`
}
