package movies

import (
	"sort"
	"strings"
)

// AllFilter is the passthrough value for genre, language and status filters
const AllFilter = "all"

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, AllFilter)
}

// FilterByGenre keeps movies whose genre list contains genre, ignoring case
func FilterByGenre(movies []Movie, genre string) []Movie {
	if isAll(genre) {
		return movies
	}
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		for _, g := range m.Genre {
			if strings.EqualFold(g, genre) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func FilterByStatus(movies []Movie, status Status) []Movie {
	if isAll(string(status)) {
		return movies
	}
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

func FilterByLanguage(movies []Movie, language string) []Movie {
	if isAll(language) {
		return movies
	}
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if strings.EqualFold(m.Language, language) {
			out = append(out, m)
		}
	}
	return out
}

// Search matches a case-insensitive substring against title, director, cast
// and genre. Results keep store order.
func Search(movies []Movie, query string) []Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return movies
	}
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Director), q) ||
			containsFold(m.Cast, q) ||
			containsFold(m.Genre, q) {
			out = append(out, m)
		}
	}
	return out
}

// FilterAdmin is the back-office catalogue filter: title or genre substring
// plus a status, where "all" disables the status check.
func FilterAdmin(movies []Movie, query string, status string) []Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		matchesSearch := q == "" || strings.Contains(strings.ToLower(m.Title), q) || containsFold(m.Genre, q)
		matchesStatus := isAll(status) || string(m.Status) == status
		if matchesSearch && matchesStatus {
			out = append(out, m)
		}
	}
	return out
}

// Genres returns the distinct genres across movies, sorted
func Genres(movies []Movie) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range movies {
		for _, g := range m.Genre {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Languages returns the distinct languages across movies, sorted
func Languages(movies []Movie) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range movies {
		if m.Language != "" && !seen[m.Language] {
			seen[m.Language] = true
			out = append(out, m.Language)
		}
	}
	sort.Strings(out)
	return out
}

type SortKey string

const (
	SortByRating      SortKey = "rating"
	SortByTitle       SortKey = "title"
	SortByReleaseDate SortKey = "release_date"
)

// Sort orders a copy of movies: rating and release date descending, title ascending.
// Unknown keys keep the input order.
func Sort(movies []Movie, key SortKey) []Movie {
	out := make([]Movie, len(movies))
	copy(out, movies)

	switch key {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortByTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortByReleaseDate:
		// ISO dates sort lexically
		sort.SliceStable(out, func(i, j int) bool { return out[i].ReleaseDate > out[j].ReleaseDate })
	}
	return out
}

// Apply runs the storefront pipeline: search, genre, language, status, then sort
func Apply(movies []Movie, q ListQuery) []Movie {
	result := Search(movies, q.Query)
	result = FilterByGenre(result, q.Genre)
	result = FilterByLanguage(result, q.Language)
	result = FilterByStatus(result, Status(q.Status))
	if q.Sort != "" {
		result = Sort(result, SortKey(q.Sort))
	}
	return result
}

func containsFold(values []string, lowerQuery string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}
