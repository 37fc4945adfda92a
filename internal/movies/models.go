package movies

import "time"

type Status string

const (
	StatusComingSoon Status = "coming_soon"
	StatusNowShowing Status = "now_showing"
	StatusEnded      Status = "ended"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusComingSoon, StatusNowShowing, StatusEnded:
		return true
	}
	return false
}

type AgeRating string

const (
	RatedG    AgeRating = "G"
	RatedPG   AgeRating = "PG"
	RatedPG13 AgeRating = "PG-13"
	RatedR    AgeRating = "R"
	RatedNC17 AgeRating = "NC-17"
)

type Movie struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Title       string    `json:"title" gorm:"not null;size:255;index"`
	PosterURL   string    `json:"poster_url" gorm:"size:500"`
	BackdropURL string    `json:"backdrop_url" gorm:"size:500"`
	Rating      float64   `json:"rating" gorm:"check:rating >= 0"`
	Duration    int       `json:"duration"`
	Genre       []string  `json:"genre" gorm:"serializer:json"`
	Language    string    `json:"language" gorm:"size:50"`
	ReleaseDate string    `json:"release_date" gorm:"size:10"`
	Synopsis    string    `json:"synopsis" gorm:"type:text"`
	Director    string    `json:"director" gorm:"size:255"`
	Cast        []string  `json:"cast" gorm:"serializer:json"`
	AgeRating   AgeRating `json:"age_rating" gorm:"size:10"`
	Status      Status    `json:"status" gorm:"size:20;index;default:'coming_soon'"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Movie) TableName() string { return "movies" }

// IsBookable reports whether showtimes of this movie can be sold
func (m *Movie) IsBookable() bool {
	return m.Status == StatusNowShowing
}
