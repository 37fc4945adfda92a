package favorites

import (
	"time"

	"cineplex/internal/movies"
	"cineplex/internal/users"
)

// Favorite is a movie a member saved to their watch list. The pair is the key,
// so a movie appears at most once per member.
type Favorite struct {
	UserID    string       `json:"user_id" gorm:"primaryKey;size:64"`
	User      users.User   `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	MovieID   string       `json:"movie_id" gorm:"primaryKey;size:64;index"`
	Movie     movies.Movie `json:"movie" gorm:"foreignKey:MovieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time    `json:"created_at"`
}

func (Favorite) TableName() string { return "user_favorites" }
