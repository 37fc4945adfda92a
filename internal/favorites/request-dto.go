package favorites

type AddFavoriteRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
}
