package movies

// ListQuery is the storefront browse query
type ListQuery struct {
	Genre    string `form:"genre"`
	Language string `form:"language"`
	Status   string `form:"status" binding:"omitempty,oneof=all coming_soon now_showing ended"`
	Query    string `form:"q"`
	Sort     string `form:"sort" binding:"omitempty,oneof=rating title release_date"`
}

// AdminListQuery is the back-office catalogue query
type AdminListQuery struct {
	Query  string `form:"q"`
	Status string `form:"status" binding:"omitempty,oneof=all coming_soon now_showing ended"`
}

type CreateMovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	PosterURL   string   `json:"poster_url" validate:"omitempty,url"`
	BackdropURL string   `json:"backdrop_url" validate:"omitempty,url"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
	Duration    int      `json:"duration" validate:"required,min=1,max=600"`
	Genre       []string `json:"genre" validate:"required,min=1,dive,required"`
	Language    string   `json:"language" validate:"required"`
	ReleaseDate string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	Synopsis    string   `json:"synopsis" validate:"max=2000"`
	Director    string   `json:"director" validate:"required"`
	Cast        []string `json:"cast"`
	AgeRating   string   `json:"age_rating" validate:"required,oneof=G PG PG-13 R NC-17"`
	Status      string   `json:"status" validate:"omitempty,oneof=coming_soon now_showing ended"`
}

type UpdateMovieRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=255"`
	PosterURL   *string   `json:"poster_url" validate:"omitempty,url"`
	BackdropURL *string   `json:"backdrop_url" validate:"omitempty,url"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Duration    *int      `json:"duration" validate:"omitempty,min=1,max=600"`
	Genre       []string  `json:"genre" validate:"omitempty,min=1,dive,required"`
	Language    *string   `json:"language"`
	ReleaseDate *string   `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Synopsis    *string   `json:"synopsis" validate:"omitempty,max=2000"`
	Director    *string   `json:"director"`
	Cast        []string  `json:"cast"`
	AgeRating   *string   `json:"age_rating" validate:"omitempty,oneof=G PG PG-13 R NC-17"`
	Status      *string   `json:"status" validate:"omitempty,oneof=coming_soon now_showing ended"`
}
