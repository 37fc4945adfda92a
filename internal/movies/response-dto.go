package movies

// CatalogueFacets lists the values the browse filters accept
type CatalogueFacets struct {
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
}

// AdminMovieList is the back-office catalogue with its unfiltered size
type AdminMovieList struct {
	Movies []Movie `json:"movies"`
	Shown  int     `json:"shown"`
	Total  int     `json:"total"`
}
