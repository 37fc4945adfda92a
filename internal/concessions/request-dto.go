package concessions

// ListQuery filters the storefront catalogue
type ListQuery struct {
	Category string `form:"category"`
	Query    string `form:"q"`
}

// UpdateItemRequest adjusts price, stock or availability from the back office
type UpdateItemRequest struct {
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	StockLevel  *int     `json:"stock_level" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available"`
}
