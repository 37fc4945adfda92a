package concessions

import "time"

type Category string

const (
	CategoryAll     Category = "All"
	CategoryPopcorn Category = "Popcorn"
	CategoryDrinks  Category = "Drinks"
	CategorySnacks  Category = "Snacks"
	CategoryCombos  Category = "Combos"
)

// Item is a food or drink sold alongside tickets
type Item struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null;check:price >= 0"`
	Category    Category  `json:"category" gorm:"size:20;index;not null"`
	ImageURL    string    `json:"image_url"`
	StockLevel  int       `json:"stock_level" gorm:"not null;default:0;check:stock_level >= 0"`
	IsAvailable bool      `json:"is_available" gorm:"not null;default:true"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Item) TableName() string { return "concession_items" }

// InStock reports whether qty units can be sold
func (i *Item) InStock(qty int) bool {
	return i.IsAvailable && i.StockLevel >= qty
}
