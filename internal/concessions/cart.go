package concessions

// CartLine is one item in a cart with the price it was added at
type CartLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is an immutable concessions cart. Every change returns a new Cart.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) index(itemID string) int {
	for i, l := range c.Lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// Add puts one unit of item in the cart. Unavailable items are ignored.
func (c Cart) Add(item *Item) Cart {
	if item == nil || !item.IsAvailable {
		return c
	}
	out := c.clone()
	if i := out.index(item.ID); i >= 0 {
		out.Lines[i].Quantity++
		return out
	}
	out.Lines = append(out.Lines, CartLine{ItemID: item.ID, Name: item.Name, Price: item.Price, Quantity: 1})
	return out
}

// Remove drops an item entirely
func (c Cart) Remove(itemID string) Cart {
	out := Cart{Lines: make([]CartLine, 0, len(c.Lines))}
	for _, l := range c.Lines {
		if l.ItemID != itemID {
			out.Lines = append(out.Lines, l)
		}
	}
	return out
}

// SetQuantity changes the quantity of an item already in the cart; q <= 0 removes it
func (c Cart) SetQuantity(itemID string, q int) Cart {
	if q <= 0 {
		return c.Remove(itemID)
	}
	i := c.index(itemID)
	if i < 0 {
		return c
	}
	out := c.clone()
	out.Lines[i].Quantity = q
	return out
}

func (c Cart) Clear() Cart {
	return Cart{Lines: []CartLine{}}
}

func (c Cart) Quantity(itemID string) int {
	if i := c.index(itemID); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

func (c Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (c Cart) TotalItems() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Quantities maps item id to quantity
func (c Cart) Quantities() map[string]int {
	out := make(map[string]int, len(c.Lines))
	for _, l := range c.Lines {
		out[l.ItemID] = l.Quantity
	}
	return out
}
