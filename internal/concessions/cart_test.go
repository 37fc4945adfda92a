package concessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	popcorn = &Item{ID: "ci1", Name: "Large Popcorn", Price: 12, Category: CategoryPopcorn, StockLevel: 100, IsAvailable: true}
	coke    = &Item{ID: "ci3", Name: "Large Coke", Price: 8, Category: CategoryDrinks, StockLevel: 200, IsAvailable: true}
	soldOut = &Item{ID: "ci9", Name: "Medium Popcorn", Price: 9, Category: CategoryPopcorn, IsAvailable: false}
)

func TestCart_AddAndTotals(t *testing.T) {
	var cart Cart
	assert.True(t, cart.IsEmpty())

	cart = cart.Add(popcorn).Add(popcorn).Add(coke).Add(soldOut).Add(nil)

	assert.Equal(t, 2, cart.Quantity("ci1"))
	assert.Equal(t, 1, cart.Quantity("ci3"))
	assert.Equal(t, 0, cart.Quantity("ci9"))
	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 32.0, cart.TotalPrice())
	assert.Len(t, cart.Lines, 2)
}

func TestCart_IsImmutable(t *testing.T) {
	base := Cart{}.Add(popcorn)
	more := base.Add(popcorn)

	assert.Equal(t, 1, base.Quantity("ci1"))
	assert.Equal(t, 2, more.Quantity("ci1"))
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	cart := Cart{}.Add(popcorn).Add(coke)

	cart = cart.SetQuantity("ci1", 5)
	assert.Equal(t, 5, cart.Quantity("ci1"))

	// Unknown ids are not added by SetQuantity
	cart = cart.SetQuantity("ci7", 2)
	assert.Equal(t, 0, cart.Quantity("ci7"))

	cart = cart.SetQuantity("ci3", 0)
	assert.Equal(t, 0, cart.Quantity("ci3"))
	assert.Len(t, cart.Lines, 1)

	cart = cart.Remove("ci1")
	assert.True(t, cart.IsEmpty())

	assert.True(t, Cart{}.Add(coke).Clear().IsEmpty())
}
