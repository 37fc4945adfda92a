package fixtures

import (
	"cineplex/internal/concessions"
	"cineplex/internal/halls"
	"cineplex/internal/membership"
	"cineplex/internal/users"
)

// DemoPassword signs in every generated account
const DemoPassword = "password123"

type hallSpec struct {
	id          string
	name        string
	hallType    halls.HallType
	rows        int
	seatsPerRow int
	vipRows     bool
}

var hallSpecs = []hallSpec{
	{"h1", "Hall 1", halls.HallIMAX, 10, 12, true},
	{"h2", "Hall 2", halls.HallDolby, 8, 10, true},
	{"h3", "Hall 3", halls.HallStandard, 12, 12, false},
	{"h4", "Hall 4", halls.Hall4DX, 6, 10, true},
}

// showSlots are the daily screening times a movie draws from
var showSlots = []string{"10:30", "13:00", "15:30", "18:00", "20:30", "23:00"}

func cinema() halls.Cinema {
	return halls.Cinema{
		ID:       "c1",
		Name:     "Galaxy Cineplex",
		Location: "KLCC, Kuala Lumpur",
		Address:  "Level 3, Suria KLCC, Kuala Lumpur City Centre, 50088",
		Phone:    "+60 3-2382 0000",
		Email:    "klcc@galaxycineplex.com",
		Status:   halls.StatusActive,
	}
}

func concessionCatalog() []concessions.Item {
	item := func(id, name, desc string, price float64, cat concessions.Category, img string, stock int) concessions.Item {
		return concessions.Item{ID: id, Name: name, Description: desc, Price: price, Category: cat, ImageURL: img, StockLevel: stock, IsAvailable: true}
	}
	return []concessions.Item{
		item("ci1", "Large Popcorn", "Buttery, freshly popped goodness", 12, concessions.CategoryPopcorn, "🍿", 100),
		item("ci2", "Caramel Popcorn", "Sweet caramelized delight", 14, concessions.CategoryPopcorn, "🍿", 80),
		item("ci3", "Large Coke", "Ice-cold refreshment", 8, concessions.CategoryDrinks, "🥤", 200),
		item("ci4", "Iced Latte", "Premium coffee blend", 12, concessions.CategoryDrinks, "☕", 50),
		item("ci5", "Nachos Grande", "Loaded with cheese & jalapeños", 15, concessions.CategorySnacks, "🧀", 60),
		item("ci6", "Hot Dog", "Classic cinema hot dog", 10, concessions.CategorySnacks, "🌭", 75),
		item("ci7", "Movie Combo", "Large popcorn + 2 drinks", 25, concessions.CategoryCombos, "🎬", 50),
		item("ci8", "Premium Combo", "Large popcorn + 2 drinks + nachos", 38, concessions.CategoryCombos, "⭐", 30),
		item("ci9", "Medium Popcorn", "Perfect size for one", 9, concessions.CategoryPopcorn, "🍿", 120),
		item("ci10", "Cheese Popcorn", "Savory cheddar flavored", 13, concessions.CategoryPopcorn, "🍿", 70),
		item("ci11", "Sprite", "Lemon-lime refreshment", 8, concessions.CategoryDrinks, "🥤", 180),
		item("ci12", "Bottled Water", "Pure mineral water", 5, concessions.CategoryDrinks, "💧", 250),
		item("ci13", "Orange Juice", "Freshly squeezed", 10, concessions.CategoryDrinks, "🍊", 80),
		item("ci14", "Candy Mix", "Assorted theater candies", 8, concessions.CategorySnacks, "🍬", 100),
		item("ci15", "Pretzel Bites", "Warm with cheese dip", 12, concessions.CategorySnacks, "🥨", 50),
		item("ci16", "Chicken Tenders", "Crispy with honey mustard", 16, concessions.CategorySnacks, "🍗", 40),
		item("ci17", "Ice Cream Cup", "Vanilla or chocolate", 9, concessions.CategorySnacks, "🍦", 60),
		item("ci18", "Family Combo", "2 large popcorn + 4 drinks", 45, concessions.CategoryCombos, "👨‍👩‍👧‍👦", 25),
		item("ci19", "Date Night Combo", "Popcorn + 2 drinks + candy", 32, concessions.CategoryCombos, "💑", 35),
		item("ci20", "Kids Combo", "Small popcorn + juice + candy", 18, concessions.CategoryCombos, "🧒", 40),
	}
}

// demoUsers are created without a password hash; Load fills it in
func demoUsers() []users.User {
	return []users.User{
		{
			ID: "u1", Name: "Alex Chen", Email: "alex.chen@email.com", Phone: "+60 12-345 6789",
			Role: users.RoleCustomer, Status: users.StatusActive,
			MembershipTier: string(membership.TierGold), PointsBalance: 2450,
			MemberSince: "2023-06-15", QRCode: "MEMBER-GOLD-2450-AC",
		},
		{
			ID: "u2", Name: "Admin User", Email: "admin@galaxycinema.com", Phone: "+60 12-000 0001",
			Role: users.RoleAdmin, Status: users.StatusActive,
			MembershipTier: string(membership.TierPlatinum), PointsBalance: 10000,
			MemberSince: "2020-01-01", QRCode: "ADMIN-PLATINUM-AC",
		},
		{
			ID: "u3", Name: "Staff Member", Email: "staff@galaxycinema.com", Phone: "+60 12-000 0002",
			Role: users.RoleStaff, Status: users.StatusActive,
			MembershipTier: string(membership.TierSilver), PointsBalance: 500,
			MemberSince: "2022-06-01", QRCode: "STAFF-SILVER-SM",
		},
	}
}

func rewardCatalog() []membership.Reward {
	return []membership.Reward{
		{ID: "r1", Name: "Free Movie Ticket", Description: "Redeem for any standard movie ticket", PointsCost: 500, Category: membership.RewardTickets, ImageURL: "🎟️", Available: true},
		{ID: "r2", Name: "Large Popcorn Combo", Description: "Free large popcorn + drink combo", PointsCost: 300, Category: membership.RewardConcessions, ImageURL: "🍿", Available: true},
		{ID: "r3", Name: "IMAX Upgrade", Description: "Upgrade any ticket to IMAX experience", PointsCost: 200, Category: membership.RewardTickets, ImageURL: "🎬", Available: true},
		{ID: "r4", Name: "VIP Lounge Access", Description: "Access to VIP lounge for one visit", PointsCost: 400, Category: membership.RewardExperiences, ImageURL: "👑", Available: true},
	}
}
