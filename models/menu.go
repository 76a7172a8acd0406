package models

import "math"

// MenuItem is an entry in the fixed menu catalog. Prices live here and only
// here; order totals are always computed server-side from this list.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// MenuCatalog mirrors the menu served by the frontend, keyed by item id.
var MenuCatalog = []MenuItem{
	// Starters
	{ID: "1", Name: "Burrata with Heirloom Tomatoes", Price: 12.50, Category: "Starters"},
	{ID: "2", Name: "Beef Carpaccio", Price: 15.20, Category: "Starters"},
	{ID: "3", Name: "Foie Gras Torchon", Price: 19.60, Category: "Starters"},
	{ID: "4", Name: "Lobster Bisque", Price: 16.90, Category: "Starters"},

	// Steaks & mains
	{ID: "5", Name: "Dry-Aged Ribeye", Price: 64.20, Category: "Steaks"},
	{ID: "6", Name: "Wagyu Tenderloin", Price: 87.30, Category: "Steaks"},
	{ID: "7", Name: "Roasted Duck Breast", Price: 48.10, Category: "Steaks"},
	{ID: "8", Name: "Pan-Seared Sea Bass", Price: 56.20, Category: "Steaks"},
	{ID: "9", Name: "Truffle Tagliatelle", Price: 39.20, Category: "Steaks"},

	// Sides
	{ID: "10", Name: "Truffle Mac & Cheese", Price: 14.30, Category: "Sides"},
	{ID: "11", Name: "Roasted Asparagus", Price: 10.70, Category: "Sides"},
	{ID: "12", Name: "Garlic Mashed Potatoes", Price: 8.90, Category: "Sides"},
	{ID: "13", Name: "Grilled Vegetables", Price: 12.50, Category: "Sides"},

	// Desserts
	{ID: "14", Name: "Vanilla Bean Panna Cotta", Price: 12.50, Category: "Desserts"},
	{ID: "15", Name: "72% Dark Chocolate Fondant", Price: 14.30, Category: "Desserts"},
	{ID: "16", Name: "Lemon Basil Tart", Price: 10.70, Category: "Desserts"},
	{ID: "17", Name: "Tiramisu Classico", Price: 11.60, Category: "Desserts"},

	// Wines
	{ID: "18", Name: "Château Margaux 2015", Price: 133.80, Category: "Wines"},
	{ID: "19", Name: "Dom Pérignon Vintage 2012", Price: 107.00, Category: "Wines"},
	{ID: "20", Name: "Caymus Cabernet Sauvignon", Price: 75.80, Category: "Wines"},
	{ID: "21", Name: "Sancerre Loire Valley", Price: 58.00, Category: "Wines"},

	// Drinks
	{ID: "22", Name: "Still Mineral Water", Price: 5.40, Category: "Drinks"},
	{ID: "23", Name: "Sommelier's Pairing Flight", Price: 40.10, Category: "Drinks"},
	{ID: "24", Name: "Craft Coffee", Price: 7.10, Category: "Drinks"},
	{ID: "25", Name: "Herbal Tea Selection", Price: 6.20, Category: "Drinks"},
}

var menuByID = func() map[string]MenuItem {
	m := make(map[string]MenuItem, len(MenuCatalog))
	for _, item := range MenuCatalog {
		m[item.ID] = item
	}
	return m
}()

// MenuItemByID looks up a catalog item by its id.
func MenuItemByID(id string) (MenuItem, bool) {
	item, ok := menuByID[id]
	return item, ok
}

// RoundToCents snaps a computed amount to currency precision.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
