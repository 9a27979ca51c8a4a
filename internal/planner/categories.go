package planner

const (
	CategoryParks       = "Parks & Nature"
	CategoryMuseums     = "Museums & Galleries"
	CategoryHistorical  = "Historical Sites"
	CategoryShopping    = "Shopping Districts"
	CategoryRestaurants = "Restaurants & Foodie Spots"
	CategoryNightlife   = "Nightlife"
	CategoryFamily      = "Family-Friendly"
	CategoryAdventure   = "Adventure & Outdoors"
	CategoryArt         = "Art & Culture"
)

// Categories is the closed preference vocabulary. Matching is exact.
var Categories = []string{
	CategoryParks,
	CategoryMuseums,
	CategoryHistorical,
	CategoryShopping,
	CategoryRestaurants,
	CategoryNightlife,
	CategoryFamily,
	CategoryAdventure,
	CategoryArt,
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
