package models

// ShopItem is a one-time purchase converting coins into a permanent feature flag.
type ShopItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// FeatureVIP doubles the coin bonus awarded per check-in once unlocked.
const FeatureVIP = "vip"

var catalog = []ShopItem{
	{ID: FeatureVIP, Name: "VIP Membership", Price: 500},
	{ID: "gold", Name: "Gold Badge", Price: 150},
	{ID: "dark_theme", Name: "Dark Theme", Price: 100},
	{ID: "streak_shield", Name: "Streak Shield", Price: 250},
}

// Catalog returns the fixed list of purchasable items.
func Catalog() []ShopItem {
	items := make([]ShopItem, len(catalog))
	copy(items, catalog)
	return items
}

// FindItem looks up a catalog item by id.
func FindItem(id string) (ShopItem, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
