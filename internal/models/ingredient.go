package models

type Ingredient struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CurrentStock float64 `json:"current_stock"`
	Unit         string  `json:"unit"`
}

// RecipeAssociation links a menu item to one of its ingredients. At most
// one association exists per (MenuItemID, IngredientID) pair; re-adding
// updates the quantity instead of duplicating the edge.
type RecipeAssociation struct {
	MenuItemID         string  `json:"menu_item_id"`
	IngredientID       string  `json:"ingredient_id"`
	QuantityPerServing float64 `json:"quantity_per_serving"`
}
