package factories

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/menulytics/menulytics/internal/models"
)

// SalesDataFactory produces deterministic demo data: a raw sales CSV
// plus matching ingredients and recipes. The same seed always yields
// the same dataset.
type SalesDataFactory struct {
	fake faker.Faker
	rng  *rand.Rand
}

func NewSalesDataFactory(seed int64) *SalesDataFactory {
	return &SalesDataFactory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

type dish struct {
	name        string
	price       float64
	ingredients []string
}

var dishes = []dish{
	{"Classic Cheeseburger", 9.50, []string{"Beef Patty", "Cheese", "Burger Bun", "Lettuce"}},
	{"BBQ Bacon Burger", 11.00, []string{"Beef Patty", "Bacon", "Burger Bun", "Onion"}},
	{"Margherita Pizza", 12.00, []string{"Pizza Dough", "Tomato Sauce", "Cheese"}},
	{"Pepperoni Pizza", 13.50, []string{"Pizza Dough", "Tomato Sauce", "Cheese", "Pepperoni"}},
	{"Caesar Salad", 8.00, []string{"Lettuce", "Chicken Breast", "Cheese"}},
	{"Greek Salad", 8.50, []string{"Lettuce", "Tomato Sauce", "Cheese", "Onion"}},
	{"Spaghetti Carbonara", 13.00, []string{"Pasta", "Bacon", "Egg", "Cheese"}},
	{"Chicken Tikka Masala", 14.00, []string{"Chicken Breast", "Rice", "Curry Paste"}},
	{"Pad Thai", 12.50, []string{"Noodles", "Egg", "Chicken Breast"}},
	{"Fish And Chips", 11.50, []string{"Fish Fillet", "Potato"}},
	{"Beef Tacos", 9.00, []string{"Tortilla", "Beef Patty", "Cheese", "Lettuce"}},
	{"Chicken Burrito", 10.50, []string{"Tortilla", "Chicken Breast", "Rice"}},
	{"Chocolate Shake", 5.00, []string{"Milk", "Chocolate"}},
	{"Iced Latte", 4.50, []string{"Milk", "Coffee Beans"}},
	{"Apple Pie", 6.00, []string{"Flour", "Apple", "Butter"}},
	{"Tiramisu", 7.00, []string{"Egg", "Coffee Beans", "Cheese"}},
	{"French Fries", 4.00, []string{"Potato"}},
	{"Onion Rings", 4.50, []string{"Onion", "Flour"}},
	{"Tomato Soup", 6.50, []string{"Tomato Sauce", "Butter"}},
	{"Chicken Ramen", 13.00, []string{"Noodles", "Chicken Breast", "Egg"}},
}

var ingredientUnits = map[string]string{
	"Beef Patty": "pcs", "Cheese": "kg", "Burger Bun": "pcs", "Lettuce": "kg",
	"Bacon": "kg", "Onion": "kg", "Pizza Dough": "pcs", "Tomato Sauce": "l",
	"Pepperoni": "kg", "Chicken Breast": "kg", "Pasta": "kg", "Egg": "pcs",
	"Rice": "kg", "Curry Paste": "kg", "Noodles": "kg", "Fish Fillet": "kg",
	"Potato": "kg", "Tortilla": "pcs", "Milk": "l", "Chocolate": "kg",
	"Coffee Beans": "kg", "Flour": "kg", "Apple": "kg", "Butter": "kg",
}

// SalesCSV renders records rows of raw comma separated sales history
// spanning the 30 days before start, newest rows last.
func (f *SalesDataFactory) SalesCSV(records int, start time.Time) string {
	var b strings.Builder
	b.WriteString("Date,Item,Quantity,Price,Cost\n")

	span := 30
	for i := 0; i < records; i++ {
		d := dishes[f.rng.Intn(len(dishes))]
		day := start.AddDate(0, 0, -(span - i*span/max(records, 1)))
		quantity := f.rng.Intn(15) + 1
		// jitter the list price a little so uploads are not uniform
		price := d.price * (0.95 + f.rng.Float64()*0.1)
		cost := price * (0.30 + f.rng.Float64()*0.15)
		b.WriteString(fmt.Sprintf("%s,%s,%d,%.2f,%.2f\n",
			day.Format("2006-01-02"), d.name, quantity, price, cost))
	}
	return b.String()
}

// Ingredients returns the full pantry with randomized stock levels.
func (f *SalesDataFactory) Ingredients() []models.Ingredient {
	names := make([]string, 0, len(ingredientUnits))
	seen := make(map[string]bool)
	for _, d := range dishes {
		for _, name := range d.ingredients {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	ingredients := make([]models.Ingredient, 0, len(names))
	for _, name := range names {
		ingredients = append(ingredients, models.Ingredient{
			ID:           cuid.New(),
			Name:         name,
			CurrentStock: f.fake.Float64(1, 20, 200),
			Unit:         ingredientUnits[name],
		})
	}
	return ingredients
}

// Recipes links every dish to its ingredients with per serving
// quantities, using the same identity keys the importer derives.
func (f *SalesDataFactory) Recipes(ingredients []models.Ingredient) []models.RecipeAssociation {
	byName := make(map[string]string, len(ingredients))
	for _, ing := range ingredients {
		byName[ing.Name] = ing.ID
	}

	var recipes []models.RecipeAssociation
	for _, d := range dishes {
		itemID := models.NormalizeItemID(d.name)
		for _, name := range d.ingredients {
			ingID, ok := byName[name]
			if !ok {
				continue
			}
			recipes = append(recipes, models.RecipeAssociation{
				MenuItemID:         itemID,
				IngredientID:       ingID,
				QuantityPerServing: f.fake.Float64(2, 1, 3) / 10,
			})
		}
	}
	return recipes
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
