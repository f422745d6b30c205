package classifier

import (
	"sort"
	"strings"
)

// Category pairs a menu category with the keywords that suggest it.
type Category struct {
	Name     string
	Keywords []string
}

// KeywordClassifier scores an item name against a fixed keyword table.
// It is deterministic and pure; the table order breaks score ties.
type KeywordClassifier struct {
	categories []Category
}

// scoreThreshold below which an item falls back to "Other".
const scoreThreshold = 0.2

const fallbackCategory = "Other"

func New() *KeywordClassifier {
	return &KeywordClassifier{categories: defaultCategories}
}

// NewWithCategories builds a classifier over a custom table, mostly for
// tests and for callers with their own taxonomy.
func NewWithCategories(categories []Category) *KeywordClassifier {
	return &KeywordClassifier{categories: categories}
}

// Categorize returns the best-scoring category for an item name, or
// "Other" when nothing matches well enough. Each matched keyword scores
// by how much of the name it covers; exact matches and leading-word
// matches earn a bonus.
func (c *KeywordClassifier) Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return fallbackCategory
	}

	type scored struct {
		name  string
		score float64
	}
	scores := make([]scored, 0, len(c.categories))

	for _, category := range c.categories {
		var score float64
		for _, keyword := range category.Keywords {
			if !strings.Contains(name, keyword) {
				continue
			}
			score += float64(len(keyword)) / float64(len(name)) * 10
			if name == keyword {
				score += 5
			}
			if strings.HasPrefix(name, keyword+" ") {
				score += 3
			}
		}
		scores = append(scores, scored{name: category.Name, score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	if len(scores) == 0 || scores[0].score <= scoreThreshold {
		return fallbackCategory
	}
	return scores[0].name
}

var defaultCategories = []Category{
	{Name: "Burgers & Sandwiches", Keywords: []string{"burger", "sandwich", "sub", "wrap", "melt", "club", "blt", "grilled cheese", "hoagie", "panini"}},
	{Name: "Pizza", Keywords: []string{"pizza", "calzone", "flatbread", "margherita", "pepperoni", "neapolitan"}},
	{Name: "American Comfort Food", Keywords: []string{"mac and cheese", "meatloaf", "pot pie", "fried chicken", "bbq", "barbecue", "ribs", "hot dog", "cornbread", "biscuit"}},
	{Name: "Italian Pasta", Keywords: []string{"pasta", "spaghetti", "fettuccine", "linguine", "penne", "macaroni", "lasagna", "ravioli", "gnocchi", "carbonara", "bolognese", "alfredo"}},
	{Name: "Italian Entrees", Keywords: []string{"risotto", "osso buco", "cacciatore", "marsala", "parmigiana", "piccata", "saltimbocca"}},
	{Name: "Mexican", Keywords: []string{"taco", "burrito", "enchilada", "quesadilla", "fajita", "nacho", "guacamole", "salsa", "tortilla", "chimichanga", "mole", "carnitas", "tamale", "tostada"}},
	{Name: "Chinese", Keywords: []string{"dim sum", "dumpling", "wonton", "spring roll", "egg roll", "fried rice", "chow mein", "lo mein", "kung pao", "general tso", "sweet and sour", "szechuan", "peking duck", "mongolian"}},
	{Name: "Japanese Sushi", Keywords: []string{"sushi", "sashimi", "maki", "nigiri", "temaki", "california roll", "spicy tuna", "dragon roll", "rainbow roll"}},
	{Name: "Japanese", Keywords: []string{"ramen", "udon", "soba", "tempura", "teriyaki", "katsu", "donburi", "gyoza", "yakitori", "miso", "bento", "shabu", "sukiyaki", "okonomiyaki"}},
	{Name: "Thai", Keywords: []string{"pad thai", "tom yum", "tom kha", "satay", "papaya salad", "larb", "massaman", "panang", "green curry", "red curry", "yellow curry"}},
	{Name: "Indian", Keywords: []string{"curry", "tikka masala", "tandoori", "naan", "samosa", "biryani", "vindaloo", "korma", "saag", "dal", "chana masala", "paneer", "dosa", "roti", "chapati", "raita", "pakora"}},
	{Name: "Vietnamese", Keywords: []string{"pho", "banh mi", "vermicelli", "bun bo", "vietnamese coffee"}},
	{Name: "Korean", Keywords: []string{"bibimbap", "bulgogi", "kimchi", "korean bbq", "galbi", "japchae", "tteokbokki", "gochujang", "banchan", "kimbap"}},
	{Name: "Mediterranean", Keywords: []string{"hummus", "falafel", "pita", "gyro", "shawarma", "kebab", "dolma", "tabbouleh", "baba ganoush", "tzatziki", "couscous", "tagine", "moussaka", "souvlaki"}},
	{Name: "Greek", Keywords: []string{"spanakopita", "feta", "greek salad", "baklava", "dolmades"}},
	{Name: "Latin American", Keywords: []string{"empanada", "arepa", "ceviche", "pupusa", "churrasco", "chimichurri", "plantain", "mofongo", "ropa vieja"}},
	{Name: "Seafood", Keywords: []string{"fish", "seafood", "shrimp", "salmon", "tuna", "crab", "lobster", "oyster", "clam", "mussel", "scallop", "calamari", "cod", "halibut", "tilapia", "mahi mahi"}},
	{Name: "Breakfast", Keywords: []string{"breakfast", "egg", "omelette", "pancake", "waffle", "bacon", "sausage", "toast", "bagel", "muffin", "croissant", "french toast", "hash brown", "cereal", "oatmeal"}},
	{Name: "Appetizers", Keywords: []string{"appetizer", "starter", "small plate", "dip", "nachos", "wings", "chips", "finger food", "tapas", "mezze"}},
	{Name: "Soups & Salads", Keywords: []string{"soup", "salad", "bowl", "greens", "caesar", "cobb", "chowder", "bisque", "gazpacho", "minestrone", "broth"}},
	{Name: "Vegetarian/Vegan", Keywords: []string{"vegetarian", "vegan", "plant", "tofu", "veggie", "meatless", "beyond meat", "impossible", "tempeh", "seitan"}},
	{Name: "Desserts", Keywords: []string{"dessert", "cake", "pie", "ice cream", "cookie", "brownie", "pudding", "sweet", "chocolate", "cheesecake", "pastry", "tiramisu", "gelato", "sorbet", "mousse", "tart", "cobbler"}},
	{Name: "Beverages", Keywords: []string{"drink", "beverage", "coffee", "tea", "soda", "juice", "water", "milk", "smoothie", "shake", "cocktail", "beer", "wine", "latte", "espresso", "cappuccino", "mocha", "frappe"}},
	{Name: "Sides", Keywords: []string{"side", "fries", "rice", "potato", "vegetable", "beans", "corn", "slaw", "mashed", "roasted", "steamed"}},
}
