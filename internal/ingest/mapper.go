package ingest

import (
	"strings"

	"github.com/menulytics/menulytics/internal/models"
)

// ColumnMapping assigns a column index to each semantic role. An index of
// -1 means the role is absent and its documented default applies.
type ColumnMapping struct {
	Date        int
	ItemName    int
	SalesAmount int
	Price       int
	Cost        int
	Category    int
}

// role keyword sets, checked in this order. The first matching role wins
// for a given header; a later header claiming the same role overwrites an
// earlier one, since each role is a single slot.
var roleKeywords = []struct {
	role     string
	keywords []string
}{
	{"date", []string{"date", "day", "time"}},
	{"item", []string{"item", "product", "dish", "food"}},
	{"sales", []string{"sales", "quantity", "amount"}},
	{"price", []string{"price", "revenue"}},
	{"cost", []string{"cost"}},
	{"category", []string{"category"}},
}

// MapColumns infers which header holds which role by lowercased substring
// matching. The item name column is required. MapColumns is pure: the
// same header row always yields the same mapping.
func MapColumns(header []string) (ColumnMapping, error) {
	mapping := ColumnMapping{
		Date:        -1,
		ItemName:    -1,
		SalesAmount: -1,
		Price:       -1,
		Cost:        -1,
		Category:    -1,
	}

	for idx, h := range header {
		lower := strings.ToLower(h)
		for _, rk := range roleKeywords {
			if !matchesAny(lower, rk.keywords) {
				continue
			}
			switch rk.role {
			case "date":
				mapping.Date = idx
			case "item":
				mapping.ItemName = idx
			case "sales":
				mapping.SalesAmount = idx
			case "price":
				mapping.Price = idx
			case "cost":
				mapping.Cost = idx
			case "category":
				mapping.Category = idx
			}
			break
		}
	}

	if mapping.ItemName < 0 {
		return ColumnMapping{}, models.ErrMissingItemColumn
	}
	return mapping, nil
}

func matchesAny(header string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}
