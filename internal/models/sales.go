package models

import (
	"strings"
	"time"
	"unicode"
)

// SalesRecord is one row of ingested sales history. Records are immutable
// once created and kept in upload order.
type SalesRecord struct {
	Date        time.Time `json:"date"`
	ItemName    string    `json:"item_name"`
	SalesAmount float64   `json:"sales_amount"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Category    string    `json:"category"`
}

// NormalizeItemID turns a display name into the identity key used to
// deduplicate menu items across uploads: lowercased, every
// non-alphanumeric rune replaced with an underscore.
func NormalizeItemID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLower(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
