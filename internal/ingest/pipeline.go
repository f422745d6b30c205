package ingest

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/menulytics/menulytics/internal/models"
)

// Categorizer names a food item. The keyword classifier satisfies this;
// anything smarter can be swapped in.
type Categorizer interface {
	Categorize(itemName string) string
}

type CategoryVolume struct {
	Category string  `json:"category"`
	Volume   float64 `json:"volume"`
}

// ImportResult is everything one upload produced. Records keep row order;
// MenuItems holds the merged catalogue (existing items first, new items
// in order of first appearance).
type ImportResult struct {
	Records         []models.SalesRecord
	MenuItems       []models.MenuItem
	CategoryVolumes []CategoryVolume
	SkippedRows     int
}

// Importer runs the upload pipeline: parse, map columns, decode rows,
// classify, merge menu items. Rows that cannot be decoded are skipped and
// counted, never fatal.
type Importer struct {
	classifier Categorizer
	chunkSize  int
	now        func() time.Time
}

func NewImporter(classifier Categorizer, chunkSize int) *Importer {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	return &Importer{
		classifier: classifier,
		chunkSize:  chunkSize,
		now:        time.Now,
	}
}

// Import processes raw CSV text against the existing menu catalogue.
// progress, if non-nil, is called after every chunk with rows done and
// rows total. Chunks are processed strictly sequentially.
func (imp *Importer) Import(raw string, existing []models.MenuItem, progress func(done, total int)) (*ImportResult, error) {
	rows, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	mapping, err := MapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	dataRows := rows[1:]
	result := &ImportResult{
		Records: make([]models.SalesRecord, 0, len(dataRows)),
	}

	newItems := make(map[string]*models.MenuItem)
	var newOrder []string
	categoryVolumes := make(map[string]float64)

	for start := 0; start < len(dataRows); start += imp.chunkSize {
		end := start + imp.chunkSize
		if end > len(dataRows) {
			end = len(dataRows)
		}
		for _, row := range dataRows[start:end] {
			record, ok := imp.decodeRow(row, mapping)
			if !ok {
				result.SkippedRows++
				continue
			}

			categoryVolumes[record.Category] += record.SalesAmount
			result.Records = append(result.Records, record)

			id := models.NormalizeItemID(record.ItemName)
			item, seen := newItems[id]
			if !seen {
				newItems[id] = &models.MenuItem{
					ID:           id,
					Name:         record.ItemName,
					CurrentPrice: record.Price,
					Cost:         record.Cost,
					Category:     record.Category,
				}
				newOrder = append(newOrder, id)
				continue
			}
			// Later rows with real numbers win over earlier zeros.
			if record.Price > 0 {
				item.CurrentPrice = record.Price
			}
			if record.Cost > 0 {
				item.Cost = record.Cost
			}
		}
		if progress != nil {
			progress(end, len(dataRows))
		}
	}

	result.MenuItems = mergeMenuItems(existing, newItems, newOrder)
	result.CategoryVolumes = sortCategoryVolumes(categoryVolumes)
	return result, nil
}

func (imp *Importer) decodeRow(row []string, mapping ColumnMapping) (models.SalesRecord, bool) {
	var record models.SalesRecord

	if mapping.ItemName >= len(row) {
		return record, false
	}
	record.ItemName = strings.TrimSpace(row[mapping.ItemName])
	if record.ItemName == "" {
		return record, false
	}

	now := imp.now()
	record.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if mapping.Date >= 0 {
		if mapping.Date >= len(row) {
			return record, false
		}
		d, err := parseDate(row[mapping.Date])
		if err != nil {
			return record, false
		}
		record.Date = d
	}

	record.SalesAmount = 1
	if mapping.SalesAmount >= 0 {
		if mapping.SalesAmount >= len(row) {
			return record, false
		}
		amount, err := parseNumber(row[mapping.SalesAmount])
		if err != nil {
			return record, false
		}
		record.SalesAmount = amount
	}

	if mapping.Price >= 0 && mapping.Price < len(row) {
		if price, err := parseNumber(row[mapping.Price]); err == nil {
			record.Price = price
		}
	}

	record.Cost = 0
	if mapping.Cost >= 0 && mapping.Cost < len(row) {
		if cost, err := parseNumber(row[mapping.Cost]); err == nil {
			record.Cost = cost
		}
	} else if record.Price > 0 {
		// Estimated food cost when the upload has none: 40% of price.
		record.Cost = record.Price * 0.4
	}

	record.Category = ""
	if mapping.Category >= 0 && mapping.Category < len(row) {
		record.Category = strings.TrimSpace(row[mapping.Category])
	}
	if record.Category == "" {
		record.Category = imp.classifier.Categorize(record.ItemName)
	}

	return record, true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"2 Jan 2006",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// parseNumber strips currency symbols and grouping before parsing, so
// "$1,234.50" reads as 1234.5.
func parseNumber(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strconv.ParseFloat(b.String(), 64)
}

func mergeMenuItems(existing []models.MenuItem, newItems map[string]*models.MenuItem, order []string) []models.MenuItem {
	merged := make([]models.MenuItem, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, item := range merged {
		index[item.ID] = i
	}

	for _, id := range order {
		incoming := newItems[id]
		i, ok := index[id]
		if !ok {
			merged = append(merged, *incoming)
			index[id] = len(merged) - 1
			continue
		}
		if incoming.CurrentPrice > 0 {
			merged[i].CurrentPrice = incoming.CurrentPrice
		}
		if incoming.Cost > 0 {
			merged[i].Cost = incoming.Cost
		}
		if incoming.Category != "" && incoming.Category != "Other" {
			merged[i].Category = incoming.Category
		}
	}
	return merged
}

func sortCategoryVolumes(volumes map[string]float64) []CategoryVolume {
	out := make([]CategoryVolume, 0, len(volumes))
	for category, volume := range volumes {
		out = append(out, CategoryVolume{Category: category, Volume: volume})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Volume != out[j].Volume {
			return out[i].Volume > out[j].Volume
		}
		return out[i].Category < out[j].Category
	})
	return out
}
