package analytics

import (
	"fmt"
	"sort"

	"github.com/menulytics/menulytics/internal/models"
)

// DefaultTopGroups is how many groups a report keeps before the rest are
// collapsed into an "Other" bucket.
const DefaultTopGroups = 10

const otherBucket = "Other"

type Bucket struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// ByItem sums sales amounts per item name in one pass and returns the
// buckets ordered by total descending. Equal totals keep first-seen order.
func ByItem(records []models.SalesRecord) []Bucket {
	totals := make(map[string]float64, len(records))
	var order []string
	for _, r := range records {
		if _, seen := totals[r.ItemName]; !seen {
			order = append(order, r.ItemName)
		}
		totals[r.ItemName] += r.SalesAmount
	}

	buckets := make([]Bucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, Bucket{Key: key, Total: totals[key]})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})
	return buckets
}

// ByMonth sums sales amounts per calendar month. Buckets come back in
// chronological order (year, then month), not lexicographic or by value.
func ByMonth(records []models.SalesRecord) []Bucket {
	type monthKey struct {
		year  int
		month int
	}
	totals := make(map[monthKey]float64)
	for _, r := range records {
		k := monthKey{year: r.Date.Year(), month: int(r.Date.Month())}
		totals[k] += r.SalesAmount
	}

	keys := make([]monthKey, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, Bucket{
			Key:   fmt.Sprintf("%04d-%02d", k.year, k.month),
			Total: totals[k],
		})
	}
	return buckets
}

// TopN keeps the first n buckets and collapses the remainder into a
// single "Other" bucket holding their combined total. Buckets must
// already be in display order.
func TopN(buckets []Bucket, n int) []Bucket {
	if n <= 0 {
		n = DefaultTopGroups
	}
	if len(buckets) <= n {
		return buckets
	}

	out := make([]Bucket, n, n+1)
	copy(out, buckets[:n])

	var rest float64
	for _, b := range buckets[n:] {
		rest += b.Total
	}
	return append(out, Bucket{Key: otherBucket, Total: rest})
}
