package analytics

import (
	"testing"
	"time"

	"github.com/menulytics/menulytics/internal/models"
)

func record(item string, amount float64, date time.Time) models.SalesRecord {
	return models.SalesRecord{Date: date, ItemName: item, SalesAmount: amount}
}

func TestByItemOrdersByVolume(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SalesRecord{
		record("Burger", 3, day),
		record("Pizza", 2, day),
		record("Burger", 5, day),
	}

	buckets := ByItem(records)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Key != "Burger" || buckets[0].Total != 8 {
		t.Errorf("first bucket = %+v, want Burger with 8", buckets[0])
	}
	if buckets[1].Key != "Pizza" || buckets[1].Total != 2 {
		t.Errorf("second bucket = %+v, want Pizza with 2", buckets[1])
	}
}

func TestByItemTieKeepsFirstSeenOrder(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SalesRecord{
		record("Ramen", 5, day),
		record("Udon", 5, day),
	}

	buckets := ByItem(records)
	if buckets[0].Key != "Ramen" || buckets[1].Key != "Udon" {
		t.Errorf("equal totals must keep first-seen order, got %v", buckets)
	}
}

func TestByMonthChronological(t *testing.T) {
	records := []models.SalesRecord{
		record("Burger", 1, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		record("Burger", 2, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		record("Burger", 3, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)),
		record("Burger", 4, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
	}

	buckets := ByMonth(records)
	wantKeys := []string{"2023-12", "2024-01", "2024-03"}
	if len(buckets) != len(wantKeys) {
		t.Fatalf("expected %d buckets, got %d", len(wantKeys), len(buckets))
	}
	for i, key := range wantKeys {
		if buckets[i].Key != key {
			t.Errorf("bucket %d key = %q, want %q", i, buckets[i].Key, key)
		}
	}
	if buckets[1].Total != 6 {
		t.Errorf("2024-01 total = %v, want 6", buckets[1].Total)
	}
}

func TestTopNCollapsesRemainder(t *testing.T) {
	var buckets []Bucket
	for i := 0; i < 12; i++ {
		buckets = append(buckets, Bucket{Key: string(rune('a' + i)), Total: float64(12 - i)})
	}

	out := TopN(buckets, 10)
	if len(out) != 11 {
		t.Fatalf("expected 10 groups plus Other, got %d", len(out))
	}
	last := out[10]
	if last.Key != "Other" {
		t.Errorf("last bucket key = %q, want Other", last.Key)
	}
	// The two collapsed buckets held 2 and 1.
	if last.Total != 3 {
		t.Errorf("Other total = %v, want 3", last.Total)
	}
}

func TestTopNLeavesSmallInputAlone(t *testing.T) {
	buckets := []Bucket{{Key: "a", Total: 2}, {Key: "b", Total: 1}}
	out := TopN(buckets, 10)
	if len(out) != 2 {
		t.Errorf("expected input unchanged, got %v", out)
	}
}
