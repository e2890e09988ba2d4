package market

import (
	"math"
	"testing"

	"CoinPulse/internal/domain/models"
)

func points(start int64, values ...float64) []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(values))
	for i, v := range values {
		out = append(out, models.ChartPoint{Timestamp: start + int64(i)*1000, Value: v})
	}
	return out
}

func TestAlignEmpty(t *testing.T) {
	if got := Align(nil); len(got) != 0 {
		t.Fatalf("Align(nil) = %d points, want 0", len(got))
	}
	if got := Align([]Series{{AssetID: "a"}}); len(got) != 0 {
		t.Fatalf("Align(empty series) = %d points, want 0", len(got))
	}
}

func TestAlignTruncatesToShortest(t *testing.T) {
	got := Align([]Series{
		{AssetID: "a", Points: points(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
		{AssetID: "b", Points: points(0, 10, 20, 30, 40, 50)},
	})

	if len(got) != 5 {
		t.Fatalf("aligned length = %d, want 5", len(got))
	}
	for _, p := range got {
		if len(p.Changes) != 2 {
			t.Fatalf("point has %d series, want 2", len(p.Changes))
		}
	}
}

func TestAlignPercentRebase(t *testing.T) {
	got := Align([]Series{
		{AssetID: "a", Points: points(0, 100, 110, 95)},
		{AssetID: "b", Points: points(0, 2, 2, 3)},
	})

	if got[0].Changes["a"] != 0 || got[0].Changes["b"] != 0 {
		t.Fatalf("first point must be 0%%: %+v", got[0].Changes)
	}
	if math.Abs(got[1].Changes["a"]-10) > 1e-9 {
		t.Fatalf("a[1] = %v, want 10", got[1].Changes["a"])
	}
	if math.Abs(got[2].Changes["a"]+5) > 1e-9 {
		t.Fatalf("a[2] = %v, want -5", got[2].Changes["a"])
	}
	if math.Abs(got[2].Changes["b"]-50) > 1e-9 {
		t.Fatalf("b[2] = %v, want 50", got[2].Changes["b"])
	}
}

func TestAlignTimestampsFromFirstSeries(t *testing.T) {
	got := Align([]Series{
		{AssetID: "a", Points: points(1000, 1, 2)},
		{AssetID: "b", Points: points(9999, 1, 2)},
	})

	if got[0].Timestamp != 1000 || got[1].Timestamp != 2000 {
		t.Fatalf("timestamps = %d, %d, want from first series", got[0].Timestamp, got[1].Timestamp)
	}
}

func TestAlignZeroFirstValue(t *testing.T) {
	got := Align([]Series{
		{AssetID: "a", Points: points(0, 0, 5, 10)},
		{AssetID: "b", Points: points(0, 10, 11, 12)},
	})

	for i, p := range got {
		if p.Changes["a"] != 0 {
			t.Fatalf("a[%d] = %v, want 0 for zero-based series", i, p.Changes["a"])
		}
	}
	if math.Abs(got[1].Changes["b"]-10) > 1e-9 {
		t.Fatalf("b[1] = %v, want 10", got[1].Changes["b"])
	}
}

func TestAlignSingleSeries(t *testing.T) {
	got := Align([]Series{{AssetID: "a", Points: points(0, 50, 55)}})

	if len(got) != 2 {
		t.Fatalf("aligned length = %d, want 2", len(got))
	}
	if got[0].Changes["a"] != 0 {
		t.Fatalf("single series first point = %v, want 0", got[0].Changes["a"])
	}
}
