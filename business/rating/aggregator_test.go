package rating

import (
	"math"
	"testing"
)

func TestWeighted(t *testing.T) {
	cases := []struct {
		name  string
		avg   float64
		count int
		want  float64
	}{
		{"no reviews", 5.0, 0, 0},
		{"negative count", 4.0, -3, 0},
		{"single review shrinks hard", 5.0, 1, 5.0 / 11.0},
		{"twenty reviews", 4.5, 20, 4.5 * 20 / 30},
		{"five reviews", 4.0, 5, 4.0 * 5 / 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Weighted(tc.avg, tc.count)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Weighted(%v, %d) = %v, want %v", tc.avg, tc.count, got, tc.want)
			}
		})
	}
}

func TestWeightedNeverExceedsAverage(t *testing.T) {
	for _, avg := range []float64{0, 1.5, 3.0, 4.99, 5.0} {
		for count := 0; count <= 1000; count += 7 {
			if w := Weighted(avg, count); w > avg+1e-12 {
				t.Fatalf("Weighted(%v, %d) = %v exceeds average", avg, count, w)
			}
		}
	}
}

func TestWeightedMonotonicInCount(t *testing.T) {
	const avg = 4.2
	prev := Weighted(avg, 0)
	for count := 1; count <= 500; count++ {
		w := Weighted(avg, count)
		if w < prev {
			t.Fatalf("Weighted decreased at count=%d: %v < %v", count, w, prev)
		}
		prev = w
	}

	// converges toward the raw average
	if w := Weighted(avg, 1_000_000); avg-w > 0.001 {
		t.Errorf("Weighted(%v, 1e6) = %v, expected convergence to average", avg, w)
	}
}

func TestApply(t *testing.T) {
	avg, count, weighted := Apply(0, 0, 4)
	if avg != 4.0 || count != 1 {
		t.Fatalf("Apply first review: avg=%v count=%d", avg, count)
	}
	if math.Abs(weighted-4.0/11.0) > 1e-9 {
		t.Errorf("Apply first review weighted = %v", weighted)
	}

	avg, count, weighted = Apply(4.0, 1, 5)
	if avg != 4.5 || count != 2 {
		t.Fatalf("Apply second review: avg=%v count=%d", avg, count)
	}
	if math.Abs(weighted-Weighted(4.5, 2)) > 1e-9 {
		t.Errorf("Apply second review weighted = %v", weighted)
	}
}
