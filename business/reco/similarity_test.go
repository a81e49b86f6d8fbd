package reco

import (
	"math"
	"testing"

	"hamroCraft/domain"
)

func set(ids ...uint64) map[uint64]struct{} {
	s := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestJaccard(t *testing.T) {
	cases := []struct {
		name string
		a, b map[uint64]struct{}
		want float64
	}{
		{"both empty", set(), set(), 0},
		{"one empty", set(1, 2), set(), 0},
		{"identical", set(1, 2, 3), set(1, 2, 3), 1},
		{"disjoint", set(1, 2), set(3, 4), 0},
		{"half overlap", set(1, 2, 3), set(2, 3, 4), 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Jaccard(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Jaccard = %v, want %v", got, tc.want)
			}

			if rev := Jaccard(tc.b, tc.a); rev != got {
				t.Errorf("Jaccard not symmetric: %v vs %v", got, rev)
			}

			if got < 0 || got > 1 {
				t.Errorf("Jaccard out of bounds: %v", got)
			}
		})
	}
}

func TestJaccardNeighborScenario(t *testing.T) {
	// user U bought {A,B,C}, user V bought {B,C,D}: overlap 2/4 = 0.5,
	// above the acceptance threshold, so V's unique purchase D is an
	// eligible recommendation for U.
	u := set(1, 2, 3)
	v := set(2, 3, 4)

	sim := Jaccard(u, v)
	if math.Abs(sim-0.5) > 1e-9 {
		t.Fatalf("Jaccard = %v, want 0.5", sim)
	}
	if sim < jaccardThreshold {
		t.Errorf("similarity %v should clear threshold %v", sim, jaccardThreshold)
	}
}

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0, 1}, []float64{1, 0, 1}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0},
		{"empty", nil, nil, 0},
		{"partial overlap", []float64{1, 1, 0}, []float64{1, 0, 0}, 1 / math.Sqrt2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Cosine(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Cosine = %v, want %v", got, tc.want)
			}

			if rev := Cosine(tc.b, tc.a); rev != got {
				t.Errorf("Cosine not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestFeatureSpaceVectors(t *testing.T) {
	pool := []domain.Product{
		{ID: 1, Category: "handicrafts", SellerID: 7, Price: 100},
		{ID: 2, Category: "handicrafts", SellerID: 7, Price: 100},
		{ID: 3, Category: "clothing", SellerID: 9, Price: 50},
	}

	space := newFeatureSpace(pool)

	// identical attributes embed identically
	if sim := Cosine(space.vector(pool[0]), space.vector(pool[1])); math.Abs(sim-1) > 1e-9 {
		t.Errorf("identical products: cosine = %v, want 1", sim)
	}

	// same category, same seller, same price clears the threshold
	if sim := Cosine(space.vector(pool[0]), space.vector(pool[1])); sim < cosineThreshold {
		t.Errorf("similar products below threshold: %v", sim)
	}

	// different category and seller falls below it
	if sim := Cosine(space.vector(pool[0]), space.vector(pool[2])); sim >= cosineThreshold {
		t.Errorf("dissimilar products above threshold: %v", sim)
	}
}
