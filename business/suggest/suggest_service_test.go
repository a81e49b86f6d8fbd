package suggest

import (
	"context"
	"errors"
	"testing"

	"hamroCraft/domain"
)

type fakeCatalog struct {
	products []domain.Product
	err      error
}

func (f *fakeCatalog) FindEligible(ctx context.Context, filter domain.CatalogFilter) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	eligible := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.Eligible() {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}

func approved(id uint64, title, category string, weighted float64) domain.Product {
	return domain.Product{
		ID:             id,
		TitleEn:        title,
		Category:       category,
		IsActive:       true,
		VerifyStatus:   domain.VerifyStatusApproved,
		WeightedRating: weighted,
	}
}

func TestSuggestTooShort(t *testing.T) {
	svc := NewService(&fakeCatalog{products: []domain.Product{
		approved(1, "Pashmina Shawl", "handicrafts", 3.0),
	}})

	for _, q := range []string{"", "a", " a ", "  "} {
		got, err := svc.Suggest(context.Background(), q, 10)
		if err != nil {
			t.Fatalf("Suggest(%q) error: %v", q, err)
		}
		if len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want empty", q, got)
		}
	}
}

func TestSuggestPrefixAndSubstring(t *testing.T) {
	svc := NewService(&fakeCatalog{products: []domain.Product{
		approved(1, "Pashmina Shawl", "handicrafts", 3.0),
		approved(2, "Fine Pashmina Scarf", "handicrafts", 2.0),
		approved(3, "Wool Carpet", "handicrafts", 4.0),
	}})

	got, err := svc.Suggest(context.Background(), "pash", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Suggest(pash) = %v, want 2 entries", got)
	}
	// prefix and substring both qualify; ordering is by weighted rating
	if got[0].Text != "Pashmina Shawl" || got[1].Text != "Fine Pashmina Scarf" {
		t.Errorf("Suggest(pash) order = %v", got)
	}
	if got[0].Category != "handicrafts" {
		t.Errorf("category lost: %+v", got[0])
	}
}

func TestSuggestDeduplicates(t *testing.T) {
	svc := NewService(&fakeCatalog{products: []domain.Product{
		approved(1, "Pashmina Shawl", "handicrafts", 3.0),
		approved(2, "pashmina shawl", "handicrafts", 4.5),
		approved(3, "PASHMINA   SHAWL", "handicrafts", 1.0),
	}})

	got, err := svc.Suggest(context.Background(), "pash", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("want a single deduplicated suggestion, got %v", got)
	}
	// the highest-rated spelling wins
	if got[0].Text != "pashmina shawl" {
		t.Errorf("kept %q, want the top-rated variant", got[0].Text)
	}
}

func TestSuggestOrderedByWeightedRating(t *testing.T) {
	svc := NewService(&fakeCatalog{products: []domain.Product{
		approved(1, "Singing Bowl Small", "instruments", 1.0),
		approved(2, "Singing Bowl Large", "instruments", 4.0),
		approved(3, "Singing Bowl Set", "instruments", 2.5),
	}})

	got, err := svc.Suggest(context.Background(), "singing", 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Singing Bowl Large", "Singing Bowl Set", "Singing Bowl Small"}
	for i, text := range want {
		if got[i].Text != text {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSuggestLimit(t *testing.T) {
	catalog := &fakeCatalog{}
	titles := []string{"Thanka One", "Thanka Two", "Thanka Three", "Thanka Four"}
	for i, title := range titles {
		catalog.products = append(catalog.products, approved(uint64(i+1), title, "art", float64(i)))
	}
	svc := NewService(catalog)

	got, err := svc.Suggest(context.Background(), "thanka", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("limit 2 returned %d entries", len(got))
	}

	// non-positive limit falls back to the default
	got, err = svc.Suggest(context.Background(), "thanka", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(titles) {
		t.Errorf("default limit returned %d entries, want %d", len(got), len(titles))
	}
}

func TestSuggestSkipsIneligible(t *testing.T) {
	hidden := approved(2, "Pashmina Robe", "handicrafts", 5.0)
	hidden.IsActive = false

	svc := NewService(&fakeCatalog{products: []domain.Product{
		approved(1, "Pashmina Shawl", "handicrafts", 3.0),
		hidden,
	}})

	got, err := svc.Suggest(context.Background(), "pash", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range got {
		if s.Text == "Pashmina Robe" {
			t.Error("inactive product surfaced as suggestion")
		}
	}
}

func TestSuggestRepoError(t *testing.T) {
	svc := NewService(&fakeCatalog{err: errors.New("boom")})

	if _, err := svc.Suggest(context.Background(), "pash", 10); err == nil {
		t.Error("expected repository error to surface")
	}
}
