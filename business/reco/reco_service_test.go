package reco

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"hamroCraft/domain"
)

type fakeCatalog struct {
	products map[uint64]domain.Product
}

func (f *fakeCatalog) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (f *fakeCatalog) FindEligible(ctx context.Context, filter domain.CatalogFilter) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range f.products {
		if !p.Eligible() {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.SellerID != 0 && p.SellerID != filter.SellerID {
			continue
		}
		if filter.PriceMin > 0 && p.Price < filter.PriceMin {
			continue
		}
		if filter.PriceMax > 0 && p.Price > filter.PriceMax {
			continue
		}
		out = append(out, p)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCatalog) FindTopRated(ctx context.Context, limit int) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range f.products {
		if p.Eligible() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeightedRating != out[j].WeightedRating {
			return out[i].WeightedRating > out[j].WeightedRating
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCatalog) FindEligibleByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok && p.Eligible() {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBehavior struct {
	sets map[uint]map[uint64]struct{}
}

func (f *fakeBehavior) GetUserItemSet(ctx context.Context, userID uint) (map[uint64]struct{}, error) {
	if s, ok := f.sets[userID]; ok {
		return s, nil
	}
	return map[uint64]struct{}{}, nil
}

func (f *fakeBehavior) GetNeighborItemSets(ctx context.Context, itemIDs []uint64, excludeUserID uint) (map[uint]map[uint64]struct{}, error) {
	neighbors := make(map[uint]map[uint64]struct{})
	for userID, items := range f.sets {
		if userID == excludeUserID {
			continue
		}
		for _, id := range itemIDs {
			if _, ok := items[id]; ok {
				neighbors[userID] = items
				break
			}
		}
	}
	return neighbors, nil
}

type fakeUsers struct {
	users map[uint]domain.User
}

func (f *fakeUsers) FindByID(ctx context.Context, id uint) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

type fakePopularity struct {
	ids []uint64
	err error
}

func (f *fakePopularity) TopProducts(ctx context.Context, limit int) ([]uint64, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.ids) > limit {
		return f.ids[:limit], nil
	}
	return f.ids, nil
}

func eligible(id uint64, category string, seller uint, price, weighted float64) domain.Product {
	return domain.Product{
		ID:             id,
		Category:       category,
		SellerID:       seller,
		Price:          price,
		TitleEn:        fmt.Sprintf("Item %d", id),
		IsActive:       true,
		VerifyStatus:   domain.VerifyStatusApproved,
		WeightedRating: weighted,
	}
}

func newTestService(catalog *fakeCatalog, behavior *fakeBehavior, users *fakeUsers, pop PopularityStore) *Service {
	if behavior == nil {
		behavior = &fakeBehavior{sets: map[uint]map[uint64]struct{}{}}
	}
	if users == nil {
		users = &fakeUsers{users: map[uint]domain.User{1: {ID: 1}}}
	}
	return NewService(catalog, behavior, users, pop)
}

func TestRelatedProductsErrors(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint64]domain.Product{}}
	svc := newTestService(catalog, nil, nil, nil)

	if _, err := svc.RelatedProducts(context.Background(), 0, 10); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero id: err = %v, want ErrValidation", err)
	}

	if _, err := svc.RelatedProducts(context.Background(), 42, 10); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestRelatedProductsSameCategoryRanked(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint64]domain.Product{
		1: eligible(1, "handicrafts", 7, 100, 4.0),
		2: eligible(2, "handicrafts", 7, 100, 3.0), // same seller, same price
		3: eligible(3, "handicrafts", 8, 110, 4.5), // same category, near price
		4: eligible(4, "electronics", 9, 5000, 5.0),
	}}
	svc := newTestService(catalog, nil, nil, nil)

	got, err := svc.RelatedProducts(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) == 0 {
		t.Fatal("expected related products")
	}
	for _, rec := range got {
		if rec.Product.ID == 1 {
			t.Error("source item recommended to itself")
		}
		if rec.Product.ID == 4 {
			t.Error("unrelated electronics item slipped in")
		}
		if rec.Score < cosineThreshold {
			t.Errorf("score %v below threshold", rec.Score)
		}
	}
	// closest match (same seller, same price, same category) first
	if got[0].Product.ID != 2 {
		t.Errorf("top related = %d, want 2", got[0].Product.ID)
	}
}

func TestRelatedProductsSkipsIneligible(t *testing.T) {
	hidden := eligible(3, "handicrafts", 7, 100, 5.0)
	hidden.VerifyStatus = domain.VerifyStatusRejected

	catalog := &fakeCatalog{products: map[uint64]domain.Product{
		1: eligible(1, "handicrafts", 7, 100, 4.0),
		2: eligible(2, "handicrafts", 7, 100, 3.0),
		3: hidden,
	}}
	svc := newTestService(catalog, nil, nil, nil)

	got, err := svc.RelatedProducts(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range got {
		if rec.Product.ID == 3 {
			t.Error("rejected product recommended")
		}
	}
}

func TestPersonalizedErrors(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint64]domain.Product{}}
	users := &fakeUsers{users: map[uint]domain.User{1: {ID: 1}}}
	svc := newTestService(catalog, nil, users, nil)

	if _, err := svc.PersonalizedRecommendations(context.Background(), 0, 10); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero user: err = %v, want ErrValidation", err)
	}

	if _, err := svc.PersonalizedRecommendations(context.Background(), 99, 10); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown user: err = %v, want ErrNotFound", err)
	}
}

func TestPersonalizedCollaborative(t *testing.T) {
	// U bought {1,2,3}; V bought {2,3,4}; Jaccard = 0.5 ≥ 0.3, so V's
	// unique item 4 is recommended to U. W bought {9} only: no overlap.
	catalog := &fakeCatalog{products: map[uint64]domain.Product{
		1: eligible(1, "handicrafts", 7, 100, 4.0),
		2: eligible(2, "handicrafts", 7, 100, 4.0),
		3: eligible(3, "handicrafts", 8, 90, 4.0),
		4: eligible(4, "handicrafts", 8, 95, 4.2),
		9: eligible(9, "clothing", 5, 30, 2.0),
	}}
	behavior := &fakeBehavior{sets: map[uint]map[uint64]struct{}{
		1: set(1, 2, 3),
		2: set(2, 3, 4),
		3: set(9),
	}}
	users := &fakeUsers{users: map[uint]domain.User{1: {ID: 1}, 2: {ID: 2}, 3: {ID: 3}}}

	svc := newTestService(catalog, behavior, users, nil)

	got, err := svc.PersonalizedRecommendations(context.Background(), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Product.ID != 4 {
		t.Fatalf("recommendations = %+v, want item 4", got)
	}
}

func TestPersonalizedNeverRecommendsOwnHistory(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint64]domain.Product{
		1: eligible(1, "handicrafts", 7, 100, 4.0),
		2: eligible(2, "handicrafts", 7, 100, 4.0),
		3: eligible(3, "handicrafts", 8, 90, 4.5),
	}}
	behavior := &fakeBehavior{sets: map[uint]map[uint64]struct{}{
		1: set(1, 2),
		2: set(1, 2, 3),
	}}
	users := &fakeUsers{users: map[uint]domain.User{1: {ID: 1}, 2: {ID: 2}}}

	svc := newTestService(catalog, behavior, users, nil)

	got, err := svc.PersonalizedRecommendations(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range got {
		if rec.Product.ID == 1 || rec.Product.ID == 2 {
			t.Errorf("own history item %d recommended", rec.Product.ID)
		}
	}
}

func TestPersonalizedBackfillForNewUser(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint64]domain.Product{
		1: eligible(1, "handicrafts", 7, 100, 4.5),
		2: eligible(2, "handicrafts", 7, 110, 4.0),
		3: eligible(3, "clothing", 8, 50, 3.5),
		4: eligible(4, "clothing", 8, 60, 3.0),
	}}
	users := &fakeUsers{users: map[uint]domain.User{5: {ID: 5}}}
	pop := &fakePopularity{ids: []uint64{3, 1}}

	svc := newTestService(catalog, nil, users, pop)

	got, err := svc.PersonalizedRecommendations(context.Background(), 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("backfill produced %d items, want 4", len(got))
	}
	// trending order first, then top weighted rating
	if got[0].Product.ID != 3 || got[1].Product.ID != 1 {
		t.Errorf("trending items should lead: %+v", got)
	}
	if got[2].Product.ID != 2 || got[3].Product.ID != 4 {
		t.Errorf("rating-ordered remainder wrong: %+v", got)
	}
}

func TestPersonalizedBackfillSurvivesPopularityOutage(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint64]domain.Product{
		1: eligible(1, "handicrafts", 7, 100, 4.5),
		2: eligible(2, "handicrafts", 7, 110, 4.0),
	}}
	users := &fakeUsers{users: map[uint]domain.User{5: {ID: 5}}}
	pop := &fakePopularity{err: errors.New("redis down")}

	svc := newTestService(catalog, nil, users, pop)

	got, err := svc.PersonalizedRecommendations(context.Background(), 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("catalog backfill produced %d items, want 2", len(got))
	}
}

func TestPersonalizedPadsShortCollaborativeList(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint64]domain.Product{
		1: eligible(1, "handicrafts", 7, 100, 4.0),
		2: eligible(2, "handicrafts", 7, 100, 4.0),
		3: eligible(3, "handicrafts", 8, 90, 4.0),
		4: eligible(4, "handicrafts", 8, 95, 4.2),
		5: eligible(5, "decor", 9, 200, 4.9),
		6: eligible(6, "decor", 9, 210, 4.8),
	}}
	behavior := &fakeBehavior{sets: map[uint]map[uint64]struct{}{
		1: set(1, 2, 3),
		2: set(2, 3, 4),
	}}
	users := &fakeUsers{users: map[uint]domain.User{1: {ID: 1}, 2: {ID: 2}}}

	svc := newTestService(catalog, behavior, users, nil)

	got, err := svc.PersonalizedRecommendations(context.Background(), 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("padded list has %d items, want 3", len(got))
	}
	if got[0].Product.ID != 4 {
		t.Errorf("collaborative hit should lead: %+v", got)
	}
	seen := map[uint64]struct{}{}
	for _, rec := range got {
		if _, dup := seen[rec.Product.ID]; dup {
			t.Errorf("duplicate recommendation %d", rec.Product.ID)
		}
		seen[rec.Product.ID] = struct{}{}
	}
}

func TestPersonalizedBackfillReachesPastHeavyHistory(t *testing.T) {
	// The user has already interacted with every one of the best-rated
	// items. Backfill must still fill the list from the remaining
	// eligible catalog instead of returning nothing.
	products := make(map[uint64]domain.Product, 60)
	historySet := make(map[uint64]struct{}, 30)
	for i := uint64(1); i <= 60; i++ {
		products[i] = eligible(i, "handicrafts", 7, 100, 5.0-float64(i)*0.05)
		if i <= 30 {
			historySet[i] = struct{}{}
		}
	}

	catalog := &fakeCatalog{products: products}
	behavior := &fakeBehavior{sets: map[uint]map[uint64]struct{}{1: historySet}}
	users := &fakeUsers{users: map[uint]domain.User{1: {ID: 1}}}

	svc := newTestService(catalog, behavior, users, nil)

	got, err := svc.PersonalizedRecommendations(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d recommendations, want 10", len(got))
	}
	for i, rec := range got {
		if rec.Product.ID <= 30 {
			t.Errorf("own history item %d recommended", rec.Product.ID)
		}
		// best remaining ratings first: ids 31, 32, ...
		if want := uint64(31 + i); rec.Product.ID != want {
			t.Errorf("position %d: id = %d, want %d", i, rec.Product.ID, want)
		}
	}
}
