package review

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"hamroCraft/domain"
)

type fakeReviews struct {
	created []domain.Review
}

func (f *fakeReviews) Create(ctx context.Context, review *domain.Review) error {
	f.created = append(f.created, *review)
	return nil
}

func (f *fakeReviews) FindByProductID(ctx context.Context, productID uint64) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.created {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProducts struct {
	products map[uint64]domain.Product

	lastAverage  float64
	lastCount    int
	lastWeighted float64
}

func (f *fakeProducts) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product not found: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (f *fakeProducts) UpdateRatingStats(ctx context.Context, id uint64, average float64, count int, weighted float64) error {
	p := f.products[id]
	p.AverageRating = average
	p.ReviewCount = count
	p.WeightedRating = weighted
	f.products[id] = p

	f.lastAverage = average
	f.lastCount = count
	f.lastWeighted = weighted
	return nil
}

func TestSubmitReviewUpdatesRatingAggregate(t *testing.T) {
	products := &fakeProducts{products: map[uint64]domain.Product{
		7: {ID: 7, TitleEn: "Pashmina Shawl", AverageRating: 4.0, ReviewCount: 4},
	}}
	svc := NewReviewService(&fakeReviews{}, products)

	_, err := svc.SubmitReview(context.Background(), &domain.Review{
		ProductID: 7,
		UserID:    1,
		Rating:    5,
	})
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}

	// (4.0*4 + 5) / 5 = 4.2, weighted = 4.2 * 5/(5+10) = 1.4
	if math.Abs(products.lastAverage-4.2) > 1e-9 {
		t.Errorf("average = %v, want 4.2", products.lastAverage)
	}
	if products.lastCount != 5 {
		t.Errorf("count = %d, want 5", products.lastCount)
	}
	if math.Abs(products.lastWeighted-1.4) > 1e-9 {
		t.Errorf("weighted = %v, want 1.4", products.lastWeighted)
	}
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	products := &fakeProducts{products: map[uint64]domain.Product{
		7: {ID: 7},
	}}
	svc := NewReviewService(&fakeReviews{}, products)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SubmitReview(context.Background(), &domain.Review{
			ProductID: 7,
			UserID:    1,
			Rating:    rating,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("rating %d: err = %v, want ErrValidation", rating, err)
		}
	}
}

func TestSubmitReviewUnknownProduct(t *testing.T) {
	products := &fakeProducts{products: map[uint64]domain.Product{}}
	svc := NewReviewService(&fakeReviews{}, products)

	_, err := svc.SubmitReview(context.Background(), &domain.Review{
		ProductID: 99,
		UserID:    1,
		Rating:    4,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetProductReviews(t *testing.T) {
	reviews := &fakeReviews{}
	products := &fakeProducts{products: map[uint64]domain.Product{
		7: {ID: 7},
	}}
	svc := NewReviewService(reviews, products)

	for i := 1; i <= 3; i++ {
		if _, err := svc.SubmitReview(context.Background(), &domain.Review{
			ProductID: 7,
			UserID:    uint(i),
			Rating:    i + 2,
		}); err != nil {
			t.Fatalf("SubmitReview: %v", err)
		}
	}

	got, err := svc.GetProductReviews(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetProductReviews: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}
