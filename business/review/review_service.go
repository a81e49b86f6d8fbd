package review

import (
	"context"
	"fmt"

	"hamroCraft/business/rating"
	"hamroCraft/domain"
	"hamroCraft/pkg/logger"
)

// ReviewRepository contract interface
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByProductID(ctx context.Context, productID uint64) ([]domain.Review, error)
}

// ProductRepository is the slice of the catalog the review flow needs:
// it owns the rating write-back the discovery core only reads.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	UpdateRatingStats(ctx context.Context, id uint64, average float64, count int, weighted float64) error
}

type reviewService struct {
	reviewRepo  ReviewRepository
	productRepo ProductRepository
}

func NewReviewService(reviewRepo ReviewRepository, productRepo ProductRepository) *reviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// SubmitReview stores the review and recomputes the product's rating
// aggregate, including the weighted rating the discovery engine ranks by.
func (s *reviewService) SubmitReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when submitting review")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if review.ProductID == 0 {
		logger.Error("Invalid review data: product id is required")
		return nil, fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}

	if review.UserID == 0 {
		logger.Error("Invalid review data: user id is required")
		return nil, fmt.Errorf("user id is required: %w", domain.ErrValidation)
	}

	if review.Rating < 1 || review.Rating > 5 {
		logger.Error("Invalid review data: rating out of range", "rating", review.Rating)
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", domain.ErrValidation)
	}

	product, err := s.productRepo.FindByID(ctx, review.ProductID)
	if err != nil {
		logger.Error("product not found for review", err)
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("failed to create review", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	average, count, weighted := rating.Apply(product.AverageRating, product.ReviewCount, review.Rating)

	if err := s.productRepo.UpdateRatingStats(ctx, product.ID, average, count, weighted); err != nil {
		logger.Error("failed to update rating stats", err)
		return nil, fmt.Errorf("failed to update rating stats: %w", err)
	}

	logger.Info("review submitted", "product_id", review.ProductID, "rating", review.Rating)

	return review, nil
}

func (s *reviewService) GetProductReviews(ctx context.Context, productID uint64) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product reviews")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if productID == 0 {
		logger.Error("invalid product id when get product reviews")
		return nil, fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}

	reviews, err := s.reviewRepo.FindByProductID(ctx, productID)
	if err != nil {
		logger.Error("failed to find reviews", err)
		return nil, err
	}

	return reviews, nil
}
