package product

import (
	"context"
	"errors"
	"fmt"

	"hamroCraft/domain"
	"hamroCraft/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	UpdateVerifyStatus(ctx context.Context, id uint64, status string) error
	Delete(ctx context.Context, id uint64) error
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return nil, err
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.TitleEn == "" && product.TitleNe == "" {
		logger.Error("Invalid product data: title is required")
		return nil, fmt.Errorf("title is required: %w", domain.ErrValidation)
	}

	if product.Category == "" {
		logger.Error("Invalid product data: category is required")
		return nil, fmt.Errorf("category is required: %w", domain.ErrValidation)
	}

	if product.SellerID == 0 {
		logger.Error("Invalid product data: seller is required")
		return nil, fmt.Errorf("seller is required: %w", domain.ErrValidation)
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, fmt.Errorf("price must be greater than 0: %w", domain.ErrValidation)
	}

	if product.Stock < 0 {
		logger.Error("Invalid product data: stock cannot be negative")
		return nil, fmt.Errorf("stock cannot be negative: %w", domain.ErrValidation)
	}

	// New listings always start unverified with clean rating state.
	product.VerifyStatus = domain.VerifyStatusPending
	product.AverageRating = 0
	product.ReviewCount = 0
	product.WeightedRating = 0

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully", "product_id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, sellerID uint, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("Invalid product data: ID is required")
		return nil, fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}

	if product.TitleEn == "" && product.TitleNe == "" {
		logger.Error("Invalid product data: title is required")
		return nil, fmt.Errorf("title is required: %w", domain.ErrValidation)
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, fmt.Errorf("price must be greater than 0: %w", domain.ErrValidation)
	}

	if product.Stock < 0 {
		logger.Error("Invalid product data: stock cannot be negative")
		return nil, fmt.Errorf("stock cannot be negative: %w", domain.ErrValidation)
	}

	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("product not found", err)
		return nil, err
	}

	if existing.SellerID != sellerID {
		logger.Error("seller does not own product", "seller_id", sellerID, "product_id", product.ID)
		return nil, errors.New("product does not belong to seller")
	}

	// Edits reset verification; rating state is owned by the review flow.
	product.SellerID = existing.SellerID
	product.VerifyStatus = domain.VerifyStatusPending
	product.AverageRating = existing.AverageRating
	product.ReviewCount = existing.ReviewCount
	product.WeightedRating = existing.WeightedRating

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updated, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated success", "product_id", product.ID)

	return &updated, nil
}

// VerifyProduct moves a listing through the admin verification
// workflow. Only approved listings are discoverable.
func (s *productService) VerifyProduct(ctx context.Context, id uint64, status string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when verifying product")
		return fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("invalid product id when verifying product")
		return fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}

	if status != domain.VerifyStatusApproved && status != domain.VerifyStatusRejected {
		logger.Error("invalid verification status", "status", status)
		return fmt.Errorf("verification status must be approved or rejected: %w", domain.ErrValidation)
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		logger.Error("product not found", err)
		return err
	}

	if err := s.productRepo.UpdateVerifyStatus(ctx, id, status); err != nil {
		logger.Error("failed to update verification status", err)
		return fmt.Errorf("failed to update verification status: %w", err)
	}

	logger.Info("product verification updated", "product_id", id, "status", status)

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid product id when deleting product")
		return fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		logger.Error("product not found", err)
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted success", "product_id", id)

	return nil
}
