package postgres

import (
	"context"
	"errors"
	"fmt"

	"hamroCraft/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product

	err := r.DB.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, fmt.Errorf("product not found: %w", domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

// FindEligible returns only products that may appear in discovery
// output: active listings that passed admin verification. The filter's
// zero values mean "no constraint".
func (r *ProductRepository) FindEligible(ctx context.Context, filter domain.CatalogFilter) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Where("verify_status = ?", domain.VerifyStatusApproved)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SellerID != 0 {
		query = query.Where("seller_id = ?", filter.SellerID)
	}
	if filter.PriceMin > 0 {
		query = query.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax > 0 {
		query = query.Where("price <= ?", filter.PriceMax)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var products []domain.Product
	if err := query.Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find eligible products: %w", err)
	}

	return products, nil
}

// FindTopRated returns the highest-weighted eligible products, ties
// broken by id, for recommendation backfill.
func (r *ProductRepository) FindTopRated(ctx context.Context, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		return nil, nil
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Where("verify_status = ?", domain.VerifyStatusApproved).
		Order("weighted_rating desc, id asc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find top rated products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindEligibleByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_active = ?", true).
		Where("verify_status = ?", domain.VerifyStatusApproved).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible products by ids: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existingProduct domain.Product
	if err := r.DB.WithContext(ctx).First(&existingProduct, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product not found: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to find product: %w", err)
	}

	updateData := map[string]interface{}{
		"title_en":       product.TitleEn,
		"title_ne":       product.TitleNe,
		"description_en": product.DescriptionEn,
		"description_ne": product.DescriptionNe,
		"category":       product.Category,
		"price":          product.Price,
		"stock":          product.Stock,
		"is_active":      product.IsActive,
		"verify_status":  product.VerifyStatus,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found or already deleted: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *ProductRepository) UpdateVerifyStatus(ctx context.Context, id uint64, status string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Update("verify_status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update verify status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found: %w", domain.ErrNotFound)
	}

	return nil
}

// UpdateRatingStats writes the rating aggregate recomputed by the
// review flow. All three columns move together so ranking never sees a
// half-updated product.
func (r *ProductRepository) UpdateRatingStats(ctx context.Context, id uint64, average float64, count int, weighted float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"average_rating":  average,
		"review_count":    count,
		"weighted_rating": weighted,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update rating stats: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found or already deleted: %w", domain.ErrNotFound)
	}

	return nil
}
