package postgres

import (
	"context"
	"fmt"

	"hamroCraft/domain"

	"gorm.io/gorm"
)

type BehaviorRepository struct {
	DB *gorm.DB
}

func NewBehaviorRepository(db *gorm.DB) *BehaviorRepository {
	return &BehaviorRepository{
		DB: db,
	}
}

func (r *BehaviorRepository) Create(ctx context.Context, event *domain.BehaviorEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create behavior event: %w", err)
	}

	return nil
}

// GetUserItemSet returns the distinct product ids the user has viewed
// or purchased. Action kind does not matter for set overlap.
func (r *BehaviorRepository) GetUserItemSet(ctx context.Context, userID uint) (map[uint64]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var productIDs []uint64
	err := r.DB.WithContext(ctx).Model(&domain.BehaviorEvent{}).
		Where("user_id = ?", userID).
		Distinct("product_id").
		Pluck("product_id", &productIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load user item set: %w", err)
	}

	items := make(map[uint64]struct{}, len(productIDs))
	for _, id := range productIDs {
		items[id] = struct{}{}
	}

	return items, nil
}

// GetNeighborItemSets returns the full item sets of every user who
// interacted with at least one of the given products, keyed by user id.
// The excluded user is the one we are recommending for.
func (r *BehaviorRepository) GetNeighborItemSets(ctx context.Context, productIDs []uint64, excludeUserID uint) (map[uint]map[uint64]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(productIDs) == 0 {
		return map[uint]map[uint64]struct{}{}, nil
	}

	var neighborIDs []uint
	err := r.DB.WithContext(ctx).Model(&domain.BehaviorEvent{}).
		Where("product_id IN ?", productIDs).
		Where("user_id <> ?", excludeUserID).
		Distinct("user_id").
		Pluck("user_id", &neighborIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find neighbor users: %w", err)
	}

	if len(neighborIDs) == 0 {
		return map[uint]map[uint64]struct{}{}, nil
	}

	var rows []struct {
		UserID    uint
		ProductID uint64
	}
	err = r.DB.WithContext(ctx).Model(&domain.BehaviorEvent{}).
		Where("user_id IN ?", neighborIDs).
		Distinct("user_id", "product_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load neighbor item sets: %w", err)
	}

	sets := make(map[uint]map[uint64]struct{}, len(neighborIDs))
	for _, row := range rows {
		set, ok := sets[row.UserID]
		if !ok {
			set = make(map[uint64]struct{})
			sets[row.UserID] = set
		}
		set[row.ProductID] = struct{}{}
	}

	return sets, nil
}
