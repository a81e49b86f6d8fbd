package behavior

import (
	"context"
	"fmt"
	"sort"

	"hamroCraft/domain"
	"hamroCraft/pkg/logger"

	"github.com/google/uuid"
)

// BehaviorRepository contract interface
type BehaviorRepository interface {
	Create(ctx context.Context, event *domain.BehaviorEvent) error
	GetUserItemSet(ctx context.Context, userID uint) (map[uint64]struct{}, error)
}

// PopularityStore tracks trending products for recommendation backfill.
type PopularityStore interface {
	Increment(ctx context.Context, productID uint64, action string) error
}

type behaviorService struct {
	behaviorRepo BehaviorRepository
	popularity   PopularityStore
}

func NewBehaviorService(behaviorRepo BehaviorRepository, popularity PopularityStore) *behaviorService {
	return &behaviorService{
		behaviorRepo: behaviorRepo,
		popularity:   popularity,
	}
}

// RecordEvent appends one view or purchase to the user's history and
// bumps the trending counter. Trending is best-effort; the event row
// is the source of truth.
func (s *behaviorService) RecordEvent(ctx context.Context, userID uint, productID uint64, action string) (*domain.BehaviorEvent, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recording behavior event")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if userID == 0 {
		logger.Error("invalid user id when recording behavior event")
		return nil, fmt.Errorf("user id is required: %w", domain.ErrValidation)
	}

	if productID == 0 {
		logger.Error("invalid product id when recording behavior event")
		return nil, fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}

	if action != domain.BehaviorView && action != domain.BehaviorPurchase {
		logger.Error("invalid behavior action", "action", action)
		return nil, fmt.Errorf("action must be view or purchase: %w", domain.ErrValidation)
	}

	event := &domain.BehaviorEvent{
		EventID:   uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Action:    action,
	}

	if err := s.behaviorRepo.Create(ctx, event); err != nil {
		logger.Error("failed to record behavior event", err)
		return nil, fmt.Errorf("failed to record behavior event: %w", err)
	}

	if s.popularity != nil {
		if err := s.popularity.Increment(ctx, productID, action); err != nil {
			logger.Warn("failed to bump popularity counter", "error", err)
		}
	}

	return event, nil
}

func (s *behaviorService) GetUserHistory(ctx context.Context, userID uint) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get user history")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if userID == 0 {
		logger.Error("invalid user id when get user history")
		return nil, fmt.Errorf("user id is required: %w", domain.ErrValidation)
	}

	items, err := s.behaviorRepo.GetUserItemSet(ctx, userID)
	if err != nil {
		logger.Error("failed to load user history", err)
		return nil, err
	}

	ids := make([]uint64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
