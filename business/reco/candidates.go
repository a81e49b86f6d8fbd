package reco

import (
	"context"
	"fmt"

	"hamroCraft/domain"
)

// loadRelatedCandidates pools eligible products around a source item:
// same category, similar price (±50%), and same seller, each bucket
// capped at limit*3 so the scoring pass stays bounded.
func (s *Service) loadRelatedCandidates(
	ctx context.Context,
	source domain.Product,
	limit int,
) ([]domain.Product, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	candidateLimit := limit * 3
	if candidateLimit < limit {
		candidateLimit = limit
	}

	filters := []domain.CatalogFilter{
		{Category: source.Category, Limit: candidateLimit},
		{PriceMin: source.Price * 0.5, PriceMax: source.Price * 1.5, Limit: candidateLimit},
		{SellerID: source.SellerID, Limit: candidateLimit},
	}

	seen := make(map[uint64]struct{})
	pool := make([]domain.Product, 0, candidateLimit*len(filters))

	for _, filter := range filters {
		rows, err := s.catalogRepo.FindEligible(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("load related candidates: %w", err)
		}

		for _, p := range rows {
			if p.ID == source.ID {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			pool = append(pool, p)
		}
	}

	return pool, nil
}
