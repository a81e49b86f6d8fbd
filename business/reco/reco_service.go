package reco

import (
	"context"
	"fmt"
	"sort"

	"hamroCraft/domain"
	"hamroCraft/pkg/logger"
)

const defaultLimit = 10

// offCategoryShare caps how much of a related-products list may come
// from outside the source item's category: at most one in five.
const offCategoryShare = 5

// CatalogRepository contract interface. FindEligible,
// FindEligibleByIDs and FindTopRated must only return active,
// verification-approved products; FindByID reports domain.ErrNotFound
// for unknown ids. FindTopRated orders by weighted rating descending,
// then id ascending.
type CatalogRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindEligible(ctx context.Context, filter domain.CatalogFilter) ([]domain.Product, error)
	FindEligibleByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
	FindTopRated(ctx context.Context, limit int) ([]domain.Product, error)
}

// BehaviorRepository exposes read-only purchase/view history.
// A user with no history yields an empty set, never an error.
type BehaviorRepository interface {
	GetUserItemSet(ctx context.Context, userID uint) (map[uint64]struct{}, error)
	GetNeighborItemSets(ctx context.Context, itemIDs []uint64, excludeUserID uint) (map[uint]map[uint64]struct{}, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// PopularityStore supplies trending product ids for backfill.
type PopularityStore interface {
	TopProducts(ctx context.Context, limit int) ([]uint64, error)
}

type Service struct {
	catalogRepo  CatalogRepository
	behaviorRepo BehaviorRepository
	userRepo     UserRepository
	popularity   PopularityStore
}

func NewService(
	catalogRepo CatalogRepository,
	behaviorRepo BehaviorRepository,
	userRepo UserRepository,
	popularity PopularityStore,
) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		behaviorRepo: behaviorRepo,
		userRepo:     userRepo,
		popularity:   popularity,
	}
}

// RelatedProducts recommends content-based neighbors of one item:
// same-category, similar-price, or same-seller products ranked by
// cosine similarity, then weighted rating. At most a fifth of the
// output may sit outside the source category; the list is truncated
// rather than padded with off-category items.
func (s *Service) RelatedProducts(ctx context.Context, productID uint64, limit int) ([]domain.RecommendedProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if productID == 0 {
		return nil, fmt.Errorf("product id is required: %w", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	source, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find source product %d: %w", productID, err)
	}

	pool, err := s.loadRelatedCandidates(ctx, source, limit)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return []domain.RecommendedProduct{}, nil
	}

	space := newFeatureSpace(append(pool, source))
	sourceVec := space.vector(source)

	scored := make([]domain.RecommendedProduct, 0, len(pool))
	for _, p := range pool {
		sim := Cosine(sourceVec, space.vector(p))
		if sim < cosineThreshold {
			continue
		}
		scored = append(scored, domain.RecommendedProduct{Product: p, Score: sim})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Product.WeightedRating != scored[j].Product.WeightedRating {
			return scored[i].Product.WeightedRating > scored[j].Product.WeightedRating
		}
		return scored[i].Product.ID < scored[j].Product.ID
	})

	results := make([]domain.RecommendedProduct, 0, limit)
	offCategory := 0
	for _, rec := range scored {
		if len(results) == limit {
			break
		}
		if rec.Product.Category != source.Category {
			// admit an off-category item only while it keeps the
			// off-category share at or below one fifth
			if (offCategory+1)*offCategoryShare > len(results)+1 {
				continue
			}
			offCategory++
		}
		results = append(results, rec)
	}

	return results, nil
}

// PersonalizedRecommendations recommends items purchased or viewed by
// behaviorally similar users (Jaccard ≥ 0.3) that the target has not
// seen, ranked by accumulated neighbor similarity amplified by the
// item's weighted rating. Short lists are padded from trending and
// top-rated eligible items up to limit.
func (s *Service) PersonalizedRecommendations(ctx context.Context, userID uint, limit int) ([]domain.RecommendedProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if userID == 0 {
		return nil, fmt.Errorf("user id is required: %w", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}

	history, err := s.behaviorRepo.GetUserItemSet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user history: %w", err)
	}

	results := make([]domain.RecommendedProduct, 0, limit)
	seen := make(map[uint64]struct{}, limit)

	if len(history) > 0 {
		collaborative, err := s.collaborate(ctx, userID, history, limit)
		if err != nil {
			return nil, err
		}
		for _, rec := range collaborative {
			results = append(results, rec)
			seen[rec.Product.ID] = struct{}{}
		}
	}

	if len(results) < limit {
		if err := s.backfill(ctx, &results, seen, history, limit); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// collaborate runs the collaborative strategy: pool the items of
// sufficiently similar neighbors that the target has not interacted
// with, scored by Σ neighbor-similarity × (1 + weighted rating).
func (s *Service) collaborate(
	ctx context.Context,
	userID uint,
	history map[uint64]struct{},
	limit int,
) ([]domain.RecommendedProduct, error) {

	historyIDs := make([]uint64, 0, len(history))
	for id := range history {
		historyIDs = append(historyIDs, id)
	}

	neighbors, err := s.behaviorRepo.GetNeighborItemSets(ctx, historyIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("load neighbor histories: %w", err)
	}

	simSum := make(map[uint64]float64)
	for _, items := range neighbors {
		sim := Jaccard(history, items)
		if sim < jaccardThreshold {
			continue
		}
		for id := range items {
			if _, known := history[id]; known {
				continue
			}
			simSum[id] += sim
		}
	}

	if len(simSum) == 0 {
		return nil, nil
	}

	ids := make([]uint64, 0, len(simSum))
	for id := range simSum {
		ids = append(ids, id)
	}

	products, err := s.catalogRepo.FindEligibleByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load recommended products: %w", err)
	}

	scored := make([]domain.RecommendedProduct, 0, len(products))
	for _, p := range products {
		scored = append(scored, domain.RecommendedProduct{
			Product: p,
			Score:   simSum[p.ID] * (1 + p.WeightedRating),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Product.ID < scored[j].Product.ID
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored, nil
}

// backfill pads a short recommendation list, first from the trending
// store, then from top-rated eligible catalog items. The user's own
// history never comes back as a recommendation.
func (s *Service) backfill(
	ctx context.Context,
	results *[]domain.RecommendedProduct,
	seen map[uint64]struct{},
	history map[uint64]struct{},
	limit int,
) error {

	appendRec := func(p domain.Product, score float64) {
		if len(*results) >= limit {
			return
		}
		if _, dup := seen[p.ID]; dup {
			return
		}
		if _, known := history[p.ID]; known {
			return
		}
		seen[p.ID] = struct{}{}
		*results = append(*results, domain.RecommendedProduct{Product: p, Score: score})
	}

	if s.popularity != nil {
		trendingIDs, err := s.popularity.TopProducts(ctx, limit*3)
		if err != nil {
			// trending is best-effort; fall through to the catalog
			logger.Warn("popularity backfill unavailable", "error", err)
		} else if len(trendingIDs) > 0 {
			products, err := s.catalogRepo.FindEligibleByIDs(ctx, trendingIDs)
			if err != nil {
				return fmt.Errorf("load trending products: %w", err)
			}

			byID := make(map[uint64]domain.Product, len(products))
			for _, p := range products {
				byID[p.ID] = p
			}
			for _, id := range trendingIDs {
				if p, ok := byID[id]; ok {
					appendRec(p, p.WeightedRating)
				}
			}
		}
	}

	if len(*results) >= limit {
		return nil
	}

	// Size the fetch past everything appendRec will skip, so a user
	// whose history covers the best-rated items still gets a full list
	// when enough eligible unseen items exist.
	rows, err := s.catalogRepo.FindTopRated(ctx, limit+len(seen)+len(history))
	if err != nil {
		return fmt.Errorf("load backfill products: %w", err)
	}

	for _, p := range rows {
		appendRec(p, p.WeightedRating)
	}

	return nil
}
