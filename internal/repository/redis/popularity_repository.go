package redis

import (
	"context"
	"fmt"
	"strconv"

	"hamroCraft/domain"

	"github.com/redis/go-redis/v9"
)

const trendingKey = "trending:products"

// purchases move the trending board harder than views
const (
	viewWeight     = 1
	purchaseWeight = 3
)

// PopularityRepository keeps a sorted set of product interaction
// counts. It backs the cold-start side of personalized
// recommendations; losing it only degrades backfill quality.
type PopularityRepository struct {
	client *redis.Client
}

func NewPopularityRepository(client *redis.Client) *PopularityRepository {
	return &PopularityRepository{
		client: client,
	}
}

func (r *PopularityRepository) Increment(ctx context.Context, productID uint64, action string) error {
	weight := viewWeight
	if action == domain.BehaviorPurchase {
		weight = purchaseWeight
	}

	member := strconv.FormatUint(productID, 10)
	if err := r.client.ZIncrBy(ctx, trendingKey, float64(weight), member).Err(); err != nil {
		return fmt.Errorf("failed to bump trending score: %w", err)
	}

	return nil
}

// TopProducts returns up to limit product ids ordered by trending
// score, highest first.
func (r *PopularityRepository) TopProducts(ctx context.Context, limit int) ([]uint64, error) {
	if limit <= 0 {
		return nil, nil
	}

	members, err := r.client.ZRevRange(ctx, trendingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trending board: %w", err)
	}

	ids := make([]uint64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
