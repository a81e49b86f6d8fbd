package search

import (
	"context"
	"fmt"
	"sort"

	"hamroCraft/business/textmatch"
	"hamroCraft/domain"
)

// CatalogRepository contract interface. FindEligible must only return
// active, verification-approved products.
type CatalogRepository interface {
	FindEligible(ctx context.Context, filter domain.CatalogFilter) ([]domain.Product, error)
}

type Service struct {
	catalogRepo CatalogRepository
}

func NewService(catalogRepo CatalogRepository) *Service {
	return &Service{
		catalogRepo: catalogRepo,
	}
}

// Search runs a free-text query over the eligible catalog and returns
// one page of results ranked by relevance. An empty or whitespace-only
// query is not an error; it yields an empty, well-formed result.
func (s *Service) Search(ctx context.Context, query string, page, pageSize int) (domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("context error: %w", err)
	}

	if page < 1 || pageSize < 1 {
		return domain.SearchResult{}, fmt.Errorf("page and page size must be positive: %w", domain.ErrValidation)
	}

	normalized := textmatch.Normalize(query)
	if normalized == "" {
		return domain.SearchResult{
			Items:       []domain.Product{},
			TotalCount:  0,
			CurrentPage: page,
			TotalPages:  0,
		}, nil
	}

	candidates, err := s.catalogRepo.FindEligible(ctx, domain.CatalogFilter{})
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("load search candidates: %w", err)
	}

	queryTokens := textmatch.Tokenize(normalized)

	scored := make([]scoredProduct, 0, len(candidates))
	for _, p := range candidates {
		boost, score, ok := relevanceScore(normalized, queryTokens, p)
		if !ok {
			continue
		}
		scored = append(scored, scoredProduct{product: p, boost: boost, score: score})
	}

	// Tier first: a description-only match must never outrank an exact
	// title match, whatever the ratings. Equal scores fall back to
	// product id so repeated searches over an unchanged catalog return
	// identical ordering.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].boost != scored[j].boost {
			return scored[i].boost > scored[j].boost
		}
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].product.ID < scored[j].product.ID
	})

	totalCount := len(scored)
	totalPages := (totalCount + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	items := []domain.Product{}
	if start < totalCount {
		end := start + pageSize
		if end > totalCount {
			end = totalCount
		}
		items = make([]domain.Product, 0, end-start)
		for _, sc := range scored[start:end] {
			items = append(items, sc.product)
		}
	}

	return domain.SearchResult{
		Items:       items,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}
