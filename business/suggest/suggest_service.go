package suggest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"hamroCraft/business/textmatch"
	"hamroCraft/domain"
)

const (
	// minQueryRunes is the shortest normalized partial query worth
	// autocompleting; anything shorter carries too little signal.
	minQueryRunes = 2

	defaultLimit = 10
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

// Suggest returns up to limit autocomplete entries for a partial
// query, deduplicated by normalized text and ordered by weighted
// rating so higher-quality items surface first.
func (s *Service) Suggest(ctx context.Context, partialQuery string, limit int) ([]domain.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = defaultLimit
	}

	partial := textmatch.Normalize(partialQuery)
	if utf8.RuneCountInString(partial) < minQueryRunes {
		return []domain.Suggestion{}, nil
	}

	candidates, err := s.catalogRepo.FindEligible(ctx, domain.CatalogFilter{})
	if err != nil {
		return nil, fmt.Errorf("load suggestion candidates: %w", err)
	}

	type entry struct {
		suggestion domain.Suggestion
		normalized string
		weighted   float64
	}

	matches := make([]entry, 0, len(candidates))
	for _, p := range candidates {
		title := p.TitleEn
		if title == "" {
			title = p.TitleNe
		}

		normalized := textmatch.Normalize(title)
		if normalized == "" {
			continue
		}

		// prefix matches are conceptually stronger, but both qualify
		if !strings.HasPrefix(normalized, partial) && !strings.Contains(normalized, partial) {
			continue
		}

		matches = append(matches, entry{
			suggestion: domain.Suggestion{Text: title, Category: p.Category},
			normalized: normalized,
			weighted:   p.WeightedRating,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].weighted != matches[j].weighted {
			return matches[i].weighted > matches[j].weighted
		}
		return matches[i].normalized < matches[j].normalized
	})

	suggestions := make([]domain.Suggestion, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, m := range matches {
		if _, dup := seen[m.normalized]; dup {
			continue
		}
		seen[m.normalized] = struct{}{}

		suggestions = append(suggestions, m.suggestion)
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions, nil
}
