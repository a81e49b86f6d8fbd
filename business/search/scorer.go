package search

import (
	"strings"

	"hamroCraft/business/textmatch"
	"hamroCraft/domain"
)

const (
	// fuzzyThreshold is the system-wide edit-distance tolerance: single
	// and double-character typos match, unrelated words do not.
	fuzzyThreshold = 2

	// maxQueryTokens caps the tokens considered for fuzzy matching so
	// degenerate repeated-word queries stay bounded.
	maxQueryTokens = 16

	exactTitleBoost  = 3.0
	titleBoost       = 2.0
	descriptionBoost = 1.0
)

// scoredProduct pairs a candidate with its match tier and relevance
// score for the duration of one ranking pass. The tier orders results
// first; the rating-amplified score only breaks ties inside a tier.
type scoredProduct struct {
	product domain.Product
	boost   float64
	score   float64
}

// relevanceScore ranks a candidate against a normalized query. The
// strongest matching tier sets the base boost: exact title ×3, title
// substring ×2, description substring ×1. A fuzzy token hit counts at
// the substring tier of the field it landed in, never the exact tier.
// The weighted rating amplifies the boost but cannot move an item
// across tiers. ok is false when the product carries no signal at all.
func relevanceScore(query string, queryTokens []string, p domain.Product) (boost, score float64, ok bool) {
	titles := []string{
		textmatch.Normalize(p.TitleEn),
		textmatch.Normalize(p.TitleNe),
	}
	descriptions := []string{
		textmatch.Normalize(p.DescriptionEn),
		textmatch.Normalize(p.DescriptionNe),
	}

	for _, title := range titles {
		if title == "" {
			continue
		}
		if title == query {
			boost = exactTitleBoost
			break
		}
		if strings.Contains(title, query) {
			boost = maxBoost(boost, titleBoost)
		}
	}

	if boost < exactTitleBoost {
		for _, description := range descriptions {
			if description != "" && strings.Contains(description, query) {
				boost = maxBoost(boost, descriptionBoost)
			}
		}
	}

	// Fuzzy pass only when no stronger textual signal exists for the
	// field. Query tokens are matched one-by-one against field tokens.
	if boost < titleBoost && fuzzyHit(queryTokens, titles) {
		boost = maxBoost(boost, titleBoost)
	}
	if boost < descriptionBoost && fuzzyHit(queryTokens, descriptions) {
		boost = maxBoost(boost, descriptionBoost)
	}

	if boost == 0 {
		return 0, 0, false
	}

	return boost, boost * (1 + p.WeightedRating), true
}

func fuzzyHit(queryTokens []string, fields []string) bool {
	if len(queryTokens) > maxQueryTokens {
		queryTokens = queryTokens[:maxQueryTokens]
	}

	for _, field := range fields {
		if field == "" {
			continue
		}
		for _, candidate := range strings.Split(field, " ") {
			for _, token := range queryTokens {
				if textmatch.FuzzyMatch(token, candidate, fuzzyThreshold) {
					return true
				}
			}
		}
	}

	return false
}

func maxBoost(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
