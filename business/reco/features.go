package reco

import (
	"hamroCraft/domain"
)

// featureSpace fixes one vector layout for a candidate pool so every
// product in the pool is embedded with aligned dimensions: one-hot
// category dims, one normalized price dim, one-hot seller dims.
type featureSpace struct {
	categories map[string]int
	sellers    map[uint]int
	maxPrice   float64
}

func newFeatureSpace(pool []domain.Product) *featureSpace {
	fs := &featureSpace{
		categories: make(map[string]int),
		sellers:    make(map[uint]int),
	}

	for _, p := range pool {
		if _, ok := fs.categories[p.Category]; !ok {
			fs.categories[p.Category] = len(fs.categories)
		}
		if _, ok := fs.sellers[p.SellerID]; !ok {
			fs.sellers[p.SellerID] = len(fs.sellers)
		}
		if p.Price > fs.maxPrice {
			fs.maxPrice = p.Price
		}
	}

	return fs
}

func (fs *featureSpace) dims() int {
	return len(fs.categories) + 1 + len(fs.sellers)
}

func (fs *featureSpace) vector(p domain.Product) []float64 {
	x := make([]float64, fs.dims())

	if i, ok := fs.categories[p.Category]; ok {
		x[i] = 1.0
	}

	if fs.maxPrice > 0 {
		x[len(fs.categories)] = p.Price / fs.maxPrice
	}

	if i, ok := fs.sellers[p.SellerID]; ok {
		x[len(fs.categories)+1+i] = 1.0
	}

	return x
}
