package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     seller_id        BIGINT NOT NULL,
//     title_en         TEXT NOT NULL,
//     title_ne         TEXT,
//     description_en   TEXT,
//     description_ne   TEXT,
//     category         TEXT NOT NULL,
//     price            NUMERIC NOT NULL,
//     stock            INTEGER DEFAULT 0,
//     is_active        BOOLEAN DEFAULT TRUE,
//     verify_status    TEXT DEFAULT 'pending',
//     average_rating   NUMERIC DEFAULT 0,
//     review_count     INTEGER DEFAULT 0,
//     weighted_rating  NUMERIC DEFAULT 0,
//     created_at       TIMESTAMPTZ DEFAULT NOW(),
//     updated_at       TIMESTAMPTZ DEFAULT NOW()
// );

const (
	VerifyStatusPending  = "pending"
	VerifyStatusApproved = "approved"
	VerifyStatusRejected = "rejected"
)

type Product struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID       uint      `gorm:"column:seller_id;index" json:"seller_id"`
	TitleEn        string    `gorm:"column:title_en;type:text" json:"title_en"`
	TitleNe        string    `gorm:"column:title_ne;type:text" json:"title_ne"`
	DescriptionEn  string    `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionNe  string    `gorm:"column:description_ne;type:text" json:"description_ne"`
	Category       string    `gorm:"column:category;type:text;index" json:"category"`
	Price          float64   `gorm:"column:price;type:numeric" json:"price"`
	Stock          int       `gorm:"column:stock;default:0" json:"stock"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	VerifyStatus   string    `gorm:"column:verify_status;default:pending" json:"verify_status"`
	AverageRating  float64   `gorm:"column:average_rating;default:0" json:"average_rating"`
	ReviewCount    int       `gorm:"column:review_count;default:0" json:"review_count"`
	WeightedRating float64   `gorm:"column:weighted_rating;default:0" json:"weighted_rating"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Eligible reports whether the product may appear in any discovery
// output (search, suggestions, recommendations).
func (p Product) Eligible() bool {
	return p.IsActive && p.VerifyStatus == VerifyStatusApproved
}

// CatalogFilter narrows eligible-product queries. Zero values mean
// "no constraint" for that field.
type CatalogFilter struct {
	Category string
	SellerID uint
	PriceMin float64
	PriceMax float64
	Limit    int
}
