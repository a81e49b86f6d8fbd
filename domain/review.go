package domain

import (
	"time"
)

// CREATE TABLE public.reviews (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id  BIGINT NOT NULL,
//     user_id     BIGINT NOT NULL,
//     rating      INTEGER NOT NULL,
//     comment     TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint64    `gorm:"column:product_id;index" json:"product_id"`
	UserID    uint      `gorm:"column:user_id;index" json:"user_id"`
	Rating    int       `gorm:"column:rating" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
