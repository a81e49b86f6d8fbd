package domain

import (
	"time"
)

const (
	BehaviorView     = "view"
	BehaviorPurchase = "purchase"
)

// BehaviorEvent is one view or purchase by one user. The collaborative
// recommender only consumes the per-user set of product ids derived
// from these rows; it never mutates them.
type BehaviorEvent struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID   string    `gorm:"column:event_id;uniqueIndex" json:"event_id"`
	UserID    uint      `gorm:"column:user_id;index" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;index" json:"product_id"`
	Action    string    `gorm:"column:action" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

func (BehaviorEvent) TableName() string {
	return "behavior_events"
}
