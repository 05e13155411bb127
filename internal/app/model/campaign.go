package model

import (
	"time"

	"gorm.io/gorm"
)

// Campaign is a fundraising drive on the platform. RaisedCents is a
// denormalized cache refreshed from the donations table; the Redis layer
// caches the hot read.
type Campaign struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	GoalCents   int64  `gorm:"not null" json:"goal_cents"`
	RaisedCents int64  `gorm:"default:0" json:"raised_cents"`
	Active      bool   `gorm:"default:true;index" json:"active"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
