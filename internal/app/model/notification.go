package model

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationRenewalExpiring NotificationType = "renewal_expiring"
	NotificationRewardDelivered NotificationType = "reward_delivered"
	NotificationIssueRaised     NotificationType = "issue_raised"
)

// Notification is an in-app message; the outbound mailer is a separate system
// that consumes these rows.
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint             `gorm:"not null;index" json:"user_id"`
	Type   NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title  string           `gorm:"not null" json:"title"`
	Body   string           `gorm:"type:text" json:"body"`
	Read   bool             `gorm:"default:false;index" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
