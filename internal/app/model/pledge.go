package model

import (
	"time"

	"gorm.io/gorm"
)

type PledgeStatus string

const (
	PledgeActive    PledgeStatus = "active"
	PledgeFulfilled PledgeStatus = "fulfilled"
	PledgeCancelled PledgeStatus = "cancelled"
)

// Pledge is a commitment to give, optionally recurring, fulfilled by later donations
type Pledge struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CampaignID uint     `gorm:"not null;index" json:"campaign_id"`
	Campaign   Campaign `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID     uint     `gorm:"not null;index" json:"user_id"`

	AmountCents int64        `gorm:"not null" json:"amount_cents"`
	Recurring   bool         `gorm:"default:false" json:"recurring"`
	Status      PledgeStatus `gorm:"type:varchar(10);default:'active';index" json:"status"`
}

func (Pledge) TableName() string {
	return "pledges"
}
