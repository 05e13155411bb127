package model

import (
	"time"

	"gorm.io/gorm"
)

// Donation is a settled gift to a campaign. The payment itself clears through
// an external gateway; this row records the already-settled transaction.
type Donation struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CampaignID uint     `gorm:"not null;index" json:"campaign_id"`
	Campaign   Campaign `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID     *uint    `gorm:"index" json:"user_id,omitempty"` // nil for anonymous donations

	AmountCents   int64     `gorm:"not null" json:"amount_cents"`
	ReceiptNumber string    `gorm:"type:varchar(40);uniqueIndex;not null" json:"receipt_number"`
	TransactionID string    `gorm:"type:varchar(100);not null" json:"transaction_id"`
	DonorName     string    `gorm:"type:varchar(100)" json:"donor_name,omitempty"`
	DonatedAt     time.Time `gorm:"not null" json:"donated_at"`
}

func (Donation) TableName() string {
	return "donations"
}
