package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type RewardType string

const (
	RewardDigitalBadge  RewardType = "digital_badge"
	RewardCertificate   RewardType = "certificate"
	RewardBrandToolkit  RewardType = "brand_toolkit"
	RewardNetworkAccess RewardType = "network_access"
	RewardPhysicalBadge RewardType = "physical_badge"
)

type RewardStatus string

const (
	RewardPending   RewardStatus = "pending"
	RewardDelivered RewardStatus = "delivered"
)

// RewardMetadata is an opaque structured payload (download URLs, badge tier,
// shipping details) serialized to a JSON column
type RewardMetadata map[string]interface{}

func (m RewardMetadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *RewardMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = RewardMetadata{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for RewardMetadata")
	}
	if len(data) == 0 {
		*m = RewardMetadata{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Reward is an append-only deliverable record. Renewal-bundle rows carry a
// RenewalYear and are unique per (company, year, type) so that repeated
// payment processing cannot duplicate a bundle. Badge-event and physical-badge
// rows have no renewal year and stay append-only. The only mutation ever
// applied is the pending->delivered transition of a physical badge.
type Reward struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `gorm:"not null;index;uniqueIndex:idx_rewards_company_year_type" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	RenewalYear *int           `gorm:"uniqueIndex:idx_rewards_company_year_type" json:"renewal_year,omitempty"`
	RewardType  RewardType     `gorm:"type:varchar(20);not null;uniqueIndex:idx_rewards_company_year_type" json:"reward_type"`
	Status      RewardStatus   `gorm:"type:varchar(10);default:'pending';index" json:"status"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
	Metadata    RewardMetadata `gorm:"type:text" json:"metadata"`
}

func (Reward) TableName() string {
	return "rewards"
}
