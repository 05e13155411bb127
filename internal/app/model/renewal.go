package model

import (
	"time"

	"gorm.io/gorm"
)

// Renewal is one yearly paid continuation of a company's certification.
// The (company_id, renewal_year) pair is unique at the store level; the
// application-side duplicate check is only a fast path.
type Renewal struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `gorm:"not null;uniqueIndex:idx_renewals_company_year" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	RenewalYear          int           `gorm:"not null;uniqueIndex:idx_renewals_company_year" json:"renewal_year"`
	AmountCents          int64         `gorm:"not null" json:"amount_cents"`
	PaymentStatus        PaymentStatus `gorm:"type:varchar(10);default:'pending';index" json:"payment_status"`
	PaymentTransactionID string        `gorm:"type:varchar(100)" json:"payment_transaction_id,omitempty"`
	PaymentDate          *time.Time    `json:"payment_date,omitempty"`
	ExpiresAt            time.Time     `gorm:"not null;index" json:"expires_at"`
}

func (Renewal) TableName() string {
	return "renewals"
}

// Paid reports whether this renewal's payment has cleared
func (r *Renewal) Paid() bool {
	return r.PaymentStatus == PaymentPaid
}
