package model

import (
	"time"

	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"gorm.io/gorm"
)

// CompanyStatus tracks a company through the certification lifecycle
type CompanyStatus string

const (
	StatusDraft                CompanyStatus = "draft"
	StatusApplicationSubmitted CompanyStatus = "application_submitted"
	StatusUnderReview          CompanyStatus = "under_review"
	StatusAuditInProgress      CompanyStatus = "audit_in_progress"
	StatusConditional          CompanyStatus = "conditional"
	StatusVerified             CompanyStatus = "verified"
	StatusDidNotPass           CompanyStatus = "did_not_pass"
)

// PaymentStatus of a company's current renewal cycle
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Company is the certification subject. RenewalAmountCents, RenewalDueDate and
// DigitalBadgeURL are denormalized caches written only by the renewal and
// certification services; the rows under renewals/rewards are the source of
// truth. Standing is never stored here.
type Company struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name          string        `gorm:"not null;index" json:"name"`
	Website       string        `json:"website"`
	ContactEmail  string        `gorm:"not null" json:"contact_email"`
	EmployeeCount int           `gorm:"default:0" json:"employee_count"`
	Status        CompanyStatus `gorm:"type:varchar(30);default:'draft';index" json:"status"`

	// Evaluation outcome; nil until an advisor scores the application
	Score      *int            `json:"score,omitempty"`
	BadgeLevel seal.BadgeLevel `gorm:"type:varchar(10)" json:"badge_level,omitempty"`

	PaymentStatus         PaymentStatus `gorm:"type:varchar(10);default:'pending'" json:"payment_status"`
	RenewalAmountCents    int64         `gorm:"default:0" json:"renewal_amount_cents"`
	RenewalDueDate        *time.Time    `json:"renewal_due_date,omitempty"`
	PeaceSealCenterAccess bool          `gorm:"default:false" json:"peace_seal_center_access"`

	DigitalBadgeURL        string `gorm:"type:text" json:"digital_badge_url,omitempty"`
	PhysicalBadgeRequested bool   `gorm:"default:false" json:"physical_badge_requested"`
}

func (Company) TableName() string {
	return "companies"
}

// ApplicationEligible reports whether the company may submit its questionnaire
func (c *Company) ApplicationEligible() bool {
	return c.Status == StatusDraft
}

// QuestionnaireLocked reports whether the questionnaire is immutable.
// Everything from application_submitted onward freezes responses; an auditor
// unlock rolls status back to draft.
func (c *Company) QuestionnaireLocked() bool {
	return c.Status != StatusDraft
}
