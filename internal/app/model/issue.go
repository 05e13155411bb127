package model

import (
	"time"

	"gorm.io/gorm"
)

type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "low"
	SeverityMedium   IssueSeverity = "medium"
	SeverityHigh     IssueSeverity = "high"
	SeverityCritical IssueSeverity = "critical"
)

type IssueStatus string

const (
	IssueActive    IssueStatus = "active"
	IssueResolved  IssueStatus = "resolved"
	IssueDismissed IssueStatus = "dismissed"
)

// Issue is a concern raised against a company from an external evaluation.
// active -> resolved|dismissed is terminal; a reopened concern is a new Issue.
// The response deadline is fixed at creation and never moves.
type Issue struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `gorm:"not null;index" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	EvaluationID            string        `gorm:"type:varchar(100);index" json:"evaluation_id"`
	IssueType               string        `gorm:"type:varchar(50);not null" json:"issue_type"`
	Severity                IssueSeverity `gorm:"type:varchar(10);not null" json:"severity"`
	Status                  IssueStatus   `gorm:"type:varchar(10);default:'active';index" json:"status"`
	EvaluationNotes         string        `gorm:"type:text" json:"evaluation_notes"`
	CompanyResponseDeadline time.Time     `gorm:"not null" json:"company_response_deadline"`
	CompanyResponse         string        `gorm:"type:text" json:"company_response,omitempty"`
	ResolvedAt              *time.Time    `json:"resolved_at,omitempty"`
}

func (Issue) TableName() string {
	return "issues"
}

// Closed reports whether the issue has reached a terminal status
func (i *Issue) Closed() bool {
	return i.Status == IssueResolved || i.Status == IssueDismissed
}
