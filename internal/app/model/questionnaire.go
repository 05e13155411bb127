package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"gorm.io/gorm"
)

// ResponseMap stores questionnaire answers keyed by section then field,
// serialized to a JSON column. Progress is always recomputed from this map
// against the schema, never persisted.
type ResponseMap seal.Responses

func (m ResponseMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *ResponseMap) Scan(value interface{}) error {
	if value == nil {
		*m = ResponseMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for ResponseMap")
	}
	if len(data) == 0 {
		*m = ResponseMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Questionnaire holds one company's Peace Seal application responses.
// Created empty on first save, mutated section-by-section while the company is
// in draft, immutable once the application is submitted.
type Questionnaire struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `gorm:"uniqueIndex;not null" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Responses     ResponseMap `gorm:"type:text" json:"responses"`
	ActiveSection string      `gorm:"type:varchar(50)" json:"active_section"` // section the applicant last worked on
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
}

func (Questionnaire) TableName() string {
	return "questionnaires"
}
