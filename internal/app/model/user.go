package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser       UserRole = "user"        // company-side user
	RoleAdvisor    UserRole = "advisor"     // evaluates applications, raises issues
	RoleAdmin      UserRole = "admin"       // platform operator
	RoleSuperAdmin UserRole = "super_admin" // full access
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Role         UserRole       `gorm:"type:varchar(20);default:'user'" json:"role"`
	CompanyID    *uint          `gorm:"index" json:"company_id,omitempty"` // set for company-side users
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff reports whether the role can perform operator actions
func (u *User) IsStaff() bool {
	return u.Role == RoleAdvisor || u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
