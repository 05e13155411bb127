package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type IssueRepository interface {
	Create(issue *model.Issue) error
	FindByID(id uint) (*model.Issue, error)
	FindByCompanyID(companyID uint, status string) ([]model.Issue, error)
	Update(issue *model.Issue) error
	CountActiveByCompanyID(companyID uint) (int64, error)
}

type issueRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIssueRepository(db *gorm.DB, log *logger.Logger) IssueRepository {
	return &issueRepository{db: db, log: log}
}

func (r *issueRepository) Create(issue *model.Issue) error {
	r.log.Debug("Creating issue in database", map[string]interface{}{
		"company_id": issue.CompanyID,
		"issue_type": issue.IssueType,
		"severity":   issue.Severity,
	})

	if err := r.db.Create(issue).Error; err != nil {
		r.log.Error("Failed to create issue in database", err, map[string]interface{}{
			"company_id": issue.CompanyID,
		})
		return err
	}
	return nil
}

func (r *issueRepository) FindByID(id uint) (*model.Issue, error) {
	var issue model.Issue
	if err := r.db.First(&issue, id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *issueRepository) FindByCompanyID(companyID uint, status string) ([]model.Issue, error) {
	var issues []model.Issue
	query := r.db.Where("company_id = ?", companyID).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&issues).Error; err != nil {
		r.log.Error("Failed to find issues by company ID in database", err, map[string]interface{}{
			"company_id": companyID,
		})
		return nil, err
	}
	return issues, nil
}

func (r *issueRepository) Update(issue *model.Issue) error {
	r.log.Debug("Updating issue in database", map[string]interface{}{
		"issue_id": issue.ID,
		"status":   issue.Status,
	})

	if err := r.db.Save(issue).Error; err != nil {
		r.log.Error("Failed to update issue in database", err, map[string]interface{}{
			"issue_id": issue.ID,
		})
		return err
	}
	return nil
}

// CountActiveByCompanyID is the input to standing derivation; always a live
// count, never a cached flag
func (r *issueRepository) CountActiveByCompanyID(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Issue{}).
		Where("company_id = ? AND status = ?", companyID, model.IssueActive).
		Count(&count).Error
	if err != nil {
		r.log.Error("Failed to count active issues in database", err, map[string]interface{}{
			"company_id": companyID,
		})
		return 0, err
	}
	return count, nil
}
