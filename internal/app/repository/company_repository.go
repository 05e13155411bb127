package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *model.Company) error
	FindByID(id uint) (*model.Company, error)
	FindByIDTx(tx *gorm.DB, id uint) (*model.Company, error)
	Update(company *model.Company) error
	UpdateTx(tx *gorm.DB, company *model.Company) error
	UpdateStatus(id uint, status model.CompanyStatus) error
	List(status string) ([]model.Company, error)
	ListCertified() ([]model.Company, error)
	BulkCreate(companies []model.Company, batchSize int) error
}

type companyRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompanyRepository(db *gorm.DB, log *logger.Logger) CompanyRepository {
	return &companyRepository{db: db, log: log}
}

func (r *companyRepository) Create(company *model.Company) error {
	r.log.Debug("Creating company in database", map[string]interface{}{
		"name": company.Name,
	})

	if err := r.db.Create(company).Error; err != nil {
		r.log.Error("Failed to create company in database", err, map[string]interface{}{
			"name": company.Name,
		})
		return err
	}
	return nil
}

func (r *companyRepository) FindByID(id uint) (*model.Company, error) {
	return r.FindByIDTx(r.db, id)
}

func (r *companyRepository) FindByIDTx(tx *gorm.DB, id uint) (*model.Company, error) {
	var company model.Company
	if err := tx.First(&company, id).Error; err != nil {
		r.log.Error("Failed to find company by ID in database", err, map[string]interface{}{
			"company_id": id,
		})
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(company *model.Company) error {
	return r.UpdateTx(r.db, company)
}

func (r *companyRepository) UpdateTx(tx *gorm.DB, company *model.Company) error {
	r.log.Debug("Updating company in database", map[string]interface{}{
		"company_id": company.ID,
		"status":     company.Status,
	})

	if err := tx.Save(company).Error; err != nil {
		r.log.Error("Failed to update company in database", err, map[string]interface{}{
			"company_id": company.ID,
		})
		return err
	}
	return nil
}

func (r *companyRepository) UpdateStatus(id uint, status model.CompanyStatus) error {
	r.log.Debug("Updating company status in database", map[string]interface{}{
		"company_id": id,
		"status":     status,
	})

	if err := r.db.Model(&model.Company{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		r.log.Error("Failed to update company status in database", err, map[string]interface{}{
			"company_id": id,
			"status":     status,
		})
		return err
	}
	return nil
}

func (r *companyRepository) List(status string) ([]model.Company, error) {
	var companies []model.Company
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&companies).Error; err != nil {
		r.log.Error("Failed to list companies in database", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return companies, nil
}

// BulkCreate inserts companies in batches. Used by the seed command.
func (r *companyRepository) BulkCreate(companies []model.Company, batchSize int) error {
	if err := r.db.CreateInBatches(companies, batchSize).Error; err != nil {
		r.log.Error("Failed to bulk create companies in database", err, map[string]interface{}{
			"count": len(companies),
		})
		return err
	}
	return nil
}

func (r *companyRepository) ListCertified() ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.
		Where("status = ? AND badge_level <> ''", model.StatusVerified).
		Order("name ASC").
		Find(&companies).Error; err != nil {
		r.log.Error("Failed to list certified companies in database", err)
		return nil, err
	}
	return companies, nil
}
