package repository

import (
	"time"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

// ExpiringRenewal joins a paid renewal with its company identity for the
// reminder pipeline
type ExpiringRenewal struct {
	RenewalID    uint      `json:"renewal_id"`
	CompanyID    uint      `json:"company_id"`
	CompanyName  string    `json:"company_name"`
	ContactEmail string    `json:"contact_email"`
	RenewalYear  int       `json:"renewal_year"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type RenewalRepository interface {
	CreateTx(tx *gorm.DB, renewal *model.Renewal) error
	FindByCompanyAndYear(companyID uint, year int) (*model.Renewal, error)
	FindByCompanyAndYearTx(tx *gorm.DB, companyID uint, year int) (*model.Renewal, error)
	FindByCompanyID(companyID uint) ([]model.Renewal, error)
	UpdateTx(tx *gorm.DB, renewal *model.Renewal) error
	FindExpiringBetween(from, to time.Time) ([]ExpiringRenewal, error)
	CountPaidByCompanyID(companyID uint) (int64, error)
}

type renewalRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRenewalRepository(db *gorm.DB, log *logger.Logger) RenewalRepository {
	return &renewalRepository{db: db, log: log}
}

func (r *renewalRepository) CreateTx(tx *gorm.DB, renewal *model.Renewal) error {
	r.log.Debug("Creating renewal in database", map[string]interface{}{
		"company_id":   renewal.CompanyID,
		"renewal_year": renewal.RenewalYear,
	})

	if err := tx.Create(renewal).Error; err != nil {
		r.log.Error("Failed to create renewal in database", err, map[string]interface{}{
			"company_id":   renewal.CompanyID,
			"renewal_year": renewal.RenewalYear,
		})
		return err
	}
	return nil
}

func (r *renewalRepository) FindByCompanyAndYear(companyID uint, year int) (*model.Renewal, error) {
	return r.FindByCompanyAndYearTx(r.db, companyID, year)
}

func (r *renewalRepository) FindByCompanyAndYearTx(tx *gorm.DB, companyID uint, year int) (*model.Renewal, error) {
	var renewal model.Renewal
	if err := tx.Where("company_id = ? AND renewal_year = ?", companyID, year).
		First(&renewal).Error; err != nil {
		return nil, err
	}
	return &renewal, nil
}

func (r *renewalRepository) FindByCompanyID(companyID uint) ([]model.Renewal, error) {
	var renewals []model.Renewal
	if err := r.db.Where("company_id = ?", companyID).
		Order("renewal_year DESC").
		Find(&renewals).Error; err != nil {
		r.log.Error("Failed to find renewals by company ID in database", err, map[string]interface{}{
			"company_id": companyID,
		})
		return nil, err
	}
	return renewals, nil
}

func (r *renewalRepository) UpdateTx(tx *gorm.DB, renewal *model.Renewal) error {
	r.log.Debug("Updating renewal in database", map[string]interface{}{
		"renewal_id":     renewal.ID,
		"payment_status": renewal.PaymentStatus,
	})

	if err := tx.Save(renewal).Error; err != nil {
		r.log.Error("Failed to update renewal in database", err, map[string]interface{}{
			"renewal_id": renewal.ID,
		})
		return err
	}
	return nil
}

func (r *renewalRepository) FindExpiringBetween(from, to time.Time) ([]ExpiringRenewal, error) {
	var results []ExpiringRenewal
	err := r.db.Model(&model.Renewal{}).
		Select("renewals.id AS renewal_id, renewals.company_id, companies.name AS company_name, companies.contact_email, renewals.renewal_year, renewals.expires_at").
		Joins("JOIN companies ON companies.id = renewals.company_id").
		Where("renewals.payment_status = ?", model.PaymentPaid).
		Where("renewals.expires_at BETWEEN ? AND ?", from, to).
		Order("renewals.expires_at ASC").
		Scan(&results).Error
	if err != nil {
		r.log.Error("Failed to find expiring renewals in database", err, map[string]interface{}{
			"from": from,
			"to":   to,
		})
		return nil, err
	}
	return results, nil
}

func (r *renewalRepository) CountPaidByCompanyID(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Renewal{}).
		Where("company_id = ? AND payment_status = ?", companyID, model.PaymentPaid).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
