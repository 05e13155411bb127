package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type DonationRepository interface {
	CreateTx(tx *gorm.DB, donation *model.Donation) error
	FindByCampaignID(campaignID uint) ([]model.Donation, error)
	FindByUserID(userID uint) ([]model.Donation, error)
	ListAll() ([]model.Donation, error)
}

type donationRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDonationRepository(db *gorm.DB, log *logger.Logger) DonationRepository {
	return &donationRepository{db: db, log: log}
}

func (r *donationRepository) CreateTx(tx *gorm.DB, donation *model.Donation) error {
	r.log.Debug("Creating donation in database", map[string]interface{}{
		"campaign_id":  donation.CampaignID,
		"amount_cents": donation.AmountCents,
	})

	if err := tx.Create(donation).Error; err != nil {
		r.log.Error("Failed to create donation in database", err, map[string]interface{}{
			"campaign_id": donation.CampaignID,
		})
		return err
	}
	return nil
}

func (r *donationRepository) FindByCampaignID(campaignID uint) ([]model.Donation, error) {
	var donations []model.Donation
	if err := r.db.Where("campaign_id = ?", campaignID).
		Order("donated_at DESC").
		Find(&donations).Error; err != nil {
		r.log.Error("Failed to find donations by campaign ID in database", err, map[string]interface{}{
			"campaign_id": campaignID,
		})
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) FindByUserID(userID uint) ([]model.Donation, error) {
	var donations []model.Donation
	if err := r.db.Where("user_id = ?", userID).
		Order("donated_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) ListAll() ([]model.Donation, error) {
	var donations []model.Donation
	if err := r.db.Order("donated_at DESC").Find(&donations).Error; err != nil {
		r.log.Error("Failed to list donations in database", err)
		return nil, err
	}
	return donations, nil
}
