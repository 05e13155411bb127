package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type CampaignRepository interface {
	Create(campaign *model.Campaign) error
	FindByID(id uint) (*model.Campaign, error)
	List(activeOnly bool) ([]model.Campaign, error)
	Update(campaign *model.Campaign) error
	AddToRaisedTx(tx *gorm.DB, campaignID uint, amountCents int64) error
}

type campaignRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCampaignRepository(db *gorm.DB, log *logger.Logger) CampaignRepository {
	return &campaignRepository{db: db, log: log}
}

func (r *campaignRepository) Create(campaign *model.Campaign) error {
	r.log.Debug("Creating campaign in database", map[string]interface{}{
		"title": campaign.Title,
	})

	if err := r.db.Create(campaign).Error; err != nil {
		r.log.Error("Failed to create campaign in database", err, map[string]interface{}{
			"title": campaign.Title,
		})
		return err
	}
	return nil
}

func (r *campaignRepository) FindByID(id uint) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := r.db.First(&campaign, id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) List(activeOnly bool) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	query := r.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&campaigns).Error; err != nil {
		r.log.Error("Failed to list campaigns in database", err)
		return nil, err
	}
	return campaigns, nil
}

func (r *campaignRepository) Update(campaign *model.Campaign) error {
	if err := r.db.Save(campaign).Error; err != nil {
		r.log.Error("Failed to update campaign in database", err, map[string]interface{}{
			"campaign_id": campaign.ID,
		})
		return err
	}
	return nil
}

func (r *campaignRepository) AddToRaisedTx(tx *gorm.DB, campaignID uint, amountCents int64) error {
	if err := tx.Model(&model.Campaign{}).Where("id = ?", campaignID).
		Update("raised_cents", gorm.Expr("raised_cents + ?", amountCents)).Error; err != nil {
		r.log.Error("Failed to update campaign raised total in database", err, map[string]interface{}{
			"campaign_id": campaignID,
		})
		return err
	}
	return nil
}
