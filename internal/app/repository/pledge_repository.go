package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type PledgeRepository interface {
	Create(pledge *model.Pledge) error
	FindByID(id uint) (*model.Pledge, error)
	FindByUserID(userID uint) ([]model.Pledge, error)
	Update(pledge *model.Pledge) error
}

type pledgeRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPledgeRepository(db *gorm.DB, log *logger.Logger) PledgeRepository {
	return &pledgeRepository{db: db, log: log}
}

func (r *pledgeRepository) Create(pledge *model.Pledge) error {
	r.log.Debug("Creating pledge in database", map[string]interface{}{
		"campaign_id":  pledge.CampaignID,
		"user_id":      pledge.UserID,
		"amount_cents": pledge.AmountCents,
	})

	if err := r.db.Create(pledge).Error; err != nil {
		r.log.Error("Failed to create pledge in database", err, map[string]interface{}{
			"campaign_id": pledge.CampaignID,
		})
		return err
	}
	return nil
}

func (r *pledgeRepository) FindByID(id uint) (*model.Pledge, error) {
	var pledge model.Pledge
	if err := r.db.First(&pledge, id).Error; err != nil {
		return nil, err
	}
	return &pledge, nil
}

func (r *pledgeRepository) FindByUserID(userID uint) ([]model.Pledge, error) {
	var pledges []model.Pledge
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pledges).Error; err != nil {
		return nil, err
	}
	return pledges, nil
}

func (r *pledgeRepository) Update(pledge *model.Pledge) error {
	if err := r.db.Save(pledge).Error; err != nil {
		r.log.Error("Failed to update pledge in database", err, map[string]interface{}{
			"pledge_id": pledge.ID,
		})
		return err
	}
	return nil
}
