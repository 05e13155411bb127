package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type RewardRepository interface {
	CreateTx(tx *gorm.DB, reward *model.Reward) error
	FindByID(id uint) (*model.Reward, error)
	FindByCompanyID(companyID uint) ([]model.Reward, error)
	ExistsForRenewalTx(tx *gorm.DB, companyID uint, renewalYear int, rewardType model.RewardType) (bool, error)
	Update(reward *model.Reward) error
}

type rewardRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRewardRepository(db *gorm.DB, log *logger.Logger) RewardRepository {
	return &rewardRepository{db: db, log: log}
}

func (r *rewardRepository) CreateTx(tx *gorm.DB, reward *model.Reward) error {
	r.log.Debug("Creating reward in database", map[string]interface{}{
		"company_id":  reward.CompanyID,
		"reward_type": reward.RewardType,
	})

	if err := tx.Create(reward).Error; err != nil {
		r.log.Error("Failed to create reward in database", err, map[string]interface{}{
			"company_id":  reward.CompanyID,
			"reward_type": reward.RewardType,
		})
		return err
	}
	return nil
}

func (r *rewardRepository) FindByID(id uint) (*model.Reward, error) {
	var reward model.Reward
	if err := r.db.First(&reward, id).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) FindByCompanyID(companyID uint) ([]model.Reward, error) {
	var rewards []model.Reward
	if err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&rewards).Error; err != nil {
		r.log.Error("Failed to find rewards by company ID in database", err, map[string]interface{}{
			"company_id": companyID,
		})
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepository) ExistsForRenewalTx(tx *gorm.DB, companyID uint, renewalYear int, rewardType model.RewardType) (bool, error) {
	var count int64
	err := tx.Model(&model.Reward{}).
		Where("company_id = ? AND renewal_year = ? AND reward_type = ?", companyID, renewalYear, rewardType).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *rewardRepository) Update(reward *model.Reward) error {
	r.log.Debug("Updating reward in database", map[string]interface{}{
		"reward_id": reward.ID,
		"status":    reward.Status,
	})

	if err := r.db.Save(reward).Error; err != nil {
		r.log.Error("Failed to update reward in database", err, map[string]interface{}{
			"reward_id": reward.ID,
		})
		return err
	}
	return nil
}
