package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"gorm.io/gorm"
)

var ErrRewardNotFound = errors.New("reward not found")

// renewalBundle is the fixed set of deliverables granted with every paid renewal
var renewalBundle = []model.RewardType{
	model.RewardDigitalBadge,
	model.RewardCertificate,
	model.RewardBrandToolkit,
	model.RewardNetworkAccess,
}

type RewardService interface {
	GrantRenewalRewardsTx(tx *gorm.DB, companyID uint, renewalYear int) error
	GrantDigitalBadgeRewardTx(tx *gorm.DB, companyID uint, level seal.BadgeLevel) (string, error)
	RequestPhysicalBadge(companyID uint) (*model.Reward, error)
	MarkRewardDelivered(rewardID uint) error
	GetCompanyRewards(companyID uint) ([]model.Reward, error)
}

type rewardService struct {
	rewardRepo  repository.RewardRepository
	companyRepo repository.CompanyRepository
	cfg         *config.SealConfig
	db          *gorm.DB
	log         *logger.Logger
}

func NewRewardService(
	rewardRepo repository.RewardRepository,
	companyRepo repository.CompanyRepository,
	cfg *config.SealConfig,
	db *gorm.DB,
	log *logger.Logger,
) RewardService {
	return &rewardService{
		rewardRepo:  rewardRepo,
		companyRepo: companyRepo,
		cfg:         cfg,
		db:          db,
		log:         log,
	}
}

// GrantRenewalRewardsTx issues the full renewal bundle inside the caller's
// transaction. Issuance is idempotent per (company, year, type): rows already
// present are left alone, so at-least-once payment processing cannot duplicate
// a bundle. The unique index on rewards is the authoritative guard.
func (s *rewardService) GrantRenewalRewardsTx(tx *gorm.DB, companyID uint, renewalYear int) error {
	now := time.Now()
	expires := now.Add(s.cfg.RenewalPeriod)

	granted := 0
	for _, rewardType := range renewalBundle {
		exists, err := s.rewardRepo.ExistsForRenewalTx(tx, companyID, renewalYear, rewardType)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		year := renewalYear
		reward := &model.Reward{
			CompanyID:   companyID,
			RenewalYear: &year,
			RewardType:  rewardType,
			Status:      model.RewardDelivered,
			DeliveredAt: &now,
			ExpiresAt:   &expires,
			Metadata:    s.renewalMetadata(companyID, renewalYear, rewardType),
		}
		if err := s.rewardRepo.CreateTx(tx, reward); err != nil {
			return err
		}
		granted++
	}

	s.log.Info("Renewal rewards granted", map[string]interface{}{
		"company_id":   companyID,
		"renewal_year": renewalYear,
		"granted":      granted,
		"skipped":      len(renewalBundle) - granted,
	})
	return nil
}

func (s *rewardService) renewalMetadata(companyID uint, renewalYear int, rewardType model.RewardType) model.RewardMetadata {
	switch rewardType {
	case model.RewardDigitalBadge:
		return model.RewardMetadata{
			"download_url": fmt.Sprintf("%s/badges/%d/%d.png", s.cfg.AssetBaseURL, companyID, renewalYear),
		}
	case model.RewardCertificate:
		return model.RewardMetadata{
			"download_url": fmt.Sprintf("%s/certificates/%d/%d.pdf", s.cfg.AssetBaseURL, companyID, renewalYear),
		}
	case model.RewardBrandToolkit:
		return model.RewardMetadata{
			"download_url": fmt.Sprintf("%s/toolkits/peace-seal-brand-kit.zip", s.cfg.AssetBaseURL),
		}
	case model.RewardNetworkAccess:
		return model.RewardMetadata{
			"portal_url": fmt.Sprintf("%s/center", s.cfg.AssetBaseURL),
		}
	default:
		return model.RewardMetadata{}
	}
}

// GrantDigitalBadgeRewardTx issues a badge-event reward reflecting a newly
// earned tier and returns the badge asset URL for the company mirror field.
// Badge rewards carry no renewal year and are append-only: every badge change
// is its own row.
func (s *rewardService) GrantDigitalBadgeRewardTx(tx *gorm.DB, companyID uint, level seal.BadgeLevel) (string, error) {
	now := time.Now()
	badgeURL := fmt.Sprintf("%s/badges/%d/%s.png", s.cfg.AssetBaseURL, companyID, level)

	reward := &model.Reward{
		CompanyID:   companyID,
		RewardType:  model.RewardDigitalBadge,
		Status:      model.RewardDelivered,
		DeliveredAt: &now,
		Metadata: model.RewardMetadata{
			"badge_level":  string(level),
			"download_url": badgeURL,
		},
	}
	if err := s.rewardRepo.CreateTx(tx, reward); err != nil {
		return "", err
	}

	return badgeURL, nil
}

// RequestPhysicalBadge flags the company and appends a pending reward.
// Fulfillment (printing and shipping) happens outside this system; a later
// callback flips the reward to delivered.
func (s *rewardService) RequestPhysicalBadge(companyID uint) (*model.Reward, error) {
	var reward *model.Reward
	err := s.db.Transaction(func(tx *gorm.DB) error {
		company, err := s.companyRepo.FindByIDTx(tx, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}

		company.PhysicalBadgeRequested = true
		if err := s.companyRepo.UpdateTx(tx, company); err != nil {
			return err
		}

		reward = &model.Reward{
			CompanyID:  companyID,
			RewardType: model.RewardPhysicalBadge,
			Status:     model.RewardPending,
			Metadata: model.RewardMetadata{
				"badge_level": string(company.BadgeLevel),
			},
		}
		return s.rewardRepo.CreateTx(tx, reward)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Physical badge requested", map[string]interface{}{
		"company_id": companyID,
		"reward_id":  reward.ID,
	})
	return reward, nil
}

// MarkRewardDelivered records external fulfillment of a pending reward
func (s *rewardService) MarkRewardDelivered(rewardID uint) error {
	reward, err := s.rewardRepo.FindByID(rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRewardNotFound
		}
		return err
	}

	if reward.Status == model.RewardDelivered {
		return nil
	}

	now := time.Now()
	reward.Status = model.RewardDelivered
	reward.DeliveredAt = &now
	return s.rewardRepo.Update(reward)
}

func (s *rewardService) GetCompanyRewards(companyID uint) ([]model.Reward, error) {
	return s.rewardRepo.FindByCompanyID(companyID)
}
