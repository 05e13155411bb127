package service

import (
	"errors"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus           = errors.New("unknown company status")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
)

// reviewStatuses are the statuses an advisor may move an application through
var reviewStatuses = map[model.CompanyStatus]bool{
	model.StatusUnderReview:     true,
	model.StatusAuditInProgress: true,
	model.StatusConditional:     true,
	model.StatusVerified:        true,
	model.StatusDidNotPass:      true,
}

type CertificationService interface {
	UpdateScore(companyID uint, score int) (*model.Company, error)
	SetStatus(companyID uint, status model.CompanyStatus) (*model.Company, error)
}

type certificationService struct {
	companyRepo repository.CompanyRepository
	rewardSvc   RewardService
	db          *gorm.DB
	log         *logger.Logger
}

func NewCertificationService(
	companyRepo repository.CompanyRepository,
	rewardSvc RewardService,
	db *gorm.DB,
	log *logger.Logger,
) CertificationService {
	return &certificationService{
		companyRepo: companyRepo,
		rewardSvc:   rewardSvc,
		db:          db,
		log:         log,
	}
}

// UpdateScore records an advisor's evaluation and applies the derived badge
// tier. A score that lands on the tier the company already holds changes only
// the stored score; a tier change additionally issues a fresh digital badge
// and refreshes the company badge URL, all in one transaction.
func (s *certificationService) UpdateScore(companyID uint, score int) (*model.Company, error) {
	newLevel, err := seal.ResolveBadge(score)
	if err != nil {
		return nil, err
	}

	var company *model.Company
	err = s.db.Transaction(func(tx *gorm.DB) error {
		company, err = s.companyRepo.FindByIDTx(tx, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}

		previous := company.BadgeLevel
		company.Score = &score
		company.BadgeLevel = newLevel

		if newLevel != previous && newLevel != seal.BadgeNone {
			badgeURL, err := s.rewardSvc.GrantDigitalBadgeRewardTx(tx, companyID, newLevel)
			if err != nil {
				return err
			}
			company.DigitalBadgeURL = badgeURL
		}

		return s.companyRepo.UpdateTx(tx, company)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Company scored", map[string]interface{}{
		"company_id":  companyID,
		"score":       score,
		"badge_level": company.BadgeLevel,
	})
	return company, nil
}

// SetStatus moves an application through the review pipeline. Only submitted
// applications can enter review; draft is reachable exclusively through the
// questionnaire unlock path.
func (s *certificationService) SetStatus(companyID uint, status model.CompanyStatus) (*model.Company, error) {
	if !reviewStatuses[status] {
		return nil, ErrInvalidStatus
	}

	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	if company.Status == model.StatusDraft {
		return nil, ErrInvalidStatusTransition
	}

	company.Status = status
	if err := s.companyRepo.Update(company); err != nil {
		return nil, err
	}

	s.log.Info("Company status updated", map[string]interface{}{
		"company_id": companyID,
		"status":     status,
	})
	return company, nil
}
