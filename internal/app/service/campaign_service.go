package service

import (
	"context"
	"errors"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/redis"
	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCampaignInactive = errors.New("campaign is not accepting contributions")
	ErrPledgeNotFound   = errors.New("pledge not found")
)

type CreateCampaignInput struct {
	Title       string
	Description string
	GoalCents   int64
}

type CampaignService interface {
	CreateCampaign(input CreateCampaignInput) (*model.Campaign, error)
	GetCampaign(campaignID uint) (*model.Campaign, error)
	GetCampaignTotal(ctx context.Context, campaignID uint) (int64, error)
	ListCampaigns(activeOnly bool) ([]model.Campaign, error)
	CloseCampaign(campaignID uint) error
	CreatePledge(campaignID, userID uint, amountCents int64, recurring bool) (*model.Pledge, error)
	CancelPledge(pledgeID, userID uint) error
	GetUserPledges(userID uint) ([]model.Pledge, error)
}

type campaignService struct {
	campaignRepo repository.CampaignRepository
	pledgeRepo   repository.PledgeRepository
	log          *logger.Logger
}

func NewCampaignService(
	campaignRepo repository.CampaignRepository,
	pledgeRepo repository.PledgeRepository,
	log *logger.Logger,
) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
		pledgeRepo:   pledgeRepo,
		log:          log,
	}
}

func (s *campaignService) CreateCampaign(input CreateCampaignInput) (*model.Campaign, error) {
	campaign := &model.Campaign{
		Title:       input.Title,
		Description: input.Description,
		GoalCents:   input.GoalCents,
		Active:      true,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}

	s.log.Info("Campaign created", map[string]interface{}{
		"campaign_id": campaign.ID,
		"title":       campaign.Title,
		"goal_cents":  campaign.GoalCents,
	})
	return campaign, nil
}

func (s *campaignService) GetCampaign(campaignID uint) (*model.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

// GetCampaignTotal serves the raised total through the Redis cache; a miss
// falls back to the campaign row and repopulates the cache. Cache errors only
// degrade to the database read.
func (s *campaignService) GetCampaignTotal(ctx context.Context, campaignID uint) (int64, error) {
	if total, ok, err := redis.GetCampaignTotal(ctx, campaignID); err == nil && ok {
		return total, nil
	}

	campaign, err := s.GetCampaign(campaignID)
	if err != nil {
		return 0, err
	}

	if err := redis.SetCampaignTotal(ctx, campaignID, campaign.RaisedCents); err != nil {
		s.log.Warn("Failed to cache campaign total", map[string]interface{}{
			"campaign_id": campaignID,
		})
	}
	return campaign.RaisedCents, nil
}

func (s *campaignService) ListCampaigns(activeOnly bool) ([]model.Campaign, error) {
	return s.campaignRepo.List(activeOnly)
}

func (s *campaignService) CloseCampaign(campaignID uint) error {
	campaign, err := s.GetCampaign(campaignID)
	if err != nil {
		return err
	}

	campaign.Active = false
	if err := s.campaignRepo.Update(campaign); err != nil {
		return err
	}

	s.log.Info("Campaign closed", map[string]interface{}{
		"campaign_id":  campaignID,
		"raised_cents": campaign.RaisedCents,
	})
	return nil
}

func (s *campaignService) CreatePledge(campaignID, userID uint, amountCents int64, recurring bool) (*model.Pledge, error) {
	campaign, err := s.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.Active {
		return nil, ErrCampaignInactive
	}

	pledge := &model.Pledge{
		CampaignID:  campaignID,
		UserID:      userID,
		AmountCents: amountCents,
		Recurring:   recurring,
		Status:      model.PledgeActive,
	}
	if err := s.pledgeRepo.Create(pledge); err != nil {
		return nil, err
	}

	s.log.Info("Pledge created", map[string]interface{}{
		"pledge_id":    pledge.ID,
		"campaign_id":  campaignID,
		"amount_cents": amountCents,
		"recurring":    recurring,
	})
	return pledge, nil
}

func (s *campaignService) CancelPledge(pledgeID, userID uint) error {
	pledge, err := s.pledgeRepo.FindByID(pledgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPledgeNotFound
		}
		return err
	}
	if pledge.UserID != userID {
		return ErrPledgeNotFound
	}
	if pledge.Status != model.PledgeActive {
		return nil
	}

	pledge.Status = model.PledgeCancelled
	return s.pledgeRepo.Update(pledge)
}

func (s *campaignService) GetUserPledges(userID uint) ([]model.Pledge, error) {
	return s.pledgeRepo.FindByUserID(userID)
}
