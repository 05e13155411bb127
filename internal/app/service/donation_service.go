package service

import (
	"context"
	"errors"
	"time"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/redis"
	"github.com/peaceseal/peaceseal-backend/pkg/util"
	"gorm.io/gorm"
)

// DonationEvent is pushed to live feed subscribers when a donation lands
type DonationEvent struct {
	CampaignID  uint   `json:"campaign_id"`
	DonorName   string `json:"donor_name"`
	AmountCents int64  `json:"amount_cents"`
	RaisedCents int64  `json:"raised_cents"`
}

// DonationBroadcaster fans a donation event out to connected clients.
// Implemented by the websocket hub.
type DonationBroadcaster interface {
	BroadcastDonation(event DonationEvent)
}

type RecordDonationInput struct {
	CampaignID    uint
	UserID        *uint
	AmountCents   int64
	TransactionID string
	DonorName     string
}

type DonationService interface {
	RecordDonation(ctx context.Context, input RecordDonationInput) (*model.Donation, error)
	GetCampaignDonations(campaignID uint) ([]model.Donation, error)
	GetUserDonations(userID uint) ([]model.Donation, error)
	ListDonations() ([]model.Donation, error)
}

type donationService struct {
	donationRepo repository.DonationRepository
	campaignRepo repository.CampaignRepository
	broadcaster  DonationBroadcaster
	db           *gorm.DB
	log          *logger.Logger
}

func NewDonationService(
	donationRepo repository.DonationRepository,
	campaignRepo repository.CampaignRepository,
	broadcaster DonationBroadcaster,
	db *gorm.DB,
	log *logger.Logger,
) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		broadcaster:  broadcaster,
		db:           db,
		log:          log,
	}
}

// RecordDonation stores a settled gift and bumps the campaign total in one
// transaction, then invalidates the cached total and pushes the event to the
// live feed. DonorName falls back to "Anonymous" for unattributed gifts.
func (s *donationService) RecordDonation(ctx context.Context, input RecordDonationInput) (*model.Donation, error) {
	donorName := input.DonorName
	if donorName == "" {
		donorName = "Anonymous"
	}

	var donation *model.Donation
	var raised int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var campaign model.Campaign
		if err := tx.First(&campaign, input.CampaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCampaignNotFound
			}
			return err
		}
		if !campaign.Active {
			return ErrCampaignInactive
		}

		donation = &model.Donation{
			CampaignID:    input.CampaignID,
			UserID:        input.UserID,
			AmountCents:   input.AmountCents,
			ReceiptNumber: util.GenerateReceiptNumber(),
			TransactionID: input.TransactionID,
			DonorName:     donorName,
			DonatedAt:     time.Now(),
		}
		if err := s.donationRepo.CreateTx(tx, donation); err != nil {
			return err
		}

		if err := s.campaignRepo.AddToRaisedTx(tx, input.CampaignID, input.AmountCents); err != nil {
			return err
		}
		raised = campaign.RaisedCents + input.AmountCents
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := redis.InvalidateCampaignTotal(ctx, input.CampaignID); err != nil {
		s.log.Warn("Failed to invalidate campaign total cache", map[string]interface{}{
			"campaign_id": input.CampaignID,
		})
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDonation(DonationEvent{
			CampaignID:  input.CampaignID,
			DonorName:   donorName,
			AmountCents: input.AmountCents,
			RaisedCents: raised,
		})
	}

	s.log.Info("Donation recorded", map[string]interface{}{
		"donation_id":  donation.ID,
		"campaign_id":  input.CampaignID,
		"amount_cents": input.AmountCents,
		"receipt":      donation.ReceiptNumber,
	})
	return donation, nil
}

func (s *donationService) GetCampaignDonations(campaignID uint) ([]model.Donation, error) {
	return s.donationRepo.FindByCampaignID(campaignID)
}

func (s *donationService) GetUserDonations(userID uint) ([]model.Donation, error) {
	return s.donationRepo.FindByUserID(userID)
}

func (s *donationService) ListDonations() ([]model.Donation, error) {
	return s.donationRepo.ListAll()
}
