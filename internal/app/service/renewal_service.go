package service

import (
	"errors"
	"strings"
	"time"

	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/peaceseal/peaceseal-backend/pkg/seal"
	"gorm.io/gorm"
)

var (
	ErrRenewalNotFound  = errors.New("renewal not found")
	ErrDuplicateRenewal = errors.New("renewal already exists for this company and year")
)

// CreateRenewalInput carries no payment status on purpose: a renewal is paid
// iff a transaction ID is present. PaymentDate is the gateway's settlement
// timestamp when known; nil falls back to the current time.
type CreateRenewalInput struct {
	CompanyID            uint
	RenewalYear          int
	PaymentTransactionID string
	PaymentDate          *time.Time
}

type RenewalService interface {
	CreateRenewal(input CreateRenewalInput) (*model.Renewal, error)
	ProcessRenewalPayment(companyID uint, renewalYear int, transactionID string, paymentDate *time.Time) (*model.Renewal, error)
	CalculateRenewalFee(companyID uint) (int64, error)
	GetCompanyRenewals(companyID uint) ([]model.Renewal, error)
	GetExpiringRenewals(within time.Duration) ([]repository.ExpiringRenewal, error)
}

type renewalService struct {
	renewalRepo repository.RenewalRepository
	companyRepo repository.CompanyRepository
	rewardSvc   RewardService
	cfg         *config.SealConfig
	db          *gorm.DB
	log         *logger.Logger
}

func NewRenewalService(
	renewalRepo repository.RenewalRepository,
	companyRepo repository.CompanyRepository,
	rewardSvc RewardService,
	cfg *config.SealConfig,
	db *gorm.DB,
	log *logger.Logger,
) RenewalService {
	return &renewalService{
		renewalRepo: renewalRepo,
		companyRepo: companyRepo,
		rewardSvc:   rewardSvc,
		cfg:         cfg,
		db:          db,
		log:         log,
	}
}

// isUniqueViolation detects a unique-index conflict from either backend.
// Postgres reports "duplicate key value violates unique constraint", sqlite
// reports "UNIQUE constraint failed".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// CreateRenewal records one yearly renewal. The fee is derived from the
// company's current headcount and the payment status from the presence of a
// transaction ID; neither is taken from the caller. A renewal that arrives
// with a transaction ID is paid and grants the reward bundle in the same
// database transaction; the company payment mirror fields are refreshed
// either way.
func (s *renewalService) CreateRenewal(input CreateRenewalInput) (*model.Renewal, error) {
	paymentStatus := model.PaymentPending
	if input.PaymentTransactionID != "" {
		paymentStatus = model.PaymentPaid
	}

	var renewal *model.Renewal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		company, err := s.companyRepo.FindByIDTx(tx, input.CompanyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}

		// Fast path; the composite unique index is the real guard
		if _, err := s.renewalRepo.FindByCompanyAndYearTx(tx, input.CompanyID, input.RenewalYear); err == nil {
			return ErrDuplicateRenewal
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		renewal = &model.Renewal{
			CompanyID:            input.CompanyID,
			RenewalYear:          input.RenewalYear,
			AmountCents:          seal.CalculateRenewalFee(company.EmployeeCount),
			PaymentStatus:        paymentStatus,
			PaymentTransactionID: input.PaymentTransactionID,
			ExpiresAt:            now.Add(s.cfg.RenewalPeriod),
		}
		if renewal.Paid() {
			paidAt := now
			if input.PaymentDate != nil {
				paidAt = *input.PaymentDate
			}
			renewal.PaymentDate = &paidAt
		}

		if err := s.renewalRepo.CreateTx(tx, renewal); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateRenewal
			}
			return err
		}

		company.PaymentStatus = renewal.PaymentStatus
		company.RenewalAmountCents = renewal.AmountCents
		company.RenewalDueDate = &renewal.ExpiresAt
		if err := s.companyRepo.UpdateTx(tx, company); err != nil {
			return err
		}

		if renewal.Paid() {
			company.PeaceSealCenterAccess = true
			if err := s.companyRepo.UpdateTx(tx, company); err != nil {
				return err
			}
			return s.rewardSvc.GrantRenewalRewardsTx(tx, input.CompanyID, input.RenewalYear)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Renewal created", map[string]interface{}{
		"company_id":     renewal.CompanyID,
		"renewal_year":   renewal.RenewalYear,
		"amount_cents":   renewal.AmountCents,
		"payment_status": renewal.PaymentStatus,
	})
	return renewal, nil
}

// ProcessRenewalPayment marks an existing renewal paid and grants the reward
// bundle. paymentDate is the gateway's settlement timestamp; nil stamps the
// current time. Safe to call more than once for the same renewal: a renewal
// already paid is returned as-is and the bundle grant skips existing rows.
func (s *renewalService) ProcessRenewalPayment(companyID uint, renewalYear int, transactionID string, paymentDate *time.Time) (*model.Renewal, error) {
	var renewal *model.Renewal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		renewal, err = s.renewalRepo.FindByCompanyAndYearTx(tx, companyID, renewalYear)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRenewalNotFound
			}
			return err
		}

		if renewal.Paid() {
			s.log.Info("Renewal payment already processed", map[string]interface{}{
				"company_id":   companyID,
				"renewal_year": renewalYear,
			})
			return nil
		}

		paidAt := time.Now()
		if paymentDate != nil {
			paidAt = *paymentDate
		}
		renewal.PaymentStatus = model.PaymentPaid
		renewal.PaymentTransactionID = transactionID
		renewal.PaymentDate = &paidAt
		if err := s.renewalRepo.UpdateTx(tx, renewal); err != nil {
			return err
		}

		company, err := s.companyRepo.FindByIDTx(tx, companyID)
		if err != nil {
			return err
		}
		company.PaymentStatus = model.PaymentPaid
		company.PeaceSealCenterAccess = true
		company.RenewalDueDate = &renewal.ExpiresAt
		if err := s.companyRepo.UpdateTx(tx, company); err != nil {
			return err
		}

		return s.rewardSvc.GrantRenewalRewardsTx(tx, companyID, renewalYear)
	})
	if err != nil {
		return nil, err
	}
	return renewal, nil
}

// CalculateRenewalFee quotes the yearly fee for a company's current headcount
func (s *renewalService) CalculateRenewalFee(companyID uint) (int64, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCompanyNotFound
		}
		return 0, err
	}
	return seal.CalculateRenewalFee(company.EmployeeCount), nil
}

func (s *renewalService) GetCompanyRenewals(companyID uint) ([]model.Renewal, error) {
	return s.renewalRepo.FindByCompanyID(companyID)
}

// GetExpiringRenewals lists paid renewals whose coverage lapses within the
// given window, for the reminder scheduler
func (s *renewalService) GetExpiringRenewals(within time.Duration) ([]repository.ExpiringRenewal, error) {
	now := time.Now()
	return s.renewalRepo.FindExpiringBetween(now, now.Add(within))
}
