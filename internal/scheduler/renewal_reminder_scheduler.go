package scheduler

import (
	"fmt"
	"time"

	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// RenewalReminderScheduler notifies company users ahead of certification expiry
type RenewalReminderScheduler struct {
	cron            *cron.Cron
	renewalService  service.RenewalService
	notificationSvc service.NotificationService
	userRepo        repository.UserRepository
	daysAhead       int
	log             *logger.Logger
}

func NewRenewalReminderScheduler(
	renewalService service.RenewalService,
	notificationSvc service.NotificationService,
	userRepo repository.UserRepository,
	daysAhead int,
	log *logger.Logger,
) *RenewalReminderScheduler {
	return &RenewalReminderScheduler{
		cron:            cron.New(),
		renewalService:  renewalService,
		notificationSvc: notificationSvc,
		userRepo:        userRepo,
		daysAhead:       daysAhead,
		log:             log,
	}
}

// Start schedules the daily reminder sweep at 09:00
func (s *RenewalReminderScheduler) Start() error {
	_, err := s.cron.AddFunc("0 9 * * *", func() {
		if err := s.RunOnce(); err != nil {
			s.log.Error("Renewal reminder sweep failed", err)
		}
	})
	if err != nil {
		s.log.Error("Failed to add cron job for renewal reminders", err)
		return err
	}

	s.cron.Start()
	s.log.Info("Renewal reminder scheduler started (daily at 9:00 AM)", map[string]interface{}{
		"days_ahead": s.daysAhead,
	})
	return nil
}

// RunOnce performs one reminder sweep. Notifications are deduplicated per user
// and renewal, so consecutive daily runs inside the window stay quiet.
func (s *RenewalReminderScheduler) RunOnce() error {
	window := time.Duration(s.daysAhead) * 24 * time.Hour
	expiring, err := s.renewalService.GetExpiringRenewals(window)
	if err != nil {
		return err
	}

	notified := 0
	for _, renewal := range expiring {
		users, err := s.userRepo.FindByCompanyID(renewal.CompanyID)
		if err != nil {
			s.log.Error("Failed to load users for expiring renewal", err, map[string]interface{}{
				"company_id": renewal.CompanyID,
			})
			continue
		}

		title := fmt.Sprintf("Peace Seal certification for %s expires on %s",
			renewal.CompanyName, renewal.ExpiresAt.Format("2006-01-02"))
		body := fmt.Sprintf("The %d certification period ends soon. Renew to keep the seal active.",
			renewal.RenewalYear)

		for _, user := range users {
			if err := s.notificationSvc.NotifyOnce(user.ID, model.NotificationRenewalExpiring, title, body); err != nil {
				s.log.Error("Failed to create renewal reminder", err, map[string]interface{}{
					"user_id":    user.ID,
					"renewal_id": renewal.RenewalID,
				})
				continue
			}
			notified++
		}
	}

	s.log.Info("Renewal reminder sweep completed", map[string]interface{}{
		"expiring": len(expiring),
		"notified": notified,
	})
	return nil
}

// Stop stops the scheduler
func (s *RenewalReminderScheduler) Stop() {
	s.cron.Stop()
	s.log.Info("Renewal reminder scheduler stopped", nil)
}
