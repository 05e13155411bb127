package service

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
)

type NotificationService interface {
	Notify(userID uint, ntype model.NotificationType, title, body string) error
	NotifyOnce(userID uint, ntype model.NotificationType, title, body string) error
	NotifyCompanyUsers(companyID uint, ntype model.NotificationType, title, body string) error
	GetUserNotifications(userID uint, unreadOnly bool) ([]model.Notification, error)
	MarkRead(notificationID, userID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	log              *logger.Logger
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		log:              log,
	}
}

func (s *notificationService) Notify(userID uint, ntype model.NotificationType, title, body string) error {
	return s.notificationRepo.Create(&model.Notification{
		UserID: userID,
		Type:   ntype,
		Title:  title,
		Body:   body,
	})
}

// NotifyOnce skips the write when the same user already has a notification
// with this type and title. The reminder scheduler runs daily and must not
// pile up duplicates for the same renewal.
func (s *notificationService) NotifyOnce(userID uint, ntype model.NotificationType, title, body string) error {
	exists, err := s.notificationRepo.ExistsForUser(userID, ntype, title)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.Notify(userID, ntype, title, body)
}

// NotifyCompanyUsers fans a message out to every user linked to the company
func (s *notificationService) NotifyCompanyUsers(companyID uint, ntype model.NotificationType, title, body string) error {
	users, err := s.userRepo.FindByCompanyID(companyID)
	if err != nil {
		return err
	}

	for _, user := range users {
		if err := s.Notify(user.ID, ntype, title, body); err != nil {
			s.log.Error("Failed to notify company user", err, map[string]interface{}{
				"company_id": companyID,
				"user_id":    user.ID,
			})
			return err
		}
	}
	return nil
}

func (s *notificationService) GetUserNotifications(userID uint, unreadOnly bool) ([]model.Notification, error) {
	return s.notificationRepo.FindByUserID(userID, unreadOnly)
}

func (s *notificationService) MarkRead(notificationID, userID uint) error {
	return s.notificationRepo.MarkRead(notificationID, userID)
}
