package repository

import (
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindByUserID(userID uint, unreadOnly bool) ([]model.Notification, error)
	MarkRead(id, userID uint) error
	ExistsForUser(userID uint, ntype model.NotificationType, title string) (bool, error)
}

type notificationRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationRepository(db *gorm.DB, log *logger.Logger) NotificationRepository {
	return &notificationRepository{db: db, log: log}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		r.log.Error("Failed to create notification in database", err, map[string]interface{}{
			"user_id": notification.UserID,
			"type":    notification.Type,
		})
		return err
	}
	return nil
}

func (r *notificationRepository) FindByUserID(userID uint, unreadOnly bool) ([]model.Notification, error) {
	var notifications []model.Notification
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(id, userID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true).Error
}

// ExistsForUser lets the reminder scheduler avoid re-notifying the same event
func (r *notificationRepository) ExistsForUser(userID uint, ntype model.NotificationType, title string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND type = ? AND title = ?", userID, ntype, title).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
