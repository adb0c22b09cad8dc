package repository

import (
	"context"

	"gorm.io/gorm"

	"shophub/internal/notification/models"
)

type NotificationRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]models.Notification, error)
	FindByID(ctx context.Context, id int64) (*models.Notification, error)
	Save(ctx context.Context, notification *models.Notification) error
	DeleteByID(ctx context.Context, id int64) error
	CountUnreadByUser(ctx context.Context, userID int64) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindByID(ctx context.Context, id int64) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// Save inserts when ID is zero and updates all columns otherwise.
func (r *notificationRepository) Save(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepository) CountUnreadByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}
