package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shophub/internal/notification/models"
	"shophub/internal/notification/repository"
)

// ErrNotificationNotFound is returned when an id does not exist in storage.
var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	GetForUser(ctx context.Context, userID int64) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	MarkAsRead(ctx context.Context, id int64) (*models.Notification, error)
	Delete(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) GetForUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Create stores a new notification. The server owns id, createdAt, read and
// readAt: whatever the client sent in those fields is discarded.
func (s *notificationService) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = 0
	notification.Read = false
	notification.ReadAt = nil
	notification.CreatedAt = time.Now()
	return s.repo.Save(ctx, notification)
}

// MarkAsRead flips the notification to read and stamps readAt with the
// current time. Re-marking an already-read notification refreshes readAt.
func (s *notificationService) MarkAsRead(ctx context.Context, id int64) (*models.Notification, error) {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}

	now := time.Now()
	notification.Read = true
	notification.ReadAt = &now

	if err := s.repo.Save(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnreadByUser(ctx, userID)
}
