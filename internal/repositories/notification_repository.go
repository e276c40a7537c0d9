package repositories

import (
	"github.com/balbalm/feed-server/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	GetEventsByUserID(userID string) ([]models.NotificationEvent, error)
	MarkAsRead(postID uint, userID string) error
	GetUnreadCount(userID string) (int64, error)
	CountByPostAndUser(postID uint, userID string) (int64, error)
	DeleteNotification(notificationID uint, userID string) error
	DeleteAllNotifications(userID string) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

// GetEventsByUserID returns one row per like event targeting the user, with
// the liking user's nickname and photo joined live from the profiles table.
// Rows whose like was already removed resolve to an empty liker id and are
// skipped during aggregation.
func (r *postgresNotificationRepository) GetEventsByUserID(userID string) ([]models.NotificationEvent, error) {
	events := []models.NotificationEvent{}
	err := r.db.Model(&models.Notification{}).
		Select(`notifications.post_id AS post_id,
			notifications.is_read AS is_read,
			notifications.created_at AS created_at,
			likes.user_id AS liker_id,
			profiles.nickname AS nickname,
			profiles.photo_url AS profile_image_url`).
		Joins("LEFT JOIN likes ON likes.id = notifications.like_id").
		Joins("LEFT JOIN profiles ON profiles.social_id = likes.user_id").
		Where("notifications.user_id = ?", userID).
		Order("notifications.id").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// MarkAsRead marks every notification for (post, recipient) as read.
// Matching zero rows is not an error.
func (r *postgresNotificationRepository) MarkAsRead(postID uint, userID string) error {
	return r.db.Model(&models.Notification{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Update("is_read", true).Error
}

func (r *postgresNotificationRepository) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// CountByPostAndUser counts the notification rows a post has produced for
// its owner
func (r *postgresNotificationRepository) CountByPostAndUser(postID uint, userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count, err
}

// DeleteNotification removes one notification owned by the recipient
func (r *postgresNotificationRepository) DeleteNotification(notificationID uint, userID string) error {
	res := r.db.Where("id = ? AND user_id = ?", notificationID, userID).Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteAllNotifications removes every notification targeting the recipient
func (r *postgresNotificationRepository) DeleteAllNotifications(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Notification{}).Error
}
