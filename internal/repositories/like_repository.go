package repositories

import (
	"errors"
	"time"

	"github.com/balbalm/feed-server/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(postID uint, userID string) (liked bool, likesCount int64, err error)
	GetLikesCountByPostID(postID uint) (int64, error)
	GetLikeEntriesByPostID(postID uint) ([]models.LikeEntry, error)
	HasUserLikedPost(postID uint, userID string) (bool, error)
}

// PostgresLikeRepository implements LikeRepository on the relational store
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike creates the like for (post, user) if absent, or removes it if
// present. The like and its paired notification are written and deleted in
// the same transaction: a constraint violation on the like insert aborts
// before any notification row exists, so the pair never goes out of sync.
// The returned count is recomputed from the like rows after the mutation.
func (r *PostgresLikeRepository) ToggleLike(postID uint, userID string) (liked bool, likesCount int64, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var existing models.Like
		findErr := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		switch {
		case findErr == nil:
			if err := tx.Where("like_id = ?", existing.ID).Delete(&models.Notification{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false

		case errors.Is(findErr, gorm.ErrRecordNotFound):
			like := models.Like{PostID: postID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				// Concurrent toggle for the same pair: exactly one insert
				// wins the unique index, the loser aborts with a conflict.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrAlreadyLiked
				}
				return err
			}
			notification := models.Notification{
				UserID:    post.UserID,
				PostID:    postID,
				LikeID:    &like.ID,
				IsRead:    false,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
			liked = true

		default:
			return findErr
		}

		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likesCount).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likesCount, nil
}

// GetLikesCountByPostID counts the like rows for a post
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikeEntriesByPostID returns the display entries for every like on a
// post, with nickname and photo joined live from the profiles table.
func (r *PostgresLikeRepository) GetLikeEntriesByPostID(postID uint) ([]models.LikeEntry, error) {
	entries := []models.LikeEntry{}
	err := r.db.Model(&models.Like{}).
		Select("likes.user_id AS user_id, profiles.nickname AS nickname, profiles.photo_url AS profile_image_url").
		Joins("LEFT JOIN profiles ON profiles.social_id = likes.user_id").
		Where("likes.post_id = ?", postID).
		Order("likes.id").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID uint, userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
