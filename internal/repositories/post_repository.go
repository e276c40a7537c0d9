package repositories

import (
	"errors"

	"github.com/balbalm/feed-server/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post, tags []string) error
	GetPostByID(postID uint) (*models.Post, error)
	GetPostsByUserID(userID string) ([]models.Post, error)
	GetPostsByHashtag(tag string) ([]models.Post, error)
	UpdatePost(post *models.Post, tags []string) error
	DeletePost(postID uint) error
}

// PostgresPostRepository implements PostRepository on the relational store
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts the post and its hashtag index rows as one transaction
func (r *PostgresPostRepository) CreatePost(post *models.Post, tags []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, tag := range tags {
			if err := tx.Create(&models.Hashtag{PostID: post.ID, Tag: tag}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPostByID retrieves a single post
func (r *PostgresPostRepository) GetPostByID(postID uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByUserID retrieves all posts owned by a user
func (r *PostgresPostRepository) GetPostsByUserID(userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("uploaded_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByHashtag retrieves all posts carrying the given tag
func (r *PostgresPostRepository) GetPostsByHashtag(tag string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Joins("JOIN hashtags ON hashtags.post_id = posts.id").
		Where("hashtags.tag = ?", tag).
		Order("posts.uploaded_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost saves the post and rebuilds its hashtag index in one transaction
func (r *PostgresPostRepository) UpdatePost(post *models.Post, tags []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Hashtag{}).Error; err != nil {
			return err
		}
		for _, tag := range tags {
			if err := tx.Create(&models.Hashtag{PostID: post.ID, Tag: tag}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePost removes a post together with its likes, derived notifications
// and hashtag index rows, all in one transaction.
func (r *PostgresPostRepository) DeletePost(postID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Post{}, postID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.Hashtag{}).Error
	})
}
