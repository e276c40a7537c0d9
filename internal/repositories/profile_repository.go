package repositories

import (
	"errors"

	"github.com/balbalm/feed-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetBySocialID(socialID string) (*models.Profile, error)
	Upsert(profile *models.Profile) error
}

// PostgresProfileRepository implements ProfileRepository on the relational store
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetBySocialID retrieves a profile by the social id carried in the token
func (r *PostgresProfileRepository) GetBySocialID(socialID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("social_id = ?", socialID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts the profile or updates the display fields when a row for
// the social id already exists
func (r *PostgresProfileRepository) Upsert(profile *models.Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "social_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nickname", "photo_url"}),
	}).Create(profile).Error
}
