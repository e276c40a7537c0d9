package repositories

import (
	"testing"
	"time"

	"github.com/balbalm/feed-server/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB gives each test its own in-memory database with the full
// schema. TranslateError matches the production connection so constraint
// violations surface as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Post{},
		&models.Hashtag{},
		&models.Like{},
		&models.Notification{},
		&models.Profile{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if conn, err := db.DB(); err == nil {
			conn.Close()
		}
	})

	return db
}

func createTestPost(t *testing.T, db *gorm.DB, owner, content string) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:     owner,
		Content:    content,
		ImageURLs:  []string{"https://example.com/a.jpg"},
		UploadedAt: time.Now(),
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

func createTestProfile(t *testing.T, db *gorm.DB, socialID, nickname string) {
	t.Helper()

	profile := &models.Profile{SocialID: socialID, Nickname: nickname, PhotoURL: "https://img.example.com/" + socialID}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
}
