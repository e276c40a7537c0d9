package models

import "time"

// Notification records a single like event for the post owner. One row is
// created when a like is created and deleted when that like is removed.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"` // social id of the recipient (post owner)
	PostID    uint      `json:"post_id" gorm:"index"`
	LikeID    *uint     `json:"like_id"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationEvent is one notification row joined with its like and the
// liking user's profile, the scan target for the aggregation query.
type NotificationEvent struct {
	PostID          uint
	IsRead          bool
	CreatedAt       time.Time
	LikerID         string
	Nickname        string
	ProfileImageURL string
}

// AggregatedNotification folds every like event on one post into a single
// user-facing object: read only when all events were read, timestamped by
// the latest event.
type AggregatedNotification struct {
	PostID    uint        `json:"post_id"`
	IsRead    bool        `json:"is_read"`
	CreatedAt time.Time   `json:"created_at"`
	Likes     []LikeEntry `json:"likes"`
}
