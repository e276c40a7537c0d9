package models

import (
	"time"

	"gorm.io/datatypes"
)

// Post represents a feed post owned by a single user
type Post struct {
	ID         uint                        `json:"post_id" gorm:"primaryKey"`
	UserID     string                      `json:"user_id" gorm:"index"` // social id of the post owner
	Content    string                      `json:"content"`
	ImageURLs  datatypes.JSONSlice[string] `json:"image_urls"`
	UploadedAt time.Time                   `json:"uploaded_at"`
}

// Hashtag is one indexed tag extracted from a post's content at write time.
// Rows live and die with their post.
type Hashtag struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	PostID uint   `json:"post_id" gorm:"index"`
	Tag    string `json:"tag" gorm:"size:100;index"`
}

// CreatePostRequest defines the request body for creating a new post.
// Images may arrive as ready-made URLs or as base64 payloads that are
// uploaded to object storage before the post row is written.
type CreatePostRequest struct {
	Content   string   `json:"content" validate:"omitempty,max=2000"`
	ImageURLs []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	Images    []string `json:"images,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// PostResponse is a post enriched with the users who liked it
type PostResponse struct {
	PostID     uint        `json:"post_id"`
	ImageURLs  []string    `json:"image_urls"`
	Content    string      `json:"content"`
	UploadedAt time.Time   `json:"uploaded_at"`
	LikedBy    []LikeEntry `json:"liked_by"`
}
