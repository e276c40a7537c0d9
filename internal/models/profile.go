package models

import "github.com/golang-jwt/jwt/v4"

// Profile holds the display data shown next to likes and notifications.
// Keyed by the social id carried in the auth token.
type Profile struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	SocialID string `json:"user_id" gorm:"uniqueIndex"`
	Nickname string `json:"nickname"`
	PhotoURL string `json:"profile_image_url"`
}

// UpdateProfileRequest defines the request body for upserting the
// authenticated user's own profile
type UpdateProfileRequest struct {
	Nickname string `json:"nickname" validate:"required,min=1,max=50"`
	PhotoURL string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	SocialID string `json:"social_id"`
	jwt.RegisteredClaims
}
