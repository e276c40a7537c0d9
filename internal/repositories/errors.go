package repositories

import "errors"

// Sentinel errors returned by the repositories. Handlers translate them to
// HTTP statuses; anything else is treated as a storage fault.
var (
	ErrPostNotFound         = errors.New("post not found")
	ErrLikeNotFound         = errors.New("like not found")
	ErrAlreadyLiked         = errors.New("post already liked by this user")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrProfileNotFound      = errors.New("profile not found")
)
