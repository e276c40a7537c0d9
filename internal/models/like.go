package models

// Like represents a like on a post. The composite unique index is the only
// guard against concurrent duplicate likes for the same (post, user) pair.
type Like struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	PostID uint   `json:"post_id" gorm:"index;uniqueIndex:idx_likes_post_user"`
	UserID string `json:"user_id" gorm:"index;uniqueIndex:idx_likes_post_user"` // social id of the liking user
}

// LikeEntry is the display-friendly form of a like, with the liking user's
// profile joined in at read time.
type LikeEntry struct {
	UserID          string `json:"user_id"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

// ToggleLikeResponse is returned by the like-toggle endpoint
type ToggleLikeResponse struct {
	PostID     uint  `json:"post_id"`
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
