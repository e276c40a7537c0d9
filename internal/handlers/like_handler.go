package handlers

import (
	"net/http"

	"github.com/balbalm/feed-server/internal/middleware"
	"github.com/balbalm/feed-server/internal/models"
	"github.com/balbalm/feed-server/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.ToggleLike)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
	g.GET("/posts/:post_id/likes/status", h.GetUserLikeStatusForPost)
}

// ToggleLike creates the like if the user has not liked the post yet and
// removes it otherwise. The paired notification row follows the like inside
// the same transaction.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)
	postID, err := parsePostID(c, "post_id")
	if err != nil {
		return err
	}

	liked, likesCount, err := h.likeRepository.ToggleLike(postID, socialID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, models.ToggleLikeResponse{
		PostID:     postID,
		Liked:      liked,
		LikesCount: likesCount,
	})
}

// GetLikesCountForPost retrieves the total number of likes for a post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID, err := parsePostID(c, "post_id")
	if err != nil {
		return err
	}

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}

// GetUserLikeStatusForPost checks if the authenticated user has liked a post
func (h *LikeHandler) GetUserLikeStatusForPost(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)
	postID, err := parsePostID(c, "post_id")
	if err != nil {
		return err
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(postID, socialID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "user_id": socialID, "has_liked": hasLiked})
}
