package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/balbalm/feed-server/internal/middleware"
	"github.com/balbalm/feed-server/internal/models"
	"github.com/balbalm/feed-server/internal/parser"
	"github.com/balbalm/feed-server/internal/repositories"
	"github.com/balbalm/feed-server/pkg/logger"
	"github.com/balbalm/feed-server/pkg/storage"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	likeRepository repositories.LikeRepository // to resolve liked_by entries
	imageStore     storage.ImageStore
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository, imageStore storage.ImageStore) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		likeRepository: likeRepo,
		imageStore:     imageStore,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts/hashtag/:tag", h.GetPostsByHashtag)
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

func parsePostID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	return uint(id), nil
}

func (h *PostHandler) toResponse(post *models.Post) (*models.PostResponse, error) {
	likedBy, err := h.likeRepository.GetLikeEntriesByPostID(post.ID)
	if err != nil {
		return nil, err
	}
	return &models.PostResponse{
		PostID:     post.ID,
		ImageURLs:  post.ImageURLs,
		Content:    post.Content,
		UploadedAt: post.UploadedAt,
		LikedBy:    likedBy,
	}, nil
}

func (h *PostHandler) toResponses(posts []models.Post) ([]models.PostResponse, error) {
	responses := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		resp, err := h.toResponse(&posts[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// GetPosts lists all posts of the user given by the user_id query param
func (h *PostHandler) GetPosts(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'user_id' is required")
	}

	posts, err := h.postRepository.GetPostsByUserID(userID)
	if err != nil {
		return httpError(err)
	}

	responses, err := h.toResponses(posts)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, responses)
}

// GetPost retrieves a single post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parsePostID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}

	resp, err := h.toResponse(post)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetPostsByHashtag lists all posts carrying the given hashtag
func (h *PostHandler) GetPostsByHashtag(c echo.Context) error {
	tag := c.Param("tag")

	posts, err := h.postRepository.GetPostsByHashtag(tag)
	if err != nil {
		return httpError(err)
	}

	responses, err := h.toResponses(posts)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, responses)
}

// CreatePost creates a new post. Base64 image payloads are uploaded to
// object storage first; any upload failure aborts before a post row exists.
func (h *PostHandler) CreatePost(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	imageURLs := append([]string{}, req.ImageURLs...)
	for _, payload := range req.Images {
		url, err := h.imageStore.UploadBase64(payload)
		if err != nil {
			logger.Log.WithError(err).Error("image upload failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload image")
		}
		imageURLs = append(imageURLs, url)
	}

	post := &models.Post{
		UserID:     socialID,
		Content:    req.Content,
		ImageURLs:  imageURLs,
		UploadedAt: time.Now(),
	}

	if err := h.postRepository.CreatePost(post, parser.ExtractHashtags(req.Content)); err != nil {
		return httpError(err)
	}

	resp, err := h.toResponse(post)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdatePost updates a post's content, owner only
func (h *PostHandler) UpdatePost(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)
	postID, err := parsePostID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if post.UserID != socialID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this post")
	}

	post.Content = req.Content
	if err := h.postRepository.UpdatePost(post, parser.ExtractHashtags(req.Content)); err != nil {
		return httpError(err)
	}

	resp, err := h.toResponse(post)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeletePost deletes a post and everything derived from it, owner only
func (h *PostHandler) DeletePost(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)
	postID, err := parsePostID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if post.UserID != socialID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this post")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
