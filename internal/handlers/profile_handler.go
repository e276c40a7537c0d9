package handlers

import (
	"net/http"

	"github.com/balbalm/feed-server/internal/middleware"
	"github.com/balbalm/feed-server/internal/models"
	"github.com/balbalm/feed-server/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles HTTP requests related to user profiles
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepository: profileRepo}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles/:user_id", h.GetProfile)
	g.PUT("/profiles", h.UpdateProfile)
}

// GetProfile retrieves a user's profile by social id
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileRepository.GetBySocialID(c.Param("user_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile upserts the authenticated user's own profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile := &models.Profile{
		SocialID: socialID,
		Nickname: req.Nickname,
		PhotoURL: req.PhotoURL,
	}
	if err := h.profileRepository.Upsert(profile); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, profile)
}
