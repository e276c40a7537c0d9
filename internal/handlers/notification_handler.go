package handlers

import (
	"net/http"
	"strconv"

	"github.com/balbalm/feed-server/internal/middleware"
	"github.com/balbalm/feed-server/internal/models"
	"github.com/balbalm/feed-server/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:post_id/read", h.MarkAsRead)
	g.DELETE("/notifications/:id", h.DeleteNotification)
	g.DELETE("/notifications", h.DeleteAllNotifications)
}

// aggregateEvents folds like events into one notification per post: read
// only when every event is read, timestamped by the latest event. Groups
// keep the first-seen order of the underlying rows.
func aggregateEvents(events []models.NotificationEvent) []models.AggregatedNotification {
	order := []uint{}
	groups := map[uint]*models.AggregatedNotification{}

	for _, event := range events {
		group, ok := groups[event.PostID]
		if !ok {
			group = &models.AggregatedNotification{
				PostID:    event.PostID,
				IsRead:    true,
				CreatedAt: event.CreatedAt,
				Likes:     []models.LikeEntry{},
			}
			groups[event.PostID] = group
			order = append(order, event.PostID)
		}

		if !event.IsRead {
			group.IsRead = false
		}
		if event.CreatedAt.After(group.CreatedAt) {
			group.CreatedAt = event.CreatedAt
		}
		// A notification can transiently outlive its like; such rows still
		// count for read state but contribute no like entry.
		if event.LikerID != "" {
			group.Likes = append(group.Likes, models.LikeEntry{
				UserID:          event.LikerID,
				Nickname:        event.Nickname,
				ProfileImageURL: event.ProfileImageURL,
			})
		}
	}

	aggregated := make([]models.AggregatedNotification, 0, len(order))
	for _, postID := range order {
		aggregated = append(aggregated, *groups[postID])
	}
	return aggregated
}

// GetNotifications returns the aggregated notifications of the
// authenticated user, one entry per post
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)

	events, err := h.notificationRepository.GetEventsByUserID(socialID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, aggregateEvents(events))
}

// GetUnreadCount returns the number of unread notification rows
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)

	count, err := h.notificationRepository.GetUnreadCount(socialID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAsRead marks every notification for the given post as read. Calling
// it again, or for a post without notifications, is a no-op.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)
	postID, err := parsePostID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.notificationRepository.MarkAsRead(postID, socialID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully marked notifications as read"})
}

// DeleteNotification deletes one of the authenticated user's notifications
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)

	notifID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.DeleteNotification(uint(notifID), socialID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted a notification"})
}

// DeleteAllNotifications deletes every notification of the authenticated user
func (h *NotificationHandler) DeleteAllNotifications(c echo.Context) error {
	socialID := middleware.SocialIDFromContext(c)

	if err := h.notificationRepository.DeleteAllNotifications(socialID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted all notifications"})
}
