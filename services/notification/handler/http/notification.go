package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/utils"
	"github.com/mealbridge/mealbridge/services/notification"
)

// NotificationHandler handles HTTP requests for direct notification dispatch
type NotificationHandler struct {
	notificationUC notification.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// Dispatch delivers a notification synchronously. Used by sibling services
// that need an immediate attempt instead of the queued path.
func (h *NotificationHandler) Dispatch(c echo.Context) error {
	var req models.NotificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.notificationUC.Dispatch(c.Request().Context(), &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Notification dispatched", nil)
}
