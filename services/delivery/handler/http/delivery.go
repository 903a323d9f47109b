package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/utils"
	"github.com/mealbridge/mealbridge/services/delivery"
)

// DeliveryHandler handles HTTP requests for delivery operations
type DeliveryHandler struct {
	deliveryUC delivery.DeliveryUC
}

// NewDeliveryHandler creates a new delivery HTTP handler
func NewDeliveryHandler(deliveryUC delivery.DeliveryUC) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: deliveryUC,
	}
}

// UpdateStatusRequest is the request body for a status transition
type UpdateStatusRequest struct {
	Status models.DeliveryStatus `json:"status"`
}

// Assign binds an explicit driver to an order
func (h *DeliveryHandler) Assign(c echo.Context) error {
	var req delivery.AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	record, err := h.deliveryUC.Assign(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Delivery assigned", record)
}

// AutoAssign dispatches the nearest available driver to an order
func (h *DeliveryHandler) AutoAssign(c echo.Context) error {
	var req delivery.AutoAssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	record, err := h.deliveryUC.AutoAssign(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Delivery assigned", record)
}

// UpdateStatus advances a delivery to the requested status
func (h *DeliveryHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "status must not be empty")
	}

	record, err := h.deliveryUC.Transition(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Delivery status updated", record)
}

// GetByID returns a single delivery record
func (h *DeliveryHandler) GetByID(c echo.Context) error {
	record, err := h.deliveryUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", record)
}

// MyDeliveries lists the authenticated driver's deliveries
func (h *DeliveryHandler) MyDeliveries(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	records, err := h.deliveryUC.ListByDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", records)
}

// MyCompletedDeliveries lists the authenticated driver's delivered orders
func (h *DeliveryHandler) MyCompletedDeliveries(c echo.Context) error {
	driverID, ok := c.Get("user_id").(string)
	if !ok || driverID == "" {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	records, err := h.deliveryUC.ListCompletedByDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", records)
}
