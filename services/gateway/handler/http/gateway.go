package http

import (
	"encoding/json"
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	httpclient "github.com/mealbridge/mealbridge/internal/pkg/http"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/utils"
	"github.com/mealbridge/mealbridge/services/gateway"
)

// GatewayHandler handles client-facing HTTP requests
type GatewayHandler struct {
	gatewayUC gateway.GatewayUC
}

// NewGatewayHandler creates a new gateway HTTP handler
func NewGatewayHandler(gatewayUC gateway.GatewayUC) *GatewayHandler {
	return &GatewayHandler{
		gatewayUC: gatewayUC,
	}
}

// UpdateStatusRequest is the request body for a status transition
type UpdateStatusRequest struct {
	Status models.DeliveryStatus `json:"status"`
}

// errorResponse maps errors onto client responses. Upstream primary-call
// failures keep their original status code and message; everything else
// goes through the shared app error mapping.
func errorResponse(c echo.Context, err error) error {
	if ue, ok := httpclient.AsUpstreamError(err); ok {
		return utils.ErrorResponseHandler(c, ue.StatusCode, ue.Message)
	}
	return utils.AppErrorResponse(c, err)
}

// Login forwards credentials to the auth service
func (h *GatewayHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	raw, err := h.gatewayUC.Login(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", json.RawMessage(raw))
}

// AssignDelivery forwards an explicit assignment to the delivery service
func (h *GatewayHandler) AssignDelivery(c echo.Context) error {
	var req models.AssignDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	record, err := h.gatewayUC.AssignDelivery(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Delivery assigned", record)
}

// AutoAssignDelivery forwards an auto-dispatch request to the delivery service
func (h *GatewayHandler) AutoAssignDelivery(c echo.Context) error {
	var req models.AutoAssignDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	record, err := h.gatewayUC.AutoAssignDelivery(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Delivery assigned", record)
}

// UpdateDeliveryStatus forwards a status transition to the delivery service
func (h *GatewayHandler) UpdateDeliveryStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "status must not be empty")
	}

	record, err := h.gatewayUC.UpdateDeliveryStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Delivery status updated", record)
}

// DeliveryView returns a delivery enriched with order details
func (h *GatewayHandler) DeliveryView(c echo.Context) error {
	view, err := h.gatewayUC.DeliveryView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", view)
}

// NearbyRestaurants returns restaurants near the caller's position
func (h *GatewayHandler) NearbyRestaurants(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng must be a number")
	}

	radius := 5000.0
	if raw := c.QueryParam("distance"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "distance must be a number")
		}
	}

	views, err := h.gatewayUC.NearbyRestaurants(c.Request().Context(), models.GeoPoint{Longitude: lng, Latitude: lat}, radius)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", views)
}
