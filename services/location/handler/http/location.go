package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/utils"
	"github.com/mealbridge/mealbridge/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// UpsertLocationRequest is the request body for location upserts
type UpsertLocationRequest struct {
	EntityID    string            `json:"entityId"`
	EntityType  models.EntityType `json:"entityType"`
	Address     string            `json:"address"`
	Coordinates []float64         `json:"coordinates"` // [lng, lat]
	PlaceID     string            `json:"placeId"`
}

// GeocodeRequest is the request body for address geocoding
type GeocodeRequest struct {
	Address string `json:"address"`
}

// GeocodeResponse mirrors the provider result for API clients
type GeocodeResponse struct {
	Coordinates      []float64 `json:"coordinates"` // [lng, lat]
	FormattedAddress string    `json:"formattedAddress"`
	PlaceID          string    `json:"placeId"`
}

// NearbyEntry is one ranked candidate in a nearby query response
type NearbyEntry struct {
	EntityID string          `json:"entityId"`
	Address  string          `json:"address,omitempty"`
	Location models.GeoPoint `json:"location"`
	Distance float64         `json:"distance"`
}

// UpsertLocation stores or replaces an entity's location
func (h *LocationHandler) UpsertLocation(c echo.Context) error {
	var req UpsertLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if len(req.Coordinates) != 2 {
		return utils.BadRequestResponse(c, "coordinates must be [lng, lat]")
	}

	loc, err := h.locationUC.UpsertLocation(c.Request().Context(), &models.Location{
		EntityID:   req.EntityID,
		EntityType: req.EntityType,
		Point:      models.GeoPoint{Longitude: req.Coordinates[0], Latitude: req.Coordinates[1]},
		Address:    req.Address,
		PlaceID:    req.PlaceID,
	})
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Location stored", loc)
}

// GetLocation returns the stored location for an entity
func (h *LocationHandler) GetLocation(c echo.Context) error {
	entityType := models.EntityType(c.Param("entityType"))
	entityID := c.Param("entityId")

	loc, err := h.locationUC.GetLocation(c.Request().Context(), entityID, entityType)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", loc)
}

// RemoveLocation deletes an entity from the index
func (h *LocationHandler) RemoveLocation(c echo.Context) error {
	entityType := models.EntityType(c.Param("entityType"))
	entityID := c.Param("entityId")

	if err := h.locationUC.RemoveLocation(c.Request().Context(), entityID, entityType); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Location removed", nil)
}

// Geocode resolves a free-text address to coordinates
func (h *LocationHandler) Geocode(c echo.Context) error {
	var req GeocodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.locationUC.Geocode(c.Request().Context(), req.Address)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", GeocodeResponse{
		Coordinates:      []float64{result.Point.Longitude, result.Point.Latitude},
		FormattedAddress: result.FormattedAddress,
		PlaceID:          result.PlaceID,
	})
}

// ReverseGeocode resolves coordinates back to an address
func (h *LocationHandler) ReverseGeocode(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng must be a number")
	}

	result, err := h.locationUC.ReverseGeocode(c.Request().Context(), models.GeoPoint{Longitude: lng, Latitude: lat})
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", echo.Map{
		"formattedAddress": result.FormattedAddress,
		"placeId":          result.PlaceID,
	})
}

// Autocomplete returns address suggestions for a partial input
func (h *LocationHandler) Autocomplete(c echo.Context) error {
	suggestions, err := h.locationUC.Autocomplete(c.Request().Context(), c.QueryParam("input"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", suggestions)
}

// FindNearby ranks entities of one type by distance from a point
func (h *LocationHandler) FindNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng must be a number")
	}

	maxDistance := 0.0
	if raw := c.QueryParam("distance"); raw != "" {
		maxDistance, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "distance must be a number")
		}
	}

	entityType := models.EntityType(c.QueryParam("entityType"))
	if entityType == "" {
		entityType = models.EntityTypeRestaurant
	}

	candidates, err := h.locationUC.FindCandidates(c.Request().Context(), models.GeoPoint{Longitude: lng, Latitude: lat}, entityType, maxDistance)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	entries := make([]NearbyEntry, 0, len(candidates))
	for _, cand := range candidates {
		entries = append(entries, NearbyEntry{
			EntityID: cand.Location.EntityID,
			Address:  cand.Location.Address,
			Location: cand.Location.Point,
			Distance: cand.DistanceMeters,
		})
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", entries)
}
