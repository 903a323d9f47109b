package models

import "time"

// EntityType identifies what kind of entity a location belongs to
type EntityType string

const (
	EntityTypeRestaurant EntityType = "restaurant"
	EntityTypeCustomer   EntityType = "customer"
	EntityTypeDriver     EntityType = "driver"
)

// Valid reports whether the entity type is one this platform indexes
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeRestaurant, EntityTypeCustomer, EntityTypeDriver:
		return true
	}
	return false
}

// GeoPoint is a WGS-84 coordinate pair
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Location represents the current point-in-space of an indexed entity.
// At most one Location exists per (EntityID, EntityType) pair.
type Location struct {
	EntityID   string     `json:"entity_id"`
	EntityType EntityType `json:"entity_type"`
	Point      GeoPoint   `json:"point"`
	Address    string     `json:"address,omitempty"`
	PlaceID    string     `json:"place_id,omitempty"`
	Geohash    string     `json:"geohash,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NearbyLocation is a Location paired with its distance from a query origin
type NearbyLocation struct {
	Location       Location `json:"location"`
	DistanceMeters float64  `json:"distance_meters"`
}

// GeocodeResult is the outcome of resolving an address with the provider
type GeocodeResult struct {
	Point            GeoPoint `json:"point"`
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
}

// AddressSuggestion is a single autocomplete candidate from the provider
type AddressSuggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}
