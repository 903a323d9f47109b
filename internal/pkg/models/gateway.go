package models

import "encoding/json"

// OrderSummary is the slice of an order the gateway needs for enrichment
type OrderSummary struct {
	OrderID        string  `json:"order_id"`
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	CustomerName   string  `json:"customer_name"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
}

// DeliveryView is a delivery record enriched with order details for clients.
// Enrichment is best-effort: when the order service is unreachable the name
// fields fall back to "N/A" instead of failing the whole view.
type DeliveryView struct {
	Delivery       *DeliveryRecord `json:"delivery"`
	RestaurantName string          `json:"restaurant_name"`
	CustomerName   string          `json:"customer_name"`
}

// RestaurantView is a nearby restaurant enriched with its display name
type RestaurantView struct {
	EntityID       string   `json:"entity_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Location       GeoPoint `json:"location"`
	DistanceMeters float64  `json:"distance_meters"`
}

// AssignDeliveryRequest is the gateway passthrough for explicit assignment
type AssignDeliveryRequest struct {
	OrderID          string `json:"order_id"`
	DeliveryPersonID string `json:"delivery_person_id"`
	Notes            string `json:"notes,omitempty"`
}

// AutoAssignDeliveryRequest is the gateway passthrough for auto-dispatch
type AutoAssignDeliveryRequest struct {
	OrderID            string  `json:"order_id"`
	RestaurantAddress  string  `json:"restaurant_address"`
	Notes              string  `json:"notes,omitempty"`
	SearchRadiusMeters float64 `json:"search_radius_meters,omitempty"`
}

// LoginRequest is forwarded untouched to the auth service
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the auth service's reply verbatim
type LoginResponse struct {
	Raw json.RawMessage
}
