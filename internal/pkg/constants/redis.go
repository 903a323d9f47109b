package constants

// Redis key formats
const (
	// Location Service
	KeyEntityGeo      = "geo:%s"         // Format: geo:{entity_type}, GeoHash set per entity type
	KeyEntityLocation = "location:%s:%s" // Format: location:{entity_type}:{entity_id}, metadata hash
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAddress   = "address"
	FieldPlaceID   = "place_id"
	FieldGeohash   = "geohash"
	FieldUpdatedAt = "updated_at"
)
