package location

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

// AddressResolver wraps the external geocoding provider.
// Zero results surface as apperrors.ErrResolutionFailed; transport-level
// provider failures as apperrors.ErrUpstreamUnavailable.
type AddressResolver interface {
	Geocode(ctx context.Context, address string) (*models.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, point models.GeoPoint) (*models.GeocodeResult, error)
	Autocomplete(ctx context.Context, partial string) ([]models.AddressSuggestion, error)
}
