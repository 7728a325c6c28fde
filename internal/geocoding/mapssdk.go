package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oterra/waypoint/internal/models"
	"googlemaps.github.io/maps"
)

// MapsSDKProvider resolves addresses through the official Google Maps Go client
// instead of the raw REST endpoint. The client handles signing, rate limiting
// and response decoding itself.
type MapsSDKProvider struct {
	client MapsAPIClient // client is the Google Maps API client
	log    *slog.Logger  // log is the logger for logging operations
}

// MapsAPIClient is the subset of the Google Maps client used by this provider.
type MapsAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps client responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewMapsSDKProvider initializes a new MapsSDKProvider with the given client and logger.
func NewMapsSDKProvider(client MapsAPIClient, log *slog.Logger) *MapsSDKProvider {
	return &MapsSDKProvider{client: client, log: log}
}

// Geocode takes a context and an address string as input, and returns the
// geographical coordinates of the provided address using the Google Maps client.
// If the address cannot be geocoded or if the response is empty, it returns an
// appropriate error.
func (mp *MapsSDKProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	mp.log.DebugContext(ctx, "Geocoding using Google Maps SDK", "address", address)

	req := maps.GeocodingRequest{Address: address}
	geocodeResponse, err := mp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrEmptyResponse
	}
	coords := geocodeResponse[0].Geometry.Location

	return &models.Coordinates{Latitude: coords.Lat, Longitude: coords.Lng}, nil
}
