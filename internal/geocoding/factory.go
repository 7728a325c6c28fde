package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeGoogle represents the raw Google Geocoding REST API provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeMapsSDK represents the official Google Maps client provider.
	ProviderTypeMapsSDK ProviderType = "googlesdk"
	// ProviderTypeNominatim represents the OpenStreetMap Nominatim provider.
	ProviderTypeNominatim ProviderType = "nominatim"
)

// defaultTimeout bounds a single geocoding call when the config does not set one.
const defaultTimeout = 10 * time.Second

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType  // Type of provider to create
	APIKey    string        // API key (required by the Google providers)
	RateLimit int           // Rate limit in requests per second
	Timeout   time.Duration // Timeout for a single geocoding call
	Logger    *slog.Logger  // Logger for the provider
}

// NewProvider creates a geocoding provider based on the provided configuration.
// It applies the Factory pattern to decouple provider instantiation from business logic.
//
// Supported provider types:
// - "google": Google Geocoding REST API (requires API key)
// - "googlesdk": Google Maps Go client (requires API key)
// - "nominatim": OpenStreetMap Nominatim API (free, no API key required)
//
// Returns an error if the provider type is unsupported or if provider creation fails.
func NewProvider(config ProviderConfig) (Provider, error) {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	switch config.Type {
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeMapsSDK:
		return newMapsSDKProvider(config)
	case ProviderTypeNominatim:
		return NewNominatimProvider(config.Timeout, config.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newGoogleProvider creates a raw Google Geocoding REST API provider.
func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	if config.RateLimit == 0 {
		config.RateLimit = 10
		config.Logger.Warn("Rate limit for Google API not set, set a default value", "value", config.RateLimit)
	}

	return NewGoogleProvider(config.APIKey, config.RateLimit, config.Timeout, config.Logger), nil
}

// newMapsSDKProvider creates a provider backed by the Google Maps Go client.
func newMapsSDKProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google Maps SDK provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewMapsSDKProvider(client, config.Logger), nil
}
