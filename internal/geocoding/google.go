package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/oterra/waypoint/internal/models"
	"golang.org/x/time/rate"
)

// GoogleBaseURL is the Google Geocoding API endpoint.
const GoogleBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Google Geocoding API status values this provider distinguishes.
// Any value other than StatusOK is surfaced to the caller as a *StatusError.
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
)

// GoogleProvider resolves addresses against the Google Geocoding REST API directly.
// Each call is a single synchronous GET; there are no retries and no caching.
type GoogleProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the geocoding endpoint
	apiKey  string        // API key passed as the `key` query parameter
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// googleResponse is the subset of the Google Geocoding API response this
// provider consumes: the status field and the first candidate's location.
// Geometry and location are pointers so a structurally incomplete result is
// distinguishable from a genuine coordinate at the zero value.
type googleResponse struct {
	Results      []googleResult `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

type googleResult struct {
	Geometry *googleGeometry `json:"geometry"`
}

type googleGeometry struct {
	Location *googleLocation `json:"location"`
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewGoogleProvider creates a new Google geocoding provider with a default
// HTTP client. The timeout bounds every call, including the body read.
func NewGoogleProvider(apiKey string, rateLimit int, timeout time.Duration, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: GoogleBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewGoogleProviderWithClient allows injecting a custom HTTP client and endpoint.
// Useful for testing with mocked HTTP clients.
func NewGoogleProviderWithClient(client HTTPClient, baseURL, apiKey string, limiter *rate.Limiter, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: limiter,
	}
}

// Geocode converts an address into geographic coordinates.
//
// The address is sent as the `address` query parameter with standard query
// encoding (spaces become `+`, reserved characters are percent-encoded), and
// the credential as `key`. Only the first candidate of the response is used.
//
// Failures are surfaced, never recovered locally:
//   - network-level failures come back wrapped around the transport error;
//   - a non-2xx HTTP status or a status field other than "OK" comes back
//     as a *StatusError;
//   - an undecodable body or an empty results list comes back as
//     ErrMalformedResponse.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if err := gp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	gp.log.DebugContext(ctx, "Geocoding using Google REST API", "address", address)

	if address == "" {
		return nil, ErrEmptyAddress
	}

	reqURL, err := url.Parse(gp.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("address", address)
	query.Set("key", gp.apiKey)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := gp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		gp.log.ErrorContext(ctx, "Google API error", "status", resp.StatusCode, "body", string(body))
		return nil, &StatusError{
			Status:   http.StatusText(resp.StatusCode),
			Message:  string(body),
			HTTPCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result googleResponse
	if err = json.Unmarshal(body, &result); err != nil {
		gp.log.ErrorContext(ctx, "Failed to parse Google response", "error", err, "body", string(body))
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if result.Status != StatusOK {
		return nil, &StatusError{
			Status:   result.Status,
			Message:  result.ErrorMessage,
			HTTPCode: resp.StatusCode,
		}
	}

	if len(result.Results) == 0 {
		return nil, fmt.Errorf("%w: status OK with no results", ErrMalformedResponse)
	}

	first := result.Results[0]
	if first.Geometry == nil || first.Geometry.Location == nil {
		return nil, fmt.Errorf("%w: result missing geometry location", ErrMalformedResponse)
	}

	loc := first.Geometry.Location

	gp.log.DebugContext(ctx, "Google found result", "address", address, "lat", loc.Lat, "lng", loc.Lng)

	return &models.Coordinates{
		Latitude:  loc.Lat,
		Longitude: loc.Lng,
	}, nil
}
