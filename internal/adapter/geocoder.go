package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/models"
)

// geocodeResult mirrors one entry of the provider's forward-geocode
// response (nominatim-compatible shape).
type geocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Road        string `json:"road"`
		City        string `json:"city"`
		Town        string `json:"town"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// httpGeocoder is the resty-backed implementation of [Geocoder].
type httpGeocoder struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewHTTPGeocoder constructs a [Geocoder] against the configured provider.
func NewHTTPGeocoder(cfg config.Geocoder, logger *logger.Logger) Geocoder {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(15 * time.Second)

	logger.Debug().Str("base_url", cfg.BaseURL).Msg("creating geocoder client")
	return &httpGeocoder{
		client: cli,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Geocode resolves the address to a [models.Location] using the first
// provider result, matching the original create/update side effect: the
// stored location always reflects the latest address.
func (g *httpGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	log := logger.FromContext(ctx)

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("q", address).
		SetQueryParam("format", "json").
		SetQueryParam("addressdetails", "1").
		SetQueryParam("api_key", g.apiKey).
		Get("/search")
	if err != nil {
		log.Err(err).Str("address", address).Msg("geocode request failed")
		return models.Location{}, fmt.Errorf("%w: %w", ErrGeocoderUnavailable, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("address", address).Msg("geocode request rejected")
		return models.Location{}, fmt.Errorf("%w: status %d", ErrGeocoderUnavailable, resp.StatusCode())
	}

	var results []geocodeResult
	if err := json.Unmarshal(resp.Body(), &results); err != nil {
		return models.Location{}, fmt.Errorf("%w: decoding response: %w", ErrGeocoderUnavailable, err)
	}
	if len(results) == 0 {
		return models.Location{}, ErrNoGeocodeResults
	}

	first := results[0]
	latitude, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: malformed latitude: %w", ErrGeocoderUnavailable, err)
	}
	longitude, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: malformed longitude: %w", ErrGeocoderUnavailable, err)
	}

	city := first.Address.City
	if city == "" {
		city = first.Address.Town
	}

	return models.Location{
		Type:             "Point",
		Longitude:        longitude,
		Latitude:         latitude,
		FormattedAddress: first.DisplayName,
		Street:           first.Address.Road,
		City:             city,
		State:            first.Address.State,
		Zipcode:          first.Address.Postcode,
		Country:          strings.ToUpper(first.Address.CountryCode),
	}, nil
}
