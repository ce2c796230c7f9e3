package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/bungo"
	"golang.org/x/time/rate"
)

// Provider base URLs.
const (
	DefaultGSIBaseURL       = "https://msearch.gsi.go.jp"
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
)

// Provider names recorded as a mention's geocode source.
const (
	SourceGSI       = "gsi"
	SourceNominatim = "nominatim"
)

// Confidence assigned to provider matches.
const (
	gsiExactConfidence   = 0.9
	gsiPartialConfidence = 0.8
	nominatimConfidence  = 0.7
)

// GeocoderOption configures a geocoding provider.
type GeocoderOption func(*geocoderConfig)

type geocoderConfig struct {
	baseURL   string
	userAgent string
	limit     rate.Limit
	timeout   time.Duration
}

// WithBaseURL overrides the provider endpoint.
func WithBaseURL(u string) GeocoderOption {
	return func(c *geocoderConfig) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithGeocoderUserAgent sets the User-Agent header. Nominatim rejects
// requests without one.
func WithGeocoderUserAgent(ua string) GeocoderOption {
	return func(c *geocoderConfig) {
		c.userAgent = ua
	}
}

// WithRateLimit sets the maximum requests per second.
func WithRateLimit(rps float64) GeocoderOption {
	return func(c *geocoderConfig) {
		c.limit = rate.Limit(rps)
	}
}

func newGeocoderConfig(baseURL string, rps float64, opts []GeocoderOption) geocoderConfig {
	c := geocoderConfig{
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		limit:     rate.Limit(rps),
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// jsonClient performs rate-limited GET requests that decode JSON.
type jsonClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func newJSONClient(c geocoderConfig) *jsonClient {
	return &jsonClient{
		client:    &http.Client{Timeout: c.timeout},
		limiter:   rate.NewLimiter(c.limit, 1),
		userAgent: c.userAgent,
	}
}

func (c *jsonClient) get(ctx context.Context, u string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, u)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response from %s: %w", u, err)
	}
	return nil
}

// Ensure GSIGeocoder implements bungo.Geocoder at compile time.
var _ bungo.Geocoder = (*GSIGeocoder)(nil)

// GSIGeocoder resolves Japanese place names with the Geospatial Information
// Authority of Japan address search.
type GSIGeocoder struct {
	baseURL string
	client  *jsonClient
}

// NewGSIGeocoder creates a GSIGeocoder limited to 5 requests per second.
func NewGSIGeocoder(opts ...GeocoderOption) *GSIGeocoder {
	c := newGeocoderConfig(DefaultGSIBaseURL, 5, opts)
	return &GSIGeocoder{baseURL: c.baseURL, client: newJSONClient(c)}
}

type gsiFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Title string `json:"title"`
	} `json:"properties"`
}

// Geocode returns the first address search match. An exact title match is
// trusted more than a partial one.
func (g *GSIGeocoder) Geocode(ctx context.Context, placeName string) (*bungo.GeocodeResult, error) {
	u := g.baseURL + "/address-search/AddressSearch?q=" + url.QueryEscape(placeName)

	var features []gsiFeature
	if err := g.client.get(ctx, u, &features); err != nil {
		return nil, err
	}

	for _, f := range features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		confidence := gsiPartialConfidence
		if f.Properties.Title == placeName {
			confidence = gsiExactConfidence
		}
		return &bungo.GeocodeResult{
			PlaceName:  placeName,
			Lng:        f.Geometry.Coordinates[0],
			Lat:        f.Geometry.Coordinates[1],
			Address:    f.Properties.Title,
			Confidence: confidence,
			Source:     SourceGSI,
		}, nil
	}
	return nil, bungo.Errorf(bungo.ENOTFOUND, "gsi: no match for %q", placeName)
}

// Ensure NominatimGeocoder implements bungo.Geocoder at compile time.
var _ bungo.Geocoder = (*NominatimGeocoder)(nil)

// NominatimGeocoder resolves place names with OpenStreetMap Nominatim. The
// public instance allows one request per second.
type NominatimGeocoder struct {
	baseURL string
	client  *jsonClient
}

// NewNominatimGeocoder creates a NominatimGeocoder limited to 1 request per second.
func NewNominatimGeocoder(opts ...GeocoderOption) *NominatimGeocoder {
	c := newGeocoderConfig(DefaultNominatimBaseURL, 1, opts)
	return &NominatimGeocoder{baseURL: c.baseURL, client: newJSONClient(c)}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns Nominatim's best match, preferring Japanese names.
func (g *NominatimGeocoder) Geocode(ctx context.Context, placeName string) (*bungo.GeocodeResult, error) {
	q := url.Values{}
	q.Set("q", placeName)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("accept-language", "ja")
	u := g.baseURL + "/search?" + q.Encode()

	var places []nominatimPlace
	if err := g.client.get(ctx, u, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, bungo.Errorf(bungo.ENOTFOUND, "nominatim: no match for %q", placeName)
	}

	p := places[0]
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: parse lat %q: %w", p.Lat, err)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: parse lon %q: %w", p.Lon, err)
	}

	return &bungo.GeocodeResult{
		PlaceName:  placeName,
		Lat:        lat,
		Lng:        lng,
		Address:    p.DisplayName,
		Confidence: nominatimConfidence,
		Source:     SourceNominatim,
	}, nil
}
