package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client implements the OpenWeatherMap provider gateway.
// Every call is a single synchronous attempt bounded by the configured timeout;
// there are no retries and no caching of provider responses.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a new OpenWeatherMap client
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Current fetches the current weather data for a location query (city name, 'city,country', zip, ...).
// The payload is returned verbatim; whether the location is valid is decided solely by the provider.
func (client *Client) Current(ctx context.Context, location string) (json.RawMessage, error) {
	return client.fetch(ctx, "/weather", location)
}

// Forecast fetches the 5-day weather forecast for a location query
func (client *Client) Forecast(ctx context.Context, location string) (json.RawMessage, error) {
	return client.fetch(ctx, "/forecast", location)
}

func (client *Client) fetch(ctx context.Context, path, location string) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", client.apiKey)
	values.Set("units", "metric")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	response, err := client.http.Do(request)
	if err != nil {
		// Transport failures and timeouts are indistinguishable from an unreachable provider
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusOK:
		payload, err := io.ReadAll(response.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return payload, nil
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case response.StatusCode == http.StatusNotFound:
		return nil, ErrLocationNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, response.StatusCode)
	}
}
