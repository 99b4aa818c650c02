// Package upstream fetches picture records from the NASA APOD API.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"apodapi/internal/config"
	"apodapi/internal/logging"
	"apodapi/internal/models"
)

// ErrUpstream is returned for any failure talking to the upstream API.
var ErrUpstream = errors.New("upstream API error")

const apodPath = "/planetary/apod"

// Client fetches a single picture record. An empty date asks for today's.
type Client interface {
	FetchPicture(ctx context.Context, date string) (*models.Picture, error)
}

// NASAClient talks to api.nasa.gov.
type NASAClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewNASAClient builds a client from the upstream configuration.
func NewNASAClient(cfg config.UpstreamConfig, timeout time.Duration) *NASAClient {
	return &NASAClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPicture calls GET {base}/planetary/apod?api_key=KEY[&date=D].
func (c *NASAClient) FetchPicture(ctx context.Context, date string) (*models.Picture, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if date != "" {
		q.Set("date", date)
	}
	endpoint := c.baseURL + apodPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, redactTransportError(err, c.baseURL+apodPath))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a bounded part of the body for the log.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logging.Log.WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Warn("Upstream APOD request failed")
		return nil, fmt.Errorf("%w: status %s", ErrUpstream, resp.Status)
	}

	var p models.Picture
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	if p.Date == "" {
		return nil, fmt.Errorf("%w: response has no date", ErrUpstream)
	}
	if p.MediaType == "" {
		p.MediaType = models.MediaTypeImage
	}
	return &p, nil
}

// redactTransportError drops the request URL, and with it the api_key query
// parameter, from a *url.Error returned by http.Client.Do.
func redactTransportError(err error, endpoint string) error {
	var uErr *url.Error
	if !errors.As(err, &uErr) {
		return err
	}
	return fmt.Errorf("%s %s: %w", uErr.Op, endpoint, uErr.Err)
}
