package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// ExternalAPIService is a struct representing a configurable external service
type ExternalAPIService struct {
	client *http.Client
}

// NewExternalAPIService creates a new instance of ExternalAPIService
func NewExternalAPIService() *ExternalAPIService {
	return &ExternalAPIService{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// makeRequest is a helper function to make HTTP requests, supporting optional
// query parameters and custom headers.
func (s *ExternalAPIService) makeRequest(ctx context.Context, method, endpoint string, params url.Values, body interface{}, headers map[string]string) (*http.Response, error) {
	if params != nil {
		endpoint = endpoint + "?" + params.Encode()
	}

	var err error
	var jsonBody []byte
	if body != nil {
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return s.client.Do(req)
}

// Get makes a GET request to the external service, accepting optional query parameters
func (s *ExternalAPIService) Get(ctx context.Context, endpoint string, params url.Values, headers map[string]string) (*http.Response, error) {
	return s.makeRequest(ctx, http.MethodGet, endpoint, params, nil, headers)
}

// Post makes a POST request to the external service, accepting an optional JSON body
func (s *ExternalAPIService) Post(ctx context.Context, endpoint string, params url.Values, body interface{}, headers map[string]string) (*http.Response, error) {
	return s.makeRequest(ctx, http.MethodPost, endpoint, params, body, headers)
}
