// Package sources holds one client adapter per external data source. Each
// adapter normalizes its vendor's JSON into the source-specific item shape
// defined in internal/models and wraps transport failures into
// models.APIError.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"techpulse/internal/models"
)

// requestTimeout is the fixed timeout applied to every outbound call.
const requestTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

func apiError(source string, status int, msg string, err error) *models.APIError {
	return &models.APIError{Source: source, Status: status, Message: msg, Err: err}
}

// apiRequest describes one outbound call for doJSON.
type apiRequest struct {
	method string
	url    string
	query  url.Values
	header http.Header
	body   io.Reader
}

// doJSON performs the request and decodes a JSON body into out. Non-2xx
// responses and network failures come back as *models.APIError via apiError;
// callers never see transport-specific error types.
func doJSON(ctx context.Context, client *http.Client, source string, req apiRequest, out any) error {
	method := req.method
	if method == "" {
		method = http.MethodGet
	}
	u := req.url
	if len(req.query) > 0 {
		u = u + "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, req.body)
	if err != nil {
		return apiError(source, 0, "error setting up API request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, vs := range req.header {
		for _, v := range vs {
			httpReq.Header.Set(k, v)
		}
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return apiError(source, 0, "no response received from API", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiError(source, resp.StatusCode, "failed to read API response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(source, resp.StatusCode, apiErrorMessage(data), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apiError(source, resp.StatusCode, "failed to decode API response", err)
	}
	return nil
}

// apiErrorMessage pulls a human-readable message out of an error body when
// the vendor provides one.
func apiErrorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if s := strings.TrimSpace(string(data)); s != "" && len(s) <= 200 {
		return fmt.Sprintf("API request failed: %s", s)
	}
	return "API request failed"
}
