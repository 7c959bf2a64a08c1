package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, rawURL string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, rawURL, nil, "", headers)
}

// Post performs a POST request with a JSON body.
func (c *clientImpl) Post(ctx context.Context, rawURL string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, rawURL, payload, "application/json", headers)
}

// PostForm performs a POST request with a form-encoded body.
func (c *clientImpl) PostForm(ctx context.Context, rawURL string, form map[string]string, headers map[string]string) ([]byte, int, error) {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	return c.do(ctx, http.MethodPost, rawURL, []byte(values.Encode()), "application/x-www-form-urlencoded", headers)
}

// do sends the request, retrying on transport errors and 5xx responses.
// A fresh request is built per attempt so the body can be re-sent.
func (c *clientImpl) do(ctx context.Context, method, rawURL string, payload []byte, contentType string, headers map[string]string) ([]byte, int, error) {
	var (
		resp *http.Response
		err  error
	)
	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			if contentType == "application/x-www-form-urlencoded" {
				bodyReader = strings.NewReader(string(payload))
			} else {
				bodyReader = bytes.NewReader(payload)
			}
		}

		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			break
		}
		if attempt < c.config.Retries {
			if resp != nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				resp = nil
			}
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(c.config.RetryWait):
			}
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}
