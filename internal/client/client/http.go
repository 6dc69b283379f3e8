package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dkrasnov/authapi/internal/common"
)

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"Token"`
}

// post sends a JSON body and returns the status code and response body.
// Transport-level failures are reported as ErrUnavailable.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (int, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, nil, fmt.Errorf("error encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response: %w", err)
	}

	return resp.StatusCode, data, nil
}

func (c *HTTPClient) Register(ctx context.Context, username string, password []byte) error {
	code, body, err := c.post(ctx, "/api/auth/register", credentials{UserName: username, Password: string(password)})
	if err != nil {
		return err
	}

	switch code {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		if strings.Contains(string(body), "already exists") {
			return ErrUsernameTaken
		}
		return fmt.Errorf("registration rejected: %s", body)
	case http.StatusUnauthorized:
		return ErrAccessDenied
	default:
		return fmt.Errorf("unexpected status %d: %s", code, body)
	}
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	code, body, err := c.post(ctx, "/api/auth/login", credentials{UserName: username, Password: string(password)})
	if err != nil {
		return "", err
	}

	switch code {
	case http.StatusOK:
		var resp loginResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("error decoding response: %w", err)
		}
		return resp.Token, nil
	case http.StatusUnauthorized:
		// The gate and the login handler both answer 401; only the body
		// tells them apart.
		if strings.Contains(string(body), "Invalid username or password") {
			return "", ErrInvalidCredentials
		}
		return "", ErrAccessDenied
	default:
		return "", fmt.Errorf("unexpected status %d: %s", code, body)
	}
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set(common.APIKeyHeaderName, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAccessDenied
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil
}
