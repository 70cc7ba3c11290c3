// Package superset implements a thin client for the host framework's REST
// API, used to sequence startup: wait for Superset to come up and confirm
// the metadata database registration the rendered configuration points at.
package superset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client talks to a Superset instance. Authenticated calls use the access
// token obtained from the security login endpoint.
type Client struct {
	baseURL    string
	username   string
	password   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client targeting the given base URL
// (e.g. "http://superset:8088") with admin credentials for the db auth
// provider.
func NewClient(baseURL, username, password string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger.With("component", "superset"),
	}
}

// Authenticate logs in against /api/v1/security/login and stores the
// access token for subsequent calls.
func (c *Client) Authenticate(ctx context.Context) error {
	payload := map[string]string{
		"username": c.username,
		"password": c.password,
		"provider": "db",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/security/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("login failed: invalid username or password")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if loginResp.AccessToken == "" {
		return fmt.Errorf("login response contained no access token")
	}

	c.token = loginResp.AccessToken
	c.logger.Info("authenticated", "user", c.username)
	return nil
}

// Health reports whether the instance answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// WaitHealthy polls the health endpoint at the given interval until the
// instance responds or the context ends.
func (c *Client) WaitHealthy(ctx context.Context, interval time.Duration) error {
	attempt := 0
	for {
		attempt++
		if err := c.Health(ctx); err == nil {
			c.logger.Info("superset healthy", "attempts", attempt)
			return nil
		} else if ctx.Err() == nil {
			c.logger.Debug("superset not healthy", "attempt", attempt, "err", err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for superset: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}

// Database is one database registration known to Superset.
type Database struct {
	ID   int    `json:"id"`
	Name string `json:"database_name"`
}

// Databases lists the database registrations, authenticating first if no
// token is held yet.
func (c *Client) Databases(ctx context.Context) ([]Database, error) {
	if c.token == "" {
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/database/", nil)
	if err != nil {
		return nil, fmt.Errorf("create database list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("database list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("database list returned status %d", resp.StatusCode)
	}

	var listResp struct {
		Result []Database `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("decode database list: %w", err)
	}
	return listResp.Result, nil
}
