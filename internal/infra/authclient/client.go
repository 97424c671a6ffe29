// Package authclient implements the remote identity verification client
// against the external auth service's HTTP API.
package authclient

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"bizprofile/config"
	"bizprofile/internal/domain/service"

	"github.com/pkg/errors"
)

// maxResponseBytes caps how much of an auth service response body is read.
// Role and existence payloads are tiny; anything larger is a misbehaving peer.
const maxResponseBytes = 4 * 1024

// httpAuthClient implements service.AuthServiceClient over plain HTTP.
// Every call is a single blocking request with the configured timeout and no
// retries; retry/backoff policy belongs to the caller's infrastructure.
type httpAuthClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New is the constructor for httpAuthClient.
func New(cfg *config.Config, logger *slog.Logger) service.AuthServiceClient {
	return &httpAuthClient{
		baseURL: strings.TrimRight(cfg.AuthService.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.AuthService.Timeout,
		},
		logger: logger,
	}
}

// GetUserRole returns the role the auth service has on record for the given
// external user id. A 404 maps to service.ErrAuthUserNotFound; every other
// failure is reported as-is so callers can treat it as upstream unavailability.
func (c *httpAuthClient) GetUserRole(ctx context.Context, authUserID int64) (string, error) {
	endpoint := c.baseURL + "/api/auth/" + strconv.FormatInt(authUserID, 10) + "/role"

	body, err := c.get(ctx, endpoint, authUserID)
	if err != nil {
		return "", err
	}

	return decodeRole(body), nil
}

// UserExists reports whether the auth service knows the given user id.
func (c *httpAuthClient) UserExists(ctx context.Context, authUserID int64) (bool, error) {
	endpoint := c.baseURL + "/api/auth/" + strconv.FormatInt(authUserID, 10) + "/exists"

	body, err := c.get(ctx, endpoint, authUserID)
	if err != nil {
		if errors.Is(err, service.ErrAuthUserNotFound) {
			return false, nil
		}

		return false, err
	}

	var exists bool
	if err := json.Unmarshal(body, &exists); err != nil {
		return false, errors.Wrap(err, "failed to decode exists response")
	}

	return exists, nil
}

func (c *httpAuthClient) get(ctx context.Context, endpoint string, authUserID int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build auth service request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Auth service request failed",
			slog.Int64("authUserID", authUserID),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(err, "auth service request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read auth service response")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, service.ErrAuthUserNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		c.logger.Error("Auth service returned unexpected status",
			slog.Int64("authUserID", authUserID),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("auth service returned status %d", resp.StatusCode)
	}

	return body, nil
}

// decodeRole accepts both a JSON string payload ("BUSINESS_OWNER") and a bare
// text body, which is what the auth service emits from its role endpoint.
func decodeRole(body []byte) string {
	var role string
	if err := json.Unmarshal(body, &role); err == nil {
		return role
	}

	return strings.TrimSpace(string(body))
}
