// Package api talks to the tee-time notification backend.
package api

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

	"github.com/google/uuid"

	"github.com/julianstephens/teetime/internal/constants"
	apperrors "github.com/julianstephens/teetime/internal/errors"
	"github.com/julianstephens/teetime/internal/logger"
	"github.com/julianstephens/teetime/internal/models"
)

const (
	PathRecentTimes         = "/getRecentTimes"
	PathRegister            = "/register"
	PathCreateOneTimeLink   = "/createOneTimeLink"
	PathValidateOneTimeLink = "/validateOneTimeLink"
	PathGetUserConfig       = "/getUserConfig"
	PathUpdateUserConfig    = "/updateUserConfig"
	PathPause               = "/pause"
	PathResume              = "/resume"
)

// maxErrorBody bounds how much of an error response is kept for messages.
const maxErrorBody = 512

// Client is a thin JSON client for the backend. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: constants.DefaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured origin without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (r response) snippet() string {
	b := bytes.TrimSpace(r.body)
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return string(b)
}

// do sends one request. Only transport failures are returned as errors;
// status handling is left to the caller.
func (c *Client) do(ctx context.Context, method, path string, in any) (response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return response{}, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response{}, fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("request failed", "method", method, "path", path, "request_id", reqID, "err", err)
		return response{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("failed to read response: %w", err)
	}
	logger.Debug("request complete",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start),
	)
	return response{status: resp.StatusCode, body: data}, nil
}

func decode(op string, r response, out any) error {
	if err := json.Unmarshal(r.body, out); err != nil {
		return apperrors.Ef(apperrors.KindFetchFailure, op, "unreadable response (HTTP %d): %w", r.status, err)
	}
	return nil
}

// RecentTimes fetches the most recent tee-time sightings.
func (c *Client) RecentTimes(ctx context.Context) ([]models.TeeTime, error) {
	const op = "api.RecentTimes"
	r, err := c.do(ctx, http.MethodGet, PathRecentTimes, nil)
	if err != nil {
		return nil, apperrors.E(apperrors.KindFetchFailure, op, err)
	}
	if !r.ok() {
		return nil, apperrors.Ef(apperrors.KindFetchFailure, op, "HTTP %d: %s", r.status, r.snippet())
	}
	var out models.RecentTimesResponse
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// postStatus handles the {success, message} endpoints.
func (c *Client) postStatus(ctx context.Context, op, path string, in any) (models.StatusResponse, error) {
	r, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return models.StatusResponse{}, apperrors.E(apperrors.KindFetchFailure, op, err)
	}
	var out models.StatusResponse
	if len(bytes.TrimSpace(r.body)) > 0 {
		if err := decode(op, r, &out); err != nil && r.ok() {
			return models.StatusResponse{}, err
		}
	}
	if !r.ok() {
		msg := out.Message
		if msg == "" {
			msg = r.snippet()
		}
		return out, apperrors.Ef(apperrors.KindServerRejection, op, "HTTP %d: %s", r.status, msg)
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "request was not accepted"
		}
		return out, apperrors.Ef(apperrors.KindServerRejection, op, "%s", msg)
	}
	return out, nil
}

// Register signs an email up for alerts.
func (c *Client) Register(ctx context.Context, email string) (models.StatusResponse, error) {
	return c.postStatus(ctx, "api.Register", PathRegister, models.EmailRequest{Email: email})
}

// CreateOneTimeLink asks the backend to email a settings link.
func (c *Client) CreateOneTimeLink(ctx context.Context, email string) (models.StatusResponse, error) {
	return c.postStatus(ctx, "api.CreateOneTimeLink", PathCreateOneTimeLink, models.EmailRequest{Email: email})
}

// LinkToken extracts the token from a bare token or a link URL whose last
// path segment is the token.
func LinkToken(s string) string {
	s = strings.TrimSpace(s)
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		s = u.Path
		if u.Fragment != "" {
			s = u.Fragment
		}
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// ValidateOneTimeLink resolves a one-time link token to its email.
// Tokens that are not UUIDs are refused without a network call.
func (c *Client) ValidateOneTimeLink(ctx context.Context, token string) (string, error) {
	const op = "api.ValidateOneTimeLink"
	guid := LinkToken(token)
	if _, err := uuid.Parse(guid); err != nil {
		return "", apperrors.Ef(apperrors.KindInvalidLink, op, "%s", constants.MsgInvalidLink)
	}

	r, err := c.do(ctx, http.MethodPost, PathValidateOneTimeLink, models.GuidRequest{GUID: guid})
	if err != nil {
		return "", apperrors.E(apperrors.KindFetchFailure, op, err)
	}
	var out models.ValidateLinkResponse
	if err := decode(op, r, &out); err != nil {
		if !r.ok() {
			return "", apperrors.Ef(apperrors.KindInvalidLink, op, "%s", constants.MsgInvalidLink)
		}
		return "", err
	}
	if out.Email == "" {
		msg := out.ErrorMessage
		if msg == "" {
			msg = constants.MsgInvalidLink
		}
		return "", apperrors.Ef(apperrors.KindInvalidLink, op, "%s", msg)
	}
	return out.Email, nil
}

// GetUserConfig fetches the stored configuration for email.
func (c *Client) GetUserConfig(ctx context.Context, email string) (models.NotificationConfiguration, error) {
	const op = "api.GetUserConfig"
	r, err := c.do(ctx, http.MethodPost, PathGetUserConfig, models.EmailRequest{Email: email})
	if err != nil {
		return models.NotificationConfiguration{}, apperrors.E(apperrors.KindFetchFailure, op, err)
	}
	if !r.ok() {
		return models.NotificationConfiguration{}, apperrors.Ef(apperrors.KindFetchFailure, op, "HTTP %d: %s", r.status, r.snippet())
	}
	var out models.UserConfigResponse
	if err := decode(op, r, &out); err != nil {
		return models.NotificationConfiguration{}, err
	}
	if !out.Success {
		return models.NotificationConfiguration{}, apperrors.Ef(apperrors.KindFetchFailure, op, "backend reported success=false")
	}
	return out.Result, nil
}

// UpdateUserConfig persists cfg for email. Only the HTTP status is consulted.
func (c *Client) UpdateUserConfig(ctx context.Context, email string, cfg models.NotificationConfiguration) error {
	const op = "api.UpdateUserConfig"
	req := models.UpdateUserConfigRequest{NotificationConfiguration: cfg, Email: email}
	r, err := c.do(ctx, http.MethodPost, PathUpdateUserConfig, req)
	if err != nil {
		return apperrors.E(apperrors.KindFetchFailure, op, err)
	}
	if !r.ok() {
		return apperrors.Ef(apperrors.KindServerRejection, op, "HTTP %d: %s", r.status, r.snippet())
	}
	return nil
}

// Pause stops notifications without touching the rest of the configuration.
func (c *Client) Pause(ctx context.Context) error {
	return c.postEmpty(ctx, "api.Pause", PathPause)
}

// Resume re-enables notifications.
func (c *Client) Resume(ctx context.Context) error {
	return c.postEmpty(ctx, "api.Resume", PathResume)
}

func (c *Client) postEmpty(ctx context.Context, op, path string) error {
	r, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return apperrors.E(apperrors.KindFetchFailure, op, err)
	}
	if !r.ok() {
		return apperrors.Ef(apperrors.KindServerRejection, op, "HTTP %d: %s", r.status, r.snippet())
	}
	return nil
}
