// Package gateway is the single network boundary of the client. Every remote
// operation goes through it: credentials are injected here, timeouts are fixed
// here, and every failure is normalized here into the shared error taxonomy so
// callers never see raw transport errors.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"aiact/internal/platform/config"
	apperrors "aiact/internal/platform/errors"
	"aiact/internal/platform/id"
)

// TokenSource supplies the current session token, or "" when the client is
// unauthenticated. Requests without a token go out unauthenticated and the
// server decides whether to reject them.
type TokenSource interface {
	Token() string
}

type ComplianceResult struct {
	RiskCategory    string   `json:"risk_category"`
	RiskScore       int      `json:"risk_score"`
	RiskFactors     []string `json:"risk_factors"`
	Articles        []string `json:"articles"`
	Recommendations []string `json:"recommendations"`
	Explanation     string   `json:"explanation"`
}

type CheckResponse struct {
	ReportID    string           `json:"report_id"`
	Analysis    ComplianceResult `json:"analysis"`
	DownloadURL string           `json:"download_url"`
}

type ReportRecord struct {
	ID             string           `json:"id"`
	UserID         int              `json:"user_id"`
	Description    string           `json:"description"`
	AnalysisResult ComplianceResult `json:"analysis_result"`
	CreatedAt      string           `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

type Client struct {
	http    *resty.Client
	baseURL string
}

func New(cfg config.Config, tokens TokenSource, ids id.Generator) *Client {
	httpc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	httpc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if ids != nil {
			r.SetHeader("X-Request-ID", ids.New())
		}
		if tokens != nil {
			if token := tokens.Token(); token != "" {
				r.SetHeader("Authorization", "Bearer "+token)
			}
		}
		return nil
	})

	return &Client{http: httpc, baseURL: cfg.BaseURL}
}

func (c *Client) Register(ctx context.Context, email, password string) (AuthResponse, error) {
	return c.authenticate(ctx, "/api/register", email, password)
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	return c.authenticate(ctx, "/api/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (AuthResponse, error) {
	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(credentials{Email: email, Password: password}).
		SetResult(&out).
		Post(path)
	if err != nil {
		return AuthResponse{}, &apperrors.RequestError{Message: message(nil, err, "Authentication request failed")}
	}
	if resp.IsError() {
		msg := message(resp, nil, "Authentication failed")
		if resp.StatusCode() >= 400 && resp.StatusCode() < 500 {
			return AuthResponse{}, &apperrors.AuthError{Message: msg}
		}
		return AuthResponse{}, &apperrors.RequestError{Message: msg}
	}
	return out, nil
}

func (c *Client) CheckCompliance(ctx context.Context, description string) (CheckResponse, error) {
	var out CheckResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"description": description}).
		SetResult(&out).
		Post("/api/check")
	if err := normalize(resp, err, "Failed to check compliance"); err != nil {
		return CheckResponse{}, err
	}
	return out, nil
}

func (c *Client) ListReports(ctx context.Context) ([]ReportRecord, error) {
	var out []ReportRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/reports")
	if err := normalize(resp, err, "Failed to fetch reports"); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadReport fetches the raw report document. Turning the payload into a
// saved file is the caller's concern.
func (c *Client) DownloadReport(ctx context.Context, reportID string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/download/" + reportID)
	if err := normalize(resp, err, "Failed to download report"); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// ReportURL builds a direct fetch URL for out-of-band access. Pure, no
// network call, and independent of the session.
func (c *Client) ReportURL(reportID string) string {
	return fmt.Sprintf("%s/api/download/%s", c.baseURL, reportID)
}

// normalize maps a transport error or non-2xx response to a RequestError with
// a single human-readable message. Used uniformly by every operation except
// the auth pair, which additionally distinguishes 4xx rejections.
func normalize(resp *resty.Response, err error, fallback string) error {
	if err != nil {
		return &apperrors.RequestError{Message: message(nil, err, fallback)}
	}
	if resp != nil && resp.IsError() {
		return &apperrors.RequestError{Message: message(resp, nil, fallback)}
	}
	return nil
}

// message picks the most specific text available: the server's structured
// detail field verbatim, then the transport error's own message, then the
// operation's fallback.
func message(resp *resty.Response, err error, fallback string) string {
	if detail := errDetail(resp); detail != "" {
		return detail
	}
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		return err.Error()
	}
	return fallback
}

func errDetail(resp *resty.Response) string {
	if resp == nil {
		return ""
	}
	var body errorBody
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr != nil {
		return ""
	}
	return strings.TrimSpace(body.Detail)
}
