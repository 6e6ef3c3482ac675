// Package remote renders documents through a RenderCV-compatible HTTP API.
// The service accepts the encoded document on POST /render and answers with
// either the PDF itself or a JSON payload pointing at one.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-cvgen/pkg/render"
)

// Name identifies this client in the render registry.
const Name = "api"

const (
	defaultTimeout = 30 * time.Second
	healthTimeout  = 5 * time.Second
)

// Client talks to a remote render service.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

var _ render.Client = (*Client)(nil)

// New builds a remote client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("remote: api url is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name implements render.Client.
func (c *Client) Name() string { return Name }

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string { return c.baseURL }

// Render posts doc to the service and returns the PDF. A 200 response
// carrying application/pdf is the PDF itself; a 200 JSON response with a
// pdf_url is followed up with a download. Anything else is a diagnostic.
func (c *Client) Render(ctx context.Context, doc []byte) (render.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	payload, err := json.Marshal(map[string]string{"yaml": string(doc)})
	if err != nil {
		return render.Result{}, fmt.Errorf("remote: marshal request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(payload))
	if err != nil {
		return render.Result{}, fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("posting document", "url", c.baseURL+"/render", "size", len(doc))
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportFailure(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return render.Result{}, fmt.Errorf("remote: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return render.Result{
			Message: fmt.Sprintf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}, nil
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/pdf") {
		c.logger.Info("rendered document", "client", Name, "size", len(body))
		return render.Result{Success: true, Message: "CV rendered successfully", PDF: body}, nil
	}

	var indirect struct {
		PDFURL string `json:"pdf_url"`
	}
	if err := json.Unmarshal(body, &indirect); err != nil {
		return render.Result{Message: fmt.Sprintf("API error: %v", err)}, nil
	}
	if indirect.PDFURL == "" {
		return render.Result{Message: "Unexpected API response format"}, nil
	}
	return c.download(ctx, indirect.PDFURL)
}

// download fetches the PDF the service pointed at.
func (c *Client) download(ctx context.Context, pdfURL string) (render.Result, error) {
	c.logger.Debug("downloading pdf", "url", pdfURL)
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return render.Result{}, fmt.Errorf("remote: build download request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportFailure(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return render.Result{
			Message: fmt.Sprintf("Failed to download PDF: %d", resp.StatusCode),
		}, nil
	}
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return render.Result{}, fmt.Errorf("remote: read pdf: %w", err)
	}
	return render.Result{Success: true, Message: "CV rendered successfully", PDF: pdf}, nil
}

// transportFailure maps request errors to diagnostics: caller cancellation
// stays an error, deadlines and dial failures become messages.
func (c *Client) transportFailure(ctx context.Context, err error) (render.Result, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return render.Result{}, ctxErr
	}

	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
		return render.Result{Message: "API request timed out"}, nil
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return render.Result{Message: fmt.Sprintf("Cannot connect to API at %s", c.baseURL)}, nil
	}
	return render.Result{Message: fmt.Sprintf("API error: %v", err)}, nil
}

// HealthCheck reports whether GET /health answers 2xx in time.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	reqCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
