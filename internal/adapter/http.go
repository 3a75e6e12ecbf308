package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/utils"
	"github.com/MKhiriev/go-clip-relay/models"
)

const (
	uploadPath = "/upload"
	fetchPath  = "/fetch"
	statusPath = "/status"

	cursorParam = "last_sync_time"
)

type httpRelayAdapter struct {
	client *utils.HTTPClient

	baseURL        string
	requestTimeout time.Duration
	payloadTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs an HTTP/JSON implementation of
// [RelayAdapter]. It normalises and validates serverURL and configures the
// underlying HTTP client with it.
//
// Returns an error if serverURL is empty or cannot be parsed as a valid URL.
func NewHTTPRelayAdapter(serverURL string, adapterCfg config.Adapter, logger *logger.Logger) (RelayAdapter, error) {
	baseURL, err := normalizeBaseURL(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid relay address: %w", err)
	}

	// Per-request deadlines come from the context; the client-level timeout
	// only guards against a misbehaving caller.
	client := utils.NewHTTPClient(baseURL, adapterCfg.PayloadTimeout)

	return &httpRelayAdapter{
		client:         client,
		baseURL:        baseURL,
		requestTimeout: adapterCfg.RequestTimeout,
		payloadTimeout: adapterCfg.PayloadTimeout,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRelayAdapter) BaseURL() string {
	return h.baseURL
}

// Upload implements [RelayAdapter]. It POSTs req to /upload.
func (h *httpRelayAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	timeout := h.payloadTimeout
	if models.ParseContentType(string(req.ContentType)) == models.ContentText {
		timeout = h.requestTimeout
	}
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	var result models.UploadResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(uploadPath)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}
	if result.Status != models.StatusOK {
		return models.UploadResponse{}, fmt.Errorf("%w: upload status %q", ErrUnexpectedResponse, result.Status)
	}

	return result, nil
}

// Fetch implements [RelayAdapter]. It GETs /fetch, passing the cursor as
// last_sync_time when it is set.
func (h *httpRelayAdapter) Fetch(ctx context.Context, cursor models.Timestamp) (models.FetchResponse, error) {
	ctx, cancel := withTimeout(ctx, h.payloadTimeout)
	defer cancel()

	var result models.FetchResponse
	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if !cursor.IsZero() {
		req.SetQueryParam(cursorParam, cursor.String())
	}

	resp, err := req.Get(fetchPath)
	if err != nil {
		return models.FetchResponse{}, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FetchResponse{}, err
	}
	if result.Status != models.StatusOK && result.Status != models.StatusNoUpdate {
		return models.FetchResponse{}, fmt.Errorf("%w: fetch status %q", ErrUnexpectedResponse, result.Status)
	}

	return result, nil
}

// Status implements [RelayAdapter]. It GETs /status.
func (h *httpRelayAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	ctx, cancel := withTimeout(ctx, h.requestTimeout)
	defer cancel()

	var result models.StatusResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(statusPath)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}
	if !result.Running {
		return models.StatusResponse{}, fmt.Errorf("%w: relay not running", ErrUnexpectedResponse)
	}

	return result, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
