package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-local-sync/internal/config"
	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/internal/utils"
	"github.com/MKhiriev/go-local-sync/models"
)

type httpTransport struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP/REST implementation of [Transport].
// It normalises and validates the base URL from adapterCfg.RemoteAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. Queued request targets are resolved relative to the base
// URL, so both absolute and path-only targets replay correctly.
//
// Returns an error if adapterCfg.RemoteAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPTransport(adapterCfg config.Adapter, logger *logger.Logger) (Transport, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.RemoteAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter remote address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpTransport{client: client, logger: logger}, nil
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

// Perform implements [Transport]. It executes the queued request with the
// stored method, headers and body. The method defaults to
// [models.DefaultMethod] when the queued request did not specify one.
// Network errors and non-2xx responses are both reported as
// [ErrTransportFailure] so the engine keeps the group queued.
func (h *httpTransport) Perform(ctx context.Context, target string, options models.RequestOptions) error {
	method := options.Method
	if method == "" {
		method = models.DefaultMethod
	}

	request := h.client.R().
		SetContext(ctx).
		SetHeaders(options.Headers)
	if len(options.Body) > 0 {
		request.
			SetHeader("Content-Type", "application/json").
			SetBody([]byte(options.Body))
	}

	resp, err := request.Execute(method, target)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpTransport.Perform").
			Str("method", method).
			Str("target", target).
			Msg("replay request did not reach the remote service")
		return fmt.Errorf("%w: %s %s: %v", ErrTransportFailure, method, target, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Error().
			Str("func", "httpTransport.Perform").
			Str("method", method).
			Str("target", target).
			Int("status", resp.StatusCode()).
			Msg("remote service rejected replayed request")
		return err
	}

	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrTransportFailure, resp.StatusCode(), body)
}
