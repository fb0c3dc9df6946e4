package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/restclient"
)

const HeaderAPIKey = "X-API-Key"

type externalAPIService struct {
	dispatcher *restclient.Dispatcher
	baseURL    string
	headers    restclient.Headers

	logger *logger.Logger
}

// NewExternalAPIService returns an [ExternalAPIService] sending requests to
// cfg.BaseURL with the User-Agent and X-API-Key default headers.
func NewExternalAPIService(dispatcher *restclient.Dispatcher, cfg config.ExternalAPI, logger *logger.Logger) ExternalAPIService {
	b := restclient.NewHeaderBuilder().
		Set(restclient.HeaderContentType, restclient.MediaTypeJSON).
		Set(restclient.HeaderAccept, restclient.MediaTypeJSON)
	if cfg.UserAgent != "" {
		b.Set("User-Agent", cfg.UserAgent)
	}
	if cfg.APIKey != "" {
		b.Set(HeaderAPIKey, cfg.APIKey)
	}

	return &externalAPIService{
		dispatcher: dispatcher,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    b.Build(),
		logger:     logger,
	}
}

func (s *externalAPIService) BaseURL() string {
	return s.baseURL
}

func (s *externalAPIService) Get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	out, err := s.call(ctx, http.MethodGet, endpoint, nil, restclient.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to get external data: %w", err)
	}
	return out, nil
}

func (s *externalAPIService) Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	out, err := s.call(ctx, http.MethodPost, endpoint, body, restclient.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to post external data: %w", err)
	}
	return out, nil
}

func (s *externalAPIService) Put(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	out, err := s.call(ctx, http.MethodPut, endpoint, body, restclient.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to update external data: %w", err)
	}
	return out, nil
}

func (s *externalAPIService) Delete(ctx context.Context, endpoint string) (json.RawMessage, error) {
	out, err := s.call(ctx, http.MethodDelete, endpoint, nil, restclient.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to delete external data: %w", err)
	}
	return out, nil
}

// GetSafe is Get with failFast disabled: classified upstream failures yield
// (nil, nil). Encoding and decoding failures are still returned.
func (s *externalAPIService) GetSafe(ctx context.Context, endpoint string) (json.RawMessage, error) {
	opts := restclient.DefaultOptions()
	opts.FailFast = false

	out, err := s.call(ctx, http.MethodGet, endpoint, nil, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get external data: %w", err)
	}
	return out, nil
}

func (s *externalAPIService) call(ctx context.Context, method, endpoint string, body any, opts restclient.Options) (json.RawMessage, error) {
	if s.baseURL == "" {
		return nil, ErrExternalAPINotConfigured
	}

	req := restclient.Request{
		Operation: "external-api " + strings.ToLower(method),
		Method:    method,
		URL:       s.url(endpoint),
		Headers:   s.headers,
		Body:      body,
	}

	out, err := restclient.Execute[json.RawMessage](ctx, s.dispatcher, req, opts)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return *out, nil
}

func (s *externalAPIService) url(endpoint string) string {
	if endpoint == "" {
		return s.baseURL
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return s.baseURL + endpoint
}
