// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/restclient"
	"github.com/Chakshu1409/fnp-integrations/internal/signer"
	"github.com/Chakshu1409/fnp-integrations/models"
)

// Lalamove API paths.
const (
	LalamoveQuotationsPath = "/v3/quotations"
	LalamoveOrdersPath     = "/v3/orders"
)

// LalamoveProviderName is recorded in ledger entries.
const LalamoveProviderName = "lalamove"

// HeaderMarket carries the Lalamove market code, e.g. "HK".
const HeaderMarket = "market"

type lalamoveAdapter struct {
	dispatcher *restclient.Dispatcher
	baseURL    string
	appKey     string
	appSecret  string
	market     string
	now        func() time.Time
	opts       restclient.Options

	logger *logger.Logger
}

// LalamoveOption customises the adapter.
type LalamoveOption func(*lalamoveAdapter)

// WithClock replaces time.Now as the source of signature timestamps.
func WithClock(now func() time.Time) LalamoveOption {
	return func(a *lalamoveAdapter) {
		a.now = now
	}
}

// WithOptions replaces the dispatch options, [restclient.DefaultOptions] by
// default.
func WithOptions(opts restclient.Options) LalamoveOption {
	return func(a *lalamoveAdapter) {
		a.opts = opts
	}
}

// NewLalamoveAdapter constructs the Lalamove implementation of
// [DeliveryProvider]. Requests go to cfg.BaseURL, or "https://{Hostname}"
// when BaseURL is empty.
//
// Returns an error if no usable base URL can be derived or the credentials
// are missing.
func NewLalamoveAdapter(dispatcher *restclient.Dispatcher, cfg config.Lalamove, log *logger.Logger, opts ...LalamoveOption) (DeliveryProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" && cfg.Hostname != "" {
		baseURL = "https://" + cfg.Hostname
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid lalamove base url %q", baseURL)
	}
	if cfg.AppKey == "" || cfg.AppSecret == "" {
		return nil, fmt.Errorf("lalamove credentials: %w", signer.ErrEmptySecret)
	}
	if log == nil {
		log = logger.Nop()
	}

	a := &lalamoveAdapter{
		dispatcher: dispatcher,
		baseURL:    u.String(),
		appKey:     cfg.AppKey,
		appSecret:  cfg.AppSecret,
		market:     cfg.Market,
		now:        time.Now,
		opts:       restclient.DefaultOptions(),
		logger:     log,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

func (a *lalamoveAdapter) Name() string {
	return LalamoveProviderName
}

// GetQuotation implements [DeliveryProvider]. It POSTs req to /v3/quotations.
// A 2xx answer with an empty or null body yields (nil, nil).
func (a *lalamoveAdapter) GetQuotation(ctx context.Context, req models.DeliveryRequestWrapper) (*models.QuotationResponse, error) {
	resp, err := restclient.Execute[models.QuotationResponse](ctx, a.dispatcher,
		a.request("lalamove.GetQuotation", LalamoveQuotationsPath, req), a.opts)
	if err != nil {
		return nil, fmt.Errorf("lalamove quotation: %w", err)
	}
	return resp, nil
}

// PlaceOrder implements [DeliveryProvider]. It POSTs req to /v3/orders.
func (a *lalamoveAdapter) PlaceOrder(ctx context.Context, req models.OrderRequestWrapper) (*models.OrderResponse, error) {
	resp, err := restclient.Execute[models.OrderResponse](ctx, a.dispatcher,
		a.request("lalamove.PlaceOrder", LalamoveOrdersPath, req), a.opts)
	if err != nil {
		return nil, fmt.Errorf("lalamove order: %w", err)
	}
	return resp, nil
}

func (a *lalamoveAdapter) request(operation, path string, body any) restclient.Request {
	return restclient.Request{
		Operation: operation,
		Method:    http.MethodPost,
		URL:       a.baseURL + path,
		Headers: restclient.NewHeaderBuilder().
			Set(restclient.HeaderContentType, restclient.MediaTypeJSON).
			SetVerbatim(HeaderMarket, a.market).
			Build(),
		Body:      body,
		Authorize: a.authorize(path),
	}
}

// authorize signs the exact bytes the dispatcher transmits, with a fresh
// timestamp on every attempt.
func (a *lalamoveAdapter) authorize(path string) restclient.AuthorizeFunc {
	return func(method, _ string, body []byte) (restclient.Headers, error) {
		in := signer.NewInput(a.now(), method, path, body)

		authorization, err := signer.Authorization(a.appKey, a.appSecret, in)
		if err != nil {
			return restclient.Headers{}, err
		}

		return restclient.NewHeaderBuilder().
			Set(restclient.HeaderAuthorization, authorization).
			Build(), nil
	}
}
