// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied after all sources are merged.
const (
	DefaultAppName             = "fnp-integrations"
	DefaultConnectTimeout      = 5 * time.Second
	DefaultRequestTimeout      = 30 * time.Second
	DefaultMaxIdleConns        = 100
	DefaultMaxIdleConnsPerHost = 10
	DefaultIdleConnTimeout     = 90 * time.Second
	DefaultUserAgent           = "FNP-Integrations/1.0"
	DefaultTokenDuration       = 24 * time.Hour
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Name == "" {
		cfg.App.Name = DefaultAppName
	}

	d := &cfg.Dispatcher
	if d.ConnectTimeout == 0 {
		d.ConnectTimeout = DefaultConnectTimeout
	}
	if d.RequestTimeout == 0 {
		d.RequestTimeout = DefaultRequestTimeout
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = DefaultMaxIdleConns
	}
	if d.MaxIdleConnsPerHost == 0 {
		d.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	}
	if d.IdleConnTimeout == 0 {
		d.IdleConnTimeout = DefaultIdleConnTimeout
	}

	if cfg.Lalamove.BaseURL == "" && cfg.Lalamove.Hostname != "" {
		cfg.Lalamove.BaseURL = "https://" + cfg.Lalamove.Hostname
	}
	cfg.Lalamove.BaseURL = strings.TrimRight(cfg.Lalamove.BaseURL, "/")

	if cfg.ExternalAPI.UserAgent == "" {
		cfg.ExternalAPI.UserAgent = DefaultUserAgent
	}

	if cfg.Security.TokenDuration == 0 {
		cfg.Security.TokenDuration = DefaultTokenDuration
	}
}

// validate checks that the merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Token issuing only needs the security group.
func (cfg *StructuredConfig) validate() error {
	if cfg.Security.IssueTokenFor != "" {
		if cfg.Security.TokenSignKey == "" || cfg.Security.TokenIssuer == "" {
			return ErrInvalidSecurityConfigs
		}
		return nil
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	l := cfg.Lalamove
	if (l.Hostname == "" && l.BaseURL == "") || l.AppKey == "" || l.AppSecret == "" || l.Market == "" {
		return ErrInvalidLalamoveConfigs
	}

	if cfg.Security.Enabled && (cfg.Security.TokenSignKey == "" || cfg.Security.TokenIssuer == "") {
		return ErrInvalidSecurityConfigs
	}

	d := cfg.Dispatcher
	if d.ConnectTimeout < 0 || d.RequestTimeout < 0 || d.IdleConnTimeout < 0 ||
		d.MaxIdleConns < 0 || d.MaxIdleConnsPerHost < 0 {
		return fmt.Errorf("%w: negative value", ErrInvalidDispatcherConfigs)
	}

	return nil
}
