// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the merged [ClientConfig] is usable at startup.
func (cfg *ClientConfig) validate() error {
	if !isHTTPURL(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address %q, timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout)
	}

	if !isHTTPURL(cfg.Catalog.HTTPAddress) || cfg.Catalog.RequestTimeout <= 0 ||
		cfg.Catalog.RequestsPerSecond <= 0 || cfg.Catalog.Burst < 1 {
		return ErrInvalidCatalogConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
