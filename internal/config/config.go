// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

// Package config provides centralized configuration management for
// SecureNav, loaded via Koanf v2 from layered sources: built-in
// defaults, an optional YAML file, and environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig locates the CSV served by the API. The file is read once
// at startup; changing it requires a process restart.
type DatasetConfig struct {
	// Path is the CSV file path. Legacy env var: CRIME_CSV.
	Path string `koanf:"path"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// APIConfig bounds query parameters.
type APIConfig struct {
	// DefaultLimit is the page size used when limit is omitted.
	DefaultLimit int `koanf:"default_limit"`
	// MaxLimit caps the limit parameter to bound response size.
	MaxLimit int `koanf:"max_limit"`
	// DefaultBins is the heatmap grid resolution when bins is omitted.
	DefaultBins int `koanf:"default_bins"`
	// MaxBins caps the bins parameter.
	MaxBins int `koanf:"max_bins"`
}

// SecurityConfig holds CORS and rate limiting settings. CORS is
// permissive by default; narrow it for production deployments.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CacheConfig controls the TTL response cache for stats and heatmap.
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would break the
// server at runtime. Called automatically by Load.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.API.DefaultLimit < 1 || c.API.DefaultLimit > c.API.MaxLimit {
		return fmt.Errorf("api.default_limit must be between 1 and api.max_limit (%d), got %d",
			c.API.MaxLimit, c.API.DefaultLimit)
	}
	if c.API.MaxLimit < 1 {
		return fmt.Errorf("api.max_limit must be at least 1, got %d", c.API.MaxLimit)
	}
	if c.API.DefaultBins < 1 || c.API.DefaultBins > c.API.MaxBins {
		return fmt.Errorf("api.default_bins must be between 1 and api.max_bins (%d), got %d",
			c.API.MaxBins, c.API.DefaultBins)
	}
	if c.API.MaxBins < 1 {
		return fmt.Errorf("api.max_bins must be at least 1, got %d", c.API.MaxBins)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}
