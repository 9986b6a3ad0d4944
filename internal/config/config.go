// Package config loads server configuration with priority defaults -> TOML file -> environment.
package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Reddit  RedditConfig  `toml:"reddit"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

// RedditConfig contains Reddit API and OAuth settings.
type RedditConfig struct {
	BaseURL      string   `toml:"base_url"`
	TokenURL     string   `toml:"token_url"`
	UserAgent    string   `toml:"user_agent"`
	AccessToken  string   `toml:"access_token"`
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	Username     string   `toml:"username"`
	Password     string   `toml:"password"`
	Timeout      Duration `toml:"timeout"`
	MaxRetries   int      `toml:"max_retries"`

	// MaxConcurrent caps parallel upstream requests
	MaxConcurrent int `toml:"max_concurrent"`
}

// ServerConfig contains MCP transport settings. An empty HTTPAddr means stdio.
type ServerConfig struct {
	HTTPAddr    string `toml:"http_addr"`
	AuthToken   string `toml:"auth_token"`
	RateLimit   int    `toml:"rate_limit"` // requests per minute per client IP
	MaxBodySize int64  `toml:"max_body_size"`

	// TrustedProxies lists the proxy addresses or CIDR ranges whose
	// X-Forwarded-For header is believed. Empty means the header is ignored.
	TrustedProxies []string `toml:"trusted_proxies"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Duration is a time.Duration that reads as "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// HasCredentials reports whether any way of obtaining a Reddit token is configured.
func (r RedditConfig) HasCredentials() bool {
	return r.AccessToken != "" || (r.ClientID != "" && r.ClientSecret != "")
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies REDDIT_* and REDDIT_MCP_* environment variable overrides to config.
func applyEnvOverrides(config *Config) error {
	strs := map[string]*string{
		"REDDIT_BASE_URL":       &config.Reddit.BaseURL,
		"REDDIT_TOKEN_URL":      &config.Reddit.TokenURL,
		"REDDIT_USER_AGENT":     &config.Reddit.UserAgent,
		"REDDIT_ACCESS_TOKEN":   &config.Reddit.AccessToken,
		"REDDIT_CLIENT_ID":      &config.Reddit.ClientID,
		"REDDIT_CLIENT_SECRET":  &config.Reddit.ClientSecret,
		"REDDIT_USERNAME":       &config.Reddit.Username,
		"REDDIT_PASSWORD":       &config.Reddit.Password,
		"REDDIT_MCP_HTTP_ADDR":  &config.Server.HTTPAddr,
		"REDDIT_MCP_AUTH_TOKEN": &config.Server.AuthToken,
		"REDDIT_MCP_LOG_LEVEL":  &config.Logging.Level,
		"REDDIT_MCP_LOG_FORMAT": &config.Logging.Format,
	}
	for key, dst := range strs {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("REDDIT_TIMEOUT"); v != "" {
		if err := config.Reddit.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("REDDIT_TIMEOUT: %w", err)
		}
	}
	ints := map[string]*int{
		"REDDIT_MAX_RETRIES":    &config.Reddit.MaxRetries,
		"REDDIT_MAX_CONCURRENT": &config.Reddit.MaxConcurrent,
		"REDDIT_MCP_RATE_LIMIT": &config.Server.RateLimit,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: invalid integer %q", key, v)
			}
			*dst = n
		}
	}
	if v := os.Getenv("REDDIT_MCP_MAX_BODY_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("REDDIT_MCP_MAX_BODY_SIZE: invalid integer %q", v)
		}
		config.Server.MaxBodySize = n
	}
	if v := strings.TrimSpace(os.Getenv("REDDIT_MCP_TRUSTED_PROXIES")); v != "" {
		config.Server.TrustedProxies = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				config.Server.TrustedProxies = append(config.Server.TrustedProxies, p)
			}
		}
	}
	return nil
}

// ParsePrefixes parses addresses and CIDR ranges. A bare address becomes a
// single-host prefix.
func ParsePrefixes(values []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy range %q: %w", v, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy address %q: %w", v, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, httpAddr string) {
	if httpAddr != "" {
		config.Server.HTTPAddr = httpAddr
	}
}

// Validate reports configuration that cannot work at all.
func (c *Config) Validate() error {
	if c.Reddit.BaseURL == "" {
		return fmt.Errorf("reddit.base_url must not be empty")
	}
	if c.Reddit.UserAgent == "" {
		return fmt.Errorf("reddit.user_agent must not be empty")
	}
	if !c.Reddit.HasCredentials() {
		return fmt.Errorf("no Reddit credentials configured: set reddit.access_token, or reddit.client_id and reddit.client_secret")
	}
	if c.Reddit.MaxRetries < 0 {
		return fmt.Errorf("reddit.max_retries cannot be negative")
	}
	if c.Reddit.MaxConcurrent < 0 {
		return fmt.Errorf("reddit.max_concurrent cannot be negative")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit cannot be negative")
	}
	if c.Server.MaxBodySize < 0 {
		return fmt.Errorf("server.max_body_size cannot be negative")
	}
	if _, err := ParsePrefixes(c.Server.TrustedProxies); err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}
