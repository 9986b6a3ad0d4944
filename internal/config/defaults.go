package config

import "time"

// Reddit endpoints.
const (
	DefaultBaseURL   = "https://oauth.reddit.com"
	DefaultTokenURL  = "https://www.reddit.com/api/v1/access_token"
	DefaultUserAgent = "reddit-mcp-server/1.0 by reddit-mcp-server"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Reddit: RedditConfig{
			BaseURL:       DefaultBaseURL,
			TokenURL:      DefaultTokenURL,
			UserAgent:     DefaultUserAgent,
			Timeout:       Duration{30 * time.Second},
			MaxRetries:    3,
			MaxConcurrent: 5,
		},
		Server: ServerConfig{
			RateLimit:   60,
			MaxBodySize: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
