package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/olgasafonova/reddit-mcp-server/internal/config"
	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
	"github.com/olgasafonova/reddit-mcp-server/metrics"
)

// Grant names the OAuth2 flow a client authenticates with.
type Grant string

const (
	GrantStatic            Grant = "static"
	GrantPassword          Grant = "password"
	GrantClientCredentials Grant = "client_credentials"
)

// grantFor picks the flow from the configured credentials. A static token
// wins; a username and password select the script-app password grant;
// otherwise the client id and secret give an application-only token.
func grantFor(cfg config.RedditConfig) (Grant, error) {
	switch {
	case cfg.AccessToken != "":
		return GrantStatic, nil
	case cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.Username != "" && cfg.Password != "":
		return GrantPassword, nil
	case cfg.ClientID != "" && cfg.ClientSecret != "":
		return GrantClientCredentials, nil
	default:
		return "", &apperrors.AuthError{
			Message: "no Reddit credentials configured: set REDDIT_ACCESS_TOKEN, or REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET",
		}
	}
}

// newTokenSource builds a cached token source for cfg. Token requests go
// through base with the configured User-Agent, which Reddit requires.
func newTokenSource(cfg config.RedditConfig, base *http.Client) (oauth2.TokenSource, Grant, error) {
	grant, err := grantFor(cfg)
	if err != nil {
		return nil, "", err
	}

	if grant == GrantStatic {
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		}), grant, nil
	}

	tokenClient := &http.Client{
		Transport: &userAgentTransport{base: transportOf(base), userAgent: cfg.UserAgent},
	}
	if base != nil {
		tokenClient.Timeout = base.Timeout
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenClient)

	if grant == GrantPassword {
		oc := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}
		src := &passwordTokenSource{ctx: ctx, conf: oc, username: cfg.Username, password: cfg.Password}
		return oauth2.ReuseTokenSource(nil, src), grant, nil
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	return cc.TokenSource(ctx), grant, nil
}

// passwordTokenSource re-runs the password grant on every refresh. Script
// apps get no refresh token, so a new grant is the only way to renew.
type passwordTokenSource struct {
	ctx      context.Context
	conf     *oauth2.Config
	username string
	password string
}

func (s *passwordTokenSource) Token() (*oauth2.Token, error) {
	return s.conf.PasswordCredentialsToken(s.ctx, s.username, s.password)
}

// userAgentTransport stamps the User-Agent header on token requests.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

func transportOf(c *http.Client) http.RoundTripper {
	if c != nil && c.Transport != nil {
		return c.Transport
	}
	return http.DefaultTransport
}

// authError converts a token endpoint failure into an AuthError.
func authError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		metrics.AuthFailures.WithLabelValues("token_rejected").Inc()
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		msg := re.ErrorCode
		if re.ErrorDescription != "" {
			msg = strings.TrimSpace(msg + " " + re.ErrorDescription)
		}
		if msg == "" {
			msg = truncate(strings.TrimSpace(string(re.Body)), 200)
		}
		if msg == "" {
			msg = "token request rejected"
		}
		return &apperrors.AuthError{StatusCode: status, Message: msg}
	}
	metrics.AuthFailures.WithLabelValues("token_unavailable").Inc()
	return fmt.Errorf("failed to obtain Reddit access token: %w", err)
}
