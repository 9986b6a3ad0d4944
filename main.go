// Reddit MCP Server - A Model Context Protocol server for the Reddit API
// Exposes every catalogued Reddit REST endpoint as an MCP tool, plus curated
// tools for browsing subreddits and managing posts and comments.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/reddit-mcp-server/internal/config"
	"github.com/olgasafonova/reddit-mcp-server/internal/reddit"
	"github.com/olgasafonova/reddit-mcp-server/tools"
	"github.com/olgasafonova/reddit-mcp-server/tracing"
)

const (
	ServerName    = "reddit-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Reddit MCP Server provides tools for the Reddit API.

Curated tools:
- get_subreddit_posts: Top posts of a subreddit for a timeframe
- search_subreddits: Find subreddits by topic
- get_post_flairs: Flairs available for new posts
- get_comment_by_id: Fetch one comment
- create_post, post_comment, edit_content, delete_content: Write tools (need user credentials)

Every other tool maps 1:1 to a Reddit REST endpoint; its description names the endpoint.

Configure via a TOML file (-config) or environment variables:
- REDDIT_ACCESS_TOKEN: A ready OAuth bearer token
- REDDIT_CLIENT_ID / REDDIT_CLIENT_SECRET: App credentials
- REDDIT_USERNAME / REDDIT_PASSWORD: Script-app user for write access
- REDDIT_USER_AGENT: User-Agent sent to Reddit`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", ServerName, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet(ServerName, flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	httpAddr := fs.String("http", "", "serve streamable HTTP on this address instead of stdio")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Printf("%s %s\n", ServerName, ServerVersion)
		return nil
	}

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	config.ApplyFlagOverrides(cfg, *httpAddr)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Logs go to stderr; stdout carries the MCP stdio protocol
	logger := newLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	traceCfg := tracing.DefaultConfig()
	traceCfg.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, traceCfg)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	client, err := reddit.NewClient(cfg.Reddit, reddit.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create Reddit client: %w", err)
	}

	server := newServer(client, logger)

	logger.Info("Starting Reddit MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", cfg.Reddit.BaseURL,
		"grant", client.Grant(),
	)

	if cfg.Server.HTTPAddr == "" {
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
	return serveHTTP(ctx, server, client, cfg.Server, logger)
}

// newServer creates the MCP server with every tool registered.
func newServer(client *reddit.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})
	tools.NewHandlerRegistry(client, logger).RegisterAll(server)
	return server
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newHTTPHandler mounts the MCP endpoint behind the security middleware,
// next to the health and metrics endpoints.
func newHTTPHandler(server *mcp.Server, client *reddit.Client, cfg config.ServerConfig, logger *slog.Logger) (http.Handler, func()) {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	proxies, err := config.ParsePrefixes(cfg.TrustedProxies)
	if err != nil {
		logger.Warn("Ignoring trusted proxies", "error", err)
		proxies = nil
	}
	secured := NewSecurityMiddleware(mcpHandler, logger, SecurityConfig{
		RateLimit:      cfg.RateLimit,
		MaxBodySize:    cfg.MaxBodySize,
		AuthToken:      cfg.AuthToken,
		TrustedProxies: proxies,
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", secured)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"version": ServerVersion,
			"circuit": client.CircuitBreakerStats(),
			"dedup":   client.DedupStats(),
		})
	})
	return mux, secured.Close
}

func serveHTTP(ctx context.Context, server *mcp.Server, client *reddit.Client, cfg config.ServerConfig, logger *slog.Logger) error {
	handler, closeHandler := newHTTPHandler(server, client, cfg, logger)
	defer closeHandler()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening for streamable HTTP", "addr", cfg.HTTPAddr, "auth", cfg.AuthToken != "")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received termination signal, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server shutdown complete")
	return nil
}
