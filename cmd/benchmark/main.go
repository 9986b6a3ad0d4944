package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
	"github.com/olgasafonova/reddit-mcp-server/internal/config"
	"github.com/olgasafonova/reddit-mcp-server/internal/reddit"
)

// measureResolve times request building for every catalogued read-only tool.
// It runs offline and shows the per-call overhead the server adds.
func measureResolve() {
	fmt.Println("=== Request Resolution (offline) ===")
	fmt.Println()

	var readOnly []*catalog.Descriptor
	for _, d := range catalog.All() {
		if d.ReadOnly() && len(d.PathParams()) == 0 {
			readOnly = append(readOnly, catalog.MustLookup(d.Name))
		}
	}

	const rounds = 1000
	start := time.Now()
	for i := 0; i < rounds; i++ {
		for _, d := range readOnly {
			_, _ = catalog.Resolve(d, map[string]any{})
		}
	}
	elapsed := time.Since(start)
	calls := rounds * len(readOnly)
	fmt.Printf("1. Resolved %d requests across %d tools in %v\n", calls, len(readOnly), elapsed)
	fmt.Printf("   Average per request: %v\n", elapsed/time.Duration(calls))
	fmt.Println()
}

// measureCuratedLatency times the curated read tools against the live API.
func measureCuratedLatency(ctx context.Context, client *reddit.Client, subreddit string) {
	fmt.Println("=== Curated Tool Latency ===")
	fmt.Println()

	start := time.Now()
	posts, err := client.GetSubredditPostsMCP(ctx, reddit.GetSubredditPostsArgs{Subreddit: subreddit, Limit: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("2. get_subreddit_posts r/%s: %d posts in %v\n", subreddit, posts.Count, time.Since(start))

	start = time.Now()
	found, err := client.SearchSubredditsMCP(ctx, reddit.SearchSubredditsArgs{Query: subreddit, Limit: 10})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("3. search_subreddits %q: %d results in %v\n", subreddit, found.Count, time.Since(start))
	fmt.Println()
}

// measureConcurrency compares sequential and concurrent passthrough calls.
func measureConcurrency(ctx context.Context, client *reddit.Client, subreddit string) {
	fmt.Println("=== Sequential vs Concurrent Passthrough ===")
	fmt.Println()

	toolNames := []string{"r_subreddit_hot", "r_subreddit_new", "r_subreddit_rising", "r_subreddit_controversial"}
	args := map[string]any{"subreddit": subreddit, "limit": 5}

	start := time.Now()
	for _, name := range toolNames {
		if _, err := client.CallTool(ctx, name, args); err != nil {
			fmt.Printf("   %s error: %v\n", name, err)
		}
	}
	sequential := time.Since(start)
	fmt.Printf("4. Sequential time for %d tools: %v\n", len(toolNames), sequential)

	start = time.Now()
	var wg sync.WaitGroup
	for _, name := range toolNames {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if _, err := client.CallTool(ctx, name, args); err != nil {
				fmt.Printf("   %s error: %v\n", name, err)
			}
		}(name)
	}
	wg.Wait()
	concurrent := time.Since(start)
	fmt.Printf("5. Concurrent time for %d tools: %v\n", len(toolNames), concurrent)
	if concurrent > 0 {
		fmt.Printf("   Speedup: %.1fx\n", float64(sequential)/float64(concurrent))
	}
	fmt.Println()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	subreddit := flag.String("subreddit", "golang", "subreddit to query")
	offline := flag.Bool("offline", false, "skip measurements that call Reddit")
	flag.Parse()

	fmt.Println("Reddit MCP Server - Performance Measurements")
	fmt.Println("============================================")
	fmt.Println()

	measureResolve()
	if *offline {
		return
	}

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client, err := reddit.NewClient(cfg.Reddit, reddit.WithLogger(logger))
	if err != nil {
		fmt.Printf("Client error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	measureCuratedLatency(ctx, client, *subreddit)
	measureConcurrency(ctx, client, *subreddit)
}
