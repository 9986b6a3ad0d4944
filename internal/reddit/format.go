package reddit

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const redditWebURL = "https://www.reddit.com"

var numberPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators (1234567 -> "1,234,567").
func formatCount(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// postLink turns a permalink into a full URL.
func postLink(permalink string) string {
	if permalink == "" {
		return "No Link"
	}
	return redditWebURL + permalink
}

// formatTopPosts renders the numbered list returned by get_subreddit_posts.
func formatTopPosts(subreddit, timeframe string, posts []PostSummary) string {
	if len(posts) == 0 {
		return fmt.Sprintf("No top posts found in r/%s for the timeframe '%s'.", subreddit, timeframe)
	}

	lines := make([]string, 0, 1+2*len(posts))
	lines = append(lines, fmt.Sprintf("Top %d posts from r/%s (timeframe: %s):\n", len(posts), subreddit, timeframe))
	for i, p := range posts {
		lines = append(lines,
			fmt.Sprintf(`%d. "%s" by u/%s (Score: %d)`, i+1, p.Title, p.Author, p.Score),
			"   Link: "+p.Link,
		)
	}
	return strings.Join(lines, "\n")
}

// formatSubreddits renders the numbered list returned by search_subreddits.
func formatSubreddits(query, sort string, subs []SubredditSummary) string {
	if len(subs) == 0 {
		return fmt.Sprintf("No subreddits found matching the query '%s'.", query)
	}

	lines := make([]string, 0, 1+2*len(subs))
	lines = append(lines, fmt.Sprintf("Found %d subreddits matching '%s' (sorted by %s):\n", len(subs), query, sort))
	for i, s := range subs {
		subscribers := "Unknown"
		if s.Subscribers > 0 {
			subscribers = formatCount(s.Subscribers)
		}
		lines = append(lines, fmt.Sprintf("%d. r/%s (%s subscribers)", i+1, s.Name, subscribers))
		if s.Description != "" {
			lines = append(lines, "   Description: "+s.Description)
		}
	}
	return strings.Join(lines, "\n")
}
