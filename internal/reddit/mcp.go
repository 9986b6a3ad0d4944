package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
)

// MCP tool wrapper methods for the curated tools. Each one validates its
// arguments, calls the catalog endpoint of the same name and reshapes the
// response.

// GetSubredditPostsMCP lists the top posts of a subreddit for a timeframe
func (c *Client) GetSubredditPostsMCP(ctx context.Context, args GetSubredditPostsArgs) (GetSubredditPostsResult, error) {
	subreddit := NormalizeSubreddit(args.Subreddit)
	if err := ValidateSubreddit(subreddit); err != nil {
		return GetSubredditPostsResult{}, err
	}
	limit := args.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if err := ValidateLimit(limit); err != nil {
		return GetSubredditPostsResult{}, err
	}
	timeframe := args.Timeframe
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	if err := ValidateTimeframe(timeframe); err != nil {
		return GetSubredditPostsResult{}, err
	}

	c.Logger.Debug("Requesting top posts", "subreddit", subreddit, "limit", limit, "timeframe", timeframe)
	listing, err := c.listing(ctx, "get_subreddit_posts", map[string]any{
		"subreddit": subreddit,
		"limit":     limit,
		"t":         timeframe,
	})
	if err != nil {
		return GetSubredditPostsResult{}, err
	}

	posts := make([]PostSummary, 0, len(listing.Children))
	for _, child := range listing.Children {
		var p Post
		if err := json.Unmarshal(child.Data, &p); err != nil {
			return GetSubredditPostsResult{}, fmt.Errorf("failed to parse post: %w", err)
		}
		posts = append(posts, summarizePost(p))
	}

	return GetSubredditPostsResult{
		Subreddit: subreddit,
		Timeframe: timeframe,
		Count:     len(posts),
		Posts:     posts,
		Formatted: formatTopPosts(subreddit, timeframe, posts),
	}, nil
}

func summarizePost(p Post) PostSummary {
	s := PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Author:      p.Author,
		Score:       p.Score,
		NumComments: p.NumComments,
		Link:        postLink(p.Permalink),
	}
	if s.Title == "" {
		s.Title = "No Title"
	}
	if s.Author == "" {
		s.Author = "Unknown Author"
	}
	return s
}

// SearchSubredditsMCP searches subreddits by name and description
func (c *Client) SearchSubredditsMCP(ctx context.Context, args SearchSubredditsArgs) (SearchSubredditsResult, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return SearchSubredditsResult{}, apperrors.NewValidationError("query", "", "search query is required")
	}
	limit := args.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if err := ValidateLimit(limit); err != nil {
		return SearchSubredditsResult{}, err
	}
	sort := args.Sort
	if sort == "" {
		sort = DefaultSort
	}
	if err := ValidateSearchSort(sort); err != nil {
		return SearchSubredditsResult{}, err
	}

	listing, err := c.listing(ctx, "search_subreddits", map[string]any{
		"q":     query,
		"limit": limit,
		"sort":  sort,
	})
	if err != nil {
		return SearchSubredditsResult{}, err
	}

	subs := make([]SubredditSummary, 0, len(listing.Children))
	for _, child := range listing.Children {
		var sr Subreddit
		if err := json.Unmarshal(child.Data, &sr); err != nil {
			return SearchSubredditsResult{}, fmt.Errorf("failed to parse subreddit: %w", err)
		}
		summary := SubredditSummary{
			Name:        sr.DisplayName,
			Title:       sr.Title,
			Subscribers: sr.Subscribers,
			Description: strings.TrimSpace(sr.PublicDescription),
		}
		if summary.Name == "" {
			summary.Name = "N/A"
		}
		if summary.Title == "" {
			summary.Title = "No Title"
		}
		if summary.Description == "" {
			summary.Description = summary.Title
		}
		subs = append(subs, summary)
	}

	return SearchSubredditsResult{
		Query:      query,
		Sort:       sort,
		Count:      len(subs),
		Subreddits: subs,
		Formatted:  formatSubreddits(query, sort, subs),
	}, nil
}

// GetPostFlairsMCP lists the link flairs a subreddit offers
func (c *Client) GetPostFlairsMCP(ctx context.Context, args GetPostFlairsArgs) (GetPostFlairsResult, error) {
	subreddit := NormalizeSubreddit(args.Subreddit)
	if err := ValidateSubreddit(subreddit); err != nil {
		return GetPostFlairsResult{}, err
	}

	body, err := c.Call(ctx, catalog.MustLookup("get_post_flairs"), map[string]any{"subreddit": subreddit})
	if err != nil {
		return GetPostFlairsResult{}, err
	}

	flairs := []Flair{}
	if !isEmptyJSON(body) {
		if err := json.Unmarshal(body, &flairs); err != nil {
			if apiErr := redditError(body); apiErr != nil {
				return GetPostFlairsResult{}, apiErr
			}
			return GetPostFlairsResult{}, fmt.Errorf("failed to parse flairs: %w", err)
		}
	}

	result := GetPostFlairsResult{Subreddit: subreddit, Flairs: flairs}
	if len(flairs) == 0 {
		result.Message = fmt.Sprintf("No post flairs available for r/%s.", subreddit)
	}
	return result, nil
}

// CreatePostMCP submits a text or link post
func (c *Client) CreatePostMCP(ctx context.Context, args CreatePostArgs) (CreatePostResult, error) {
	subreddit := NormalizeSubreddit(args.Subreddit)
	if err := ValidateSubreddit(subreddit); err != nil {
		return CreatePostResult{}, err
	}
	if args.Kind == "" {
		args.Kind = "self"
	}
	if err := ValidatePost(args); err != nil {
		return CreatePostResult{}, err
	}

	params := map[string]any{
		"sr":       subreddit,
		"title":    args.Title,
		"kind":     args.Kind,
		"api_type": "json",
	}
	if args.Text != "" {
		params["text"] = args.Text
	}
	if args.URL != "" {
		params["url"] = args.URL
	}
	if args.FlairID != "" {
		params["flair_id"] = args.FlairID
	}

	c.Logger.Info("Submitting a new post", "subreddit", subreddit, "kind", args.Kind)
	body, err := c.Call(ctx, catalog.MustLookup("create_post"), params)
	if err != nil {
		return CreatePostResult{}, err
	}

	var resp SubmitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return CreatePostResult{}, fmt.Errorf("failed to parse submit response: %w", err)
	}
	if len(resp.JSON.Errors) > 0 {
		return CreatePostResult{}, &apperrors.APIError{StatusCode: 200, Message: joinErrors(resp.JSON.Errors)}
	}

	return CreatePostResult{
		ID:       resp.JSON.Data.ID,
		Name:     resp.JSON.Data.Name,
		URL:      resp.JSON.Data.URL,
		Response: decodeAny(body),
	}, nil
}

// GetCommentByIDMCP fetches a single comment by fullname
func (c *Client) GetCommentByIDMCP(ctx context.Context, args GetCommentByIDArgs) (GetCommentByIDResult, error) {
	id := NormalizeFullname(args.CommentID, "t1_")
	if err := ValidateFullname("comment_id", id, "t1_"); err != nil {
		return GetCommentByIDResult{}, err
	}

	listing, err := c.listing(ctx, "get_comment_by_id", map[string]any{"id": id})
	if err != nil {
		return GetCommentByIDResult{}, err
	}
	if len(listing.Children) == 0 {
		return GetCommentByIDResult{}, apperrors.NewNotFoundError("comment", id)
	}

	comment := map[string]any{}
	if err := json.Unmarshal(listing.Children[0].Data, &comment); err != nil || comment == nil {
		return GetCommentByIDResult{}, fmt.Errorf("failed to parse comment %s: %v", id, err)
	}
	return GetCommentByIDResult{Comment: comment}, nil
}

// PostCommentMCP replies to a post or comment
func (c *Client) PostCommentMCP(ctx context.Context, args PostCommentArgs) (APIResponse, error) {
	parent := strings.TrimSpace(args.ParentID)
	if err := ValidateFullname("parent_id", parent, "t1_", "t3_"); err != nil {
		return APIResponse{}, err
	}
	if strings.TrimSpace(args.Text) == "" {
		return APIResponse{}, apperrors.NewValidationError("text", "", "comment text is required")
	}

	c.Logger.Info("Posting comment", "parent", parent)
	body, err := c.Call(ctx, catalog.MustLookup("post_comment"), map[string]any{
		"parent": parent,
		"text":   args.Text,
	})
	if err != nil {
		return APIResponse{}, err
	}
	return APIResponse{Response: decodeAny(body)}, nil
}

// EditContentMCP replaces the text of a post or comment
func (c *Client) EditContentMCP(ctx context.Context, args EditContentArgs) (APIResponse, error) {
	id := strings.TrimSpace(args.ContentID)
	if err := ValidateFullname("content_id", id, "t1_", "t3_"); err != nil {
		return APIResponse{}, err
	}
	if strings.TrimSpace(args.Text) == "" {
		return APIResponse{}, apperrors.NewValidationError("text", "", "text is required")
	}

	c.Logger.Info("Editing content", "content_id", id)
	body, err := c.Call(ctx, catalog.MustLookup("edit_content"), map[string]any{
		"thing_id": id,
		"text":     args.Text,
	})
	if err != nil {
		return APIResponse{}, err
	}
	return APIResponse{Response: decodeAny(body)}, nil
}

// DeleteContentMCP deletes a post or comment
func (c *Client) DeleteContentMCP(ctx context.Context, args DeleteContentArgs) (DeleteContentResult, error) {
	id := strings.TrimSpace(args.ContentID)
	if err := ValidateFullname("content_id", id, "t1_", "t3_"); err != nil {
		return DeleteContentResult{}, err
	}

	c.Logger.Info("Deleting content", "content_id", id)
	if _, err := c.Call(ctx, catalog.MustLookup("delete_content"), map[string]any{"id": id}); err != nil {
		return DeleteContentResult{}, err
	}
	return DeleteContentResult{Message: fmt.Sprintf("Content %s deleted successfully.", id)}, nil
}

// listing calls a listing endpoint and decodes its Listing, turning
// {"error": ...} bodies into APIErrors.
func (c *Client) listing(ctx context.Context, tool string, args map[string]any) (*Listing, error) {
	body, err := c.Call(ctx, catalog.MustLookup(tool), args)
	if err != nil {
		return nil, err
	}
	if apiErr := redditError(body); apiErr != nil {
		return nil, apiErr
	}

	var resp listingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}
	return &resp.Data, nil
}

// redditError reports an {"error": ...} object delivered with a 2xx status.
func redditError(body []byte) *apperrors.APIError {
	var eb errorBody
	if json.Unmarshal(body, &eb) != nil || len(eb.Error) == 0 || string(eb.Error) == "null" {
		return nil
	}
	apiErr := &apperrors.APIError{Code: errorCodeField(eb.Error, 0), Message: eb.Message}
	if apiErr.Code == "" && apiErr.Message == "" {
		apiErr.Message = string(eb.Error)
	}
	return apiErr
}

func isEmptyJSON(body []byte) bool {
	s := strings.TrimSpace(string(body))
	return s == "" || s == "{}" || s == "[]" || s == "null"
}

// decodeAny decodes a JSON body into a generic value for structured output.
func decodeAny(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
