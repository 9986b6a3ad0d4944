package reddit

// GetSubredditPostsArgs contains parameters for listing a subreddit's top posts
type GetSubredditPostsArgs struct {
	Subreddit string `json:"subreddit" jsonschema:"The name of the subreddit (e.g. 'python', 'worldnews') without the 'r/' prefix"`
	Limit     int    `json:"limit,omitempty" jsonschema:"The maximum number of posts to return (default: 5, max: 100)"`
	Timeframe string `json:"timeframe,omitempty" jsonschema:"The time period for top posts: hour, day, week, month, year or all (default: day)"`
}

// GetSubredditPostsResult is the result of listing top posts
type GetSubredditPostsResult struct {
	Subreddit string        `json:"subreddit"`
	Timeframe string        `json:"timeframe"`
	Count     int           `json:"count"`
	Posts     []PostSummary `json:"posts"`
	Formatted string        `json:"formatted"`
}

// PostSummary is a compact post representation
type PostSummary struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	Link        string `json:"link"`
}

// SearchSubredditsArgs contains parameters for subreddit search
type SearchSubredditsArgs struct {
	Query string `json:"query" jsonschema:"The text to search for in subreddit names and descriptions"`
	Limit int    `json:"limit,omitempty" jsonschema:"The maximum number of subreddits to return, between 1 and 100 (default: 5)"`
	Sort  string `json:"sort,omitempty" jsonschema:"The order of results: relevance or activity (default: relevance)"`
}

// SearchSubredditsResult is the result of a subreddit search
type SearchSubredditsResult struct {
	Query      string             `json:"query"`
	Sort       string             `json:"sort"`
	Count      int                `json:"count"`
	Subreddits []SubredditSummary `json:"subreddits"`
	Formatted  string             `json:"formatted"`
}

// SubredditSummary is a compact subreddit representation
type SubredditSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Subscribers int    `json:"subscribers"`
	Description string `json:"description,omitempty"`
}

// GetPostFlairsArgs contains parameters for listing post flairs
type GetPostFlairsArgs struct {
	Subreddit string `json:"subreddit" jsonschema:"The name of the subreddit without the 'r/' prefix"`
}

// GetPostFlairsResult lists the flairs, or carries a message when there are none
type GetPostFlairsResult struct {
	Subreddit string  `json:"subreddit"`
	Flairs    []Flair `json:"flairs"`
	Message   string  `json:"message,omitempty"`
}

// CreatePostArgs contains parameters for submitting a post
type CreatePostArgs struct {
	Subreddit string `json:"subreddit" jsonschema:"The name of the subreddit without the 'r/' prefix"`
	Title     string `json:"title" jsonschema:"The title of the post"`
	Kind      string `json:"kind,omitempty" jsonschema:"The type of post: self (text post) or link (link or image post). Default: self"`
	Text      string `json:"text,omitempty" jsonschema:"The text content of the post; required if kind is self"`
	URL       string `json:"url,omitempty" jsonschema:"The URL of the link or image; required if kind is link"`
	FlairID   string `json:"flair_id,omitempty" jsonschema:"The ID of the flair to assign to the post"`
}

// CreatePostResult is the result of a successful submission
type CreatePostResult struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	URL      string `json:"url,omitempty"`
	Response any    `json:"response"`
}

// GetCommentByIDArgs contains parameters for fetching one comment
type GetCommentByIDArgs struct {
	CommentID string `json:"comment_id" jsonschema:"The full identifier of the comment (t1_ prefix, e.g. t1_abcdef); a bare ID gets the prefix added"`
}

// GetCommentByIDResult carries the comment data as Reddit returned it
type GetCommentByIDResult struct {
	Comment map[string]any `json:"comment"`
}

// PostCommentArgs contains parameters for replying to a post or comment
type PostCommentArgs struct {
	ParentID string `json:"parent_id" jsonschema:"The full ID of the parent post (t3_...) or comment (t1_...)"`
	Text     string `json:"text" jsonschema:"The text content of the comment"`
}

// EditContentArgs contains parameters for editing a post or comment
type EditContentArgs struct {
	ContentID string `json:"content_id" jsonschema:"The full ID of the post (t3_...) or comment (t1_...) to edit"`
	Text      string `json:"text" jsonschema:"The new text content"`
}

// DeleteContentArgs contains parameters for deleting a post or comment
type DeleteContentArgs struct {
	ContentID string `json:"content_id" jsonschema:"The full ID of the post (t3_...) or comment (t1_...) to delete"`
}

// DeleteContentResult confirms a deletion
type DeleteContentResult struct {
	Message string `json:"message"`
}

// APIResponse wraps a Reddit response returned unchanged
type APIResponse struct {
	Response any `json:"response"`
}
