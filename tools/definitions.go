package tools

import (
	"net/http"
	"strings"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
)

// CuratedTools are the hand-tuned Reddit tools with typed arguments and
// reshaped results. Descriptions follow a structured format for tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var CuratedTools = []ToolSpec{
	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:     "get_subreddit_posts",
		Method:   "GetSubredditPosts",
		Title:    "Top Subreddit Posts",
		Category: "listings",
		Endpoint: "GET /r/:subreddit/top",
		Description: `Retrieves and formats top posts from a specified subreddit within a given timeframe.

USE WHEN: User asks "what's hot in r/golang", "top posts this week on r/python", "show me the best of r/X".

NOT FOR: Finding subreddits by topic (use search_subreddits).

PARAMETERS:
- subreddit: Subreddit name without r/ (required)
- limit: Max posts, 1-100 (default 5)
- timeframe: hour, day, week, month, year or all (default day)

RETURNS: Numbered list of posts with title, author, score and link.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_subreddits",
		Method:   "SearchSubreddits",
		Title:    "Search Subreddits",
		Category: "subreddits",
		Endpoint: "GET /subreddits/search",
		Description: `Searches Reddit for subreddits matching a query.

USE WHEN: User asks "is there a subreddit for X", "find communities about X", "which subreddits discuss X".

NOT FOR: Reading posts of a known subreddit (use get_subreddit_posts).

PARAMETERS:
- query: Search text (required)
- limit: Max subreddits, 1-100 (default 5)
- sort: relevance or activity (default relevance)

RETURNS: Subreddit names, subscriber counts and descriptions.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_post_flairs",
		Method:   "GetPostFlairs",
		Title:    "Post Flairs",
		Category: "flair",
		Endpoint: "GET /r/:subreddit/api/link_flair_v2",
		Description: `Retrieves the list of available post flairs for a subreddit.

USE WHEN: User wants to tag a new post, or asks "what flairs does r/X have".

PARAMETERS:
- subreddit: Subreddit name without r/ (required)

RETURNS: Flair ids and texts. Use an id as flair_id in create_post.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_comment_by_id",
		Method:   "GetCommentByID",
		Title:    "Get Comment",
		Category: "links & comments",
		Endpoint: "GET /api/info",
		Description: `Retrieves a specific Reddit comment by its fullname.

USE WHEN: User gives a comment id or asks "show me comment t1_abc".

NOT FOR: Whole comment threads of a post (use get_post_comments_details).

PARAMETERS:
- comment_id: Comment fullname (t1_...); a bare id is prefixed automatically (required)

RETURNS: The comment data as Reddit returns it.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// WRITE TOOLS
	// ==========================================================================
	{
		Name:     "create_post",
		Method:   "CreatePost",
		Title:    "Create Post",
		Category: "links & comments",
		Endpoint: "POST /api/submit",
		Description: `Creates a new text or link post in a subreddit.

USE WHEN: User says "post this to r/X", "submit a link to r/X", "share this on Reddit".

PARAMETERS:
- subreddit: Subreddit name without r/ (required)
- title: Post title (required)
- kind: self or link (default self)
- text: Body, required for self posts
- url: Link or image URL, required for link posts
- flair_id: Flair id from get_post_flairs (optional)

RETURNS: The new post's id, fullname and URL.

NOTE: Requires user credentials.`,
		OpenWorld: true,
	},
	{
		Name:     "post_comment",
		Method:   "PostComment",
		Title:    "Post Comment",
		Category: "links & comments",
		Endpoint: "POST /api/comment",
		Description: `Posts a comment replying to a post or another comment.

USE WHEN: User says "reply to this post", "comment on t3_abc", "answer that comment".

PARAMETERS:
- parent_id: Fullname of the post (t3_...) or comment (t1_...) (required)
- text: Comment body in markdown (required)

RETURNS: Reddit's response for the new comment.`,
		OpenWorld: true,
	},
	{
		Name:     "edit_content",
		Method:   "EditContent",
		Title:    "Edit Post or Comment",
		Category: "links & comments",
		Endpoint: "POST /api/editusertext",
		Description: `Edits the text of an existing post or comment owned by the user.

USE WHEN: User says "fix the typo in my comment", "update my post text".

PARAMETERS:
- content_id: Fullname of the post (t3_...) or comment (t1_...) (required)
- text: Replacement text (required)

RETURNS: Reddit's response for the edited item.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "delete_content",
		Method:   "DeleteContent",
		Title:    "Delete Post or Comment",
		Category: "links & comments",
		Endpoint: "POST /api/del",
		Description: `Deletes a post or comment owned by the user.

USE WHEN: User says "delete my comment", "remove that post".

PARAMETERS:
- content_id: Fullname of the post (t3_...) or comment (t1_...) (required)

RETURNS: Confirmation message.

WARNING: Deletion cannot be undone.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
}

var curatedIndex = func() map[string]int {
	idx := make(map[string]int, len(CuratedTools))
	for i, spec := range CuratedTools {
		idx[spec.Name] = i
	}
	return idx
}()

// CuratedSpec returns the curated spec registered under name.
func CuratedSpec(name string) (ToolSpec, bool) {
	i, ok := curatedIndex[name]
	if !ok {
		return ToolSpec{}, false
	}
	return CuratedTools[i], true
}

// PassthroughSpec derives tool metadata from a catalog descriptor.
func PassthroughSpec(d *catalog.Descriptor) ToolSpec {
	return ToolSpec{
		Name:        d.Name,
		Title:       passthroughTitle(d.Name),
		Description: d.Description + "\n\nENDPOINT: " + d.Endpoint(),
		Category:    d.Category,
		Endpoint:    d.Endpoint(),
		ReadOnly:    d.ReadOnly(),
		Destructive: d.Destructive(),
		Idempotent:  d.ReadOnly() || d.Method == http.MethodPut || d.Method == http.MethodDelete,
		OpenWorld:   true,
	}
}

// passthroughTitle turns "api_v1_me_karma" into "Api V1 Me Karma".
func passthroughTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// AllTools returns one spec per catalog entry, in catalog order.
func AllTools() []ToolSpec {
	descs := catalog.All()
	specs := make([]ToolSpec, 0, len(descs))
	for i := range descs {
		if spec, ok := CuratedSpec(descs[i].Name); ok {
			specs = append(specs, spec)
			continue
		}
		specs = append(specs, PassthroughSpec(&descs[i]))
	}
	return specs
}

// ToolsByCategory returns the tools in a category.
func ToolsByCategory(category string) []ToolSpec {
	var result []ToolSpec
	for _, spec := range AllTools() {
		if spec.Category == category {
			result = append(result, spec)
		}
	}
	return result
}
