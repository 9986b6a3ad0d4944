// Package tools provides a metadata-driven registry for MCP tool definitions.
// Curated tools are defined declaratively with typed handlers; every other
// catalog endpoint is exposed as a passthrough tool derived from its descriptor.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Curated specs map to a Reddit client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name and catalog key (e.g., "get_subreddit_posts")
	Name string

	// Method is the client method name (e.g., "GetSubredditPosts").
	// Empty for passthrough tools.
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools by Reddit API section
	Category string

	// Endpoint is the "METHOD /path" the tool calls
	Endpoint string

	// ReadOnly indicates the tool doesn't modify Reddit state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
