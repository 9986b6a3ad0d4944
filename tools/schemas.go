package tools

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
	"github.com/olgasafonova/reddit-mcp-server/internal/reddit"
)

// curatedSchemas infers the input schema of each curated tool from its Args
// type, the same way mcp.AddTool does.
var curatedSchemas = map[string]func() (*jsonschema.Schema, error){
	"get_subreddit_posts": schemaFor[reddit.GetSubredditPostsArgs],
	"search_subreddits":   schemaFor[reddit.SearchSubredditsArgs],
	"get_post_flairs":     schemaFor[reddit.GetPostFlairsArgs],
	"get_comment_by_id":   schemaFor[reddit.GetCommentByIDArgs],
	"create_post":         schemaFor[reddit.CreatePostArgs],
	"post_comment":        schemaFor[reddit.PostCommentArgs],
	"edit_content":        schemaFor[reddit.EditContentArgs],
	"delete_content":      schemaFor[reddit.DeleteContentArgs],
}

func schemaFor[T any]() (*jsonschema.Schema, error) {
	return jsonschema.For[T](nil)
}

// InputSchemas returns the input schema of every served tool, keyed by name.
func InputSchemas() (map[string]*jsonschema.Schema, error) {
	descs := catalog.All()
	out := make(map[string]*jsonschema.Schema, len(descs))
	for i := range descs {
		d := &descs[i]
		if infer, ok := curatedSchemas[d.Name]; ok {
			schema, err := infer()
			if err != nil {
				return nil, fmt.Errorf("schema for %s: %w", d.Name, err)
			}
			out[d.Name] = schema
			continue
		}
		out[d.Name] = catalog.InputSchema(d)
	}
	return out, nil
}
