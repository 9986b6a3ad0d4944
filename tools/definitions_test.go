package tools

import (
	"strings"
	"testing"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
)

func TestAllToolsNotEmpty(t *testing.T) {
	all := AllTools()
	if len(all) != len(catalog.All()) {
		t.Fatalf("AllTools has %d specs, catalog has %d descriptors", len(all), len(catalog.All()))
	}

	for i, spec := range all {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
		if spec.Endpoint == "" {
			t.Errorf("Tool %s has empty Endpoint", spec.Name)
		}
	}
}

func TestCuratedToolSpecs(t *testing.T) {
	knownMethods := map[string]bool{
		"GetSubredditPosts": true,
		"SearchSubreddits":  true,
		"GetPostFlairs":     true,
		"GetCommentByID":    true,
		"CreatePost":        true,
		"PostComment":       true,
		"EditContent":       true,
		"DeleteContent":     true,
	}

	for _, spec := range CuratedTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
		d, ok := catalog.Lookup(spec.Name)
		if !ok {
			t.Errorf("Tool %s is not in the catalog", spec.Name)
			continue
		}
		if spec.Endpoint != d.Endpoint() {
			t.Errorf("Tool %s endpoint = %q, catalog has %q", spec.Name, spec.Endpoint, d.Endpoint())
		}
		if spec.ReadOnly != d.ReadOnly() {
			t.Errorf("Tool %s ReadOnly = %v, catalog method is %s", spec.Name, spec.ReadOnly, d.Method)
		}
	}
}

func TestPassthroughSpec(t *testing.T) {
	tests := []struct {
		name        string
		readOnly    bool
		destructive bool
		idempotent  bool
	}{
		{"api_v1_me", true, false, true},
		{"api_v1_me_prefs1", false, false, false},
		{"api_v1_subreddit_emoji_emoji_name", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := catalog.MustLookup(tt.name)
			spec := PassthroughSpec(d)

			if spec.ReadOnly != tt.readOnly {
				t.Errorf("ReadOnly = %v, want %v", spec.ReadOnly, tt.readOnly)
			}
			if spec.Destructive != tt.destructive {
				t.Errorf("Destructive = %v, want %v", spec.Destructive, tt.destructive)
			}
			if spec.Idempotent != tt.idempotent {
				t.Errorf("Idempotent = %v, want %v", spec.Idempotent, tt.idempotent)
			}
			if !spec.OpenWorld {
				t.Error("OpenWorld should be true")
			}
			if !strings.HasSuffix(spec.Description, "ENDPOINT: "+d.Endpoint()) {
				t.Errorf("Description should end with the endpoint, got %q", spec.Description)
			}
		})
	}
}

func TestPassthroughTitle(t *testing.T) {
	if got := passthroughTitle("api_v1_me_karma"); got != "Api V1 Me Karma" {
		t.Errorf("passthroughTitle = %q", got)
	}
}

func TestToolsByCategory(t *testing.T) {
	listings := ToolsByCategory("listings")
	if len(listings) == 0 {
		t.Error("Expected listings tools")
	}
	for _, tool := range listings {
		if tool.Category != "listings" {
			t.Errorf("Tool %s has category %s, expected listings", tool.Name, tool.Category)
		}
	}

	if unknown := ToolsByCategory("unknown"); len(unknown) != 0 {
		t.Errorf("Expected 0 tools for unknown category, got %d", len(unknown))
	}
}

func TestInputSchemas(t *testing.T) {
	schemas, err := InputSchemas()
	if err != nil {
		t.Fatalf("InputSchemas: %v", err)
	}
	if len(schemas) != len(catalog.All()) {
		t.Errorf("got %d schemas, want %d", len(schemas), len(catalog.All()))
	}

	posts := schemas["get_subreddit_posts"]
	if posts == nil {
		t.Fatal("missing get_subreddit_posts schema")
	}
	if _, ok := posts.Properties["timeframe"]; !ok {
		t.Error("curated schema should expose timeframe")
	}
	if len(posts.Required) != 1 || posts.Required[0] != "subreddit" {
		t.Errorf("Required = %v, want [subreddit]", posts.Required)
	}
}
