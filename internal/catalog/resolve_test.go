package catalog

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
)

func TestURITemplate(t *testing.T) {
	tests := []struct {
		tool string
		want string
	}{
		{"api_v1_me", "/api/v1/me"},
		{"r_subreddit_top", "/r/{subreddit}/top"},
		{"api_v1_subreddit_emoji_emoji_name", "/api/v1/{subreddit}/emoji/{emoji_name}"},
		{"api_multi_multipath_rsubreddit", "/api/multi/{+multipath}/r/{subreddit}"},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			if got := URITemplate(MustLookup(tt.tool)); got != tt.want {
				t.Errorf("URITemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{
			name: "no placeholders",
			tool: "api_v1_me",
			want: "/api/v1/me",
		},
		{
			name: "single placeholder",
			tool: "r_subreddit_top",
			args: map[string]any{"subreddit": "golang"},
			want: "/r/golang/top",
		},
		{
			name: "two placeholders",
			tool: "r_subreddit_wiki_page",
			args: map[string]any{"subreddit": "golang", "page": "index"},
			want: "/r/golang/wiki/index",
		},
		{
			name: "simple expansion escapes slash and space",
			tool: "r_subreddit_wiki_page",
			args: map[string]any{"subreddit": "golang", "page": "config/side bar"},
			want: "/r/golang/wiki/config%2Fside%20bar",
		},
		{
			name: "reserved expansion keeps slashes",
			tool: "api_multi_multipath_rsubreddit",
			args: map[string]any{"multipath": "user/spez/m/cats", "subreddit": "aww"},
			want: "/api/multi/user/spez/m/cats/r/aww",
		},
		{
			name: "numeric path value",
			tool: "get_post_comments_details",
			args: map[string]any{"post_id": json.Number("12345")},
			want: "/comments/12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Resolve(MustLookup(tt.tool), tt.args)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if req.Path != tt.want {
				t.Errorf("Path = %q, want %q", req.Path, tt.want)
			}
		})
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name      string
		tool      string
		args      map[string]any
		wantField string
	}{
		{"missing placeholder", "r_subreddit_top", nil, "subreddit"},
		{"nil placeholder", "r_subreddit_top", map[string]any{"subreddit": nil}, "subreddit"},
		{"empty placeholder", "r_subreddit_top", map[string]any{"subreddit": "  "}, "subreddit"},
		{"second placeholder missing", "r_subreddit_wiki_page", map[string]any{"subreddit": "golang"}, "page"},
		{"unknown argument", "api_v1_me", map[string]any{"bogus": 1}, "bogus"},
		{"missing required query", "search_subreddits", map[string]any{"limit": 5}, "q"},
		{"object in form body", "post_comment", map[string]any{"parent": "t3_x", "text": map[string]any{"a": 1}}, "text"},
		{"object in path", "r_subreddit_top", map[string]any{"subreddit": []any{"a"}}, "subreddit"},
		{"dot dot segment", "r_subreddit_top", map[string]any{"subreddit": ".."}, "subreddit"},
		{"reserved with query", "api_multi_multipath", map[string]any{"multipath": "user/x?y=1"}, "multipath"},
		{"reserved relative segment", "api_multi_multipath", map[string]any{"multipath": "user/../admin"}, "multipath"},
		{"non-numeric integer", "r_subreddit_top", map[string]any{"subreddit": "golang", "limit": "abc"}, "limit"},
		{"fractional integer", "r_subreddit_top", map[string]any{"subreddit": "golang", "limit": 2.5}, "limit"},
		{"fractional json integer", "r_subreddit_top", map[string]any{"subreddit": "golang", "limit": json.Number("1.5")}, "limit"},
		{"boolean as integer", "r_subreddit_top", map[string]any{"subreddit": "golang", "limit": true}, "limit"},
		{"word as boolean", "comments_article", map[string]any{"article": "abc", "threaded": "sometimes"}, "threaded"},
		{"number as boolean", "comments_article", map[string]any{"article": "abc", "threaded": 1}, "threaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(MustLookup(tt.tool), tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			ve, ok := err.(*apperrors.ValidationError)
			if !ok {
				t.Fatalf("expected unwrapped ValidationError, got %T", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestResolveQuery(t *testing.T) {
	req, err := Resolve(MustLookup("r_subreddit_top"), map[string]any{
		"subreddit": "golang",
		"limit":     float64(10),
		"after":     "t3_abc",
		"show":      "all",
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if req.Method != http.MethodGet {
		t.Errorf("Method = %q", req.Method)
	}
	want := url.Values{"limit": {"10"}, "after": {"t3_abc"}, "show": {"all"}}
	if req.Query.Encode() != want.Encode() {
		t.Errorf("Query = %q, want %q", req.Query.Encode(), want.Encode())
	}
	if req.Body != nil || req.ContentType != "" {
		t.Errorf("GET should have no body, got %q (%s)", req.Body, req.ContentType)
	}
}

func TestResolveBooleanAndInteger(t *testing.T) {
	req, err := Resolve(MustLookup("comments_article"), map[string]any{
		"article":  "abc",
		"threaded": true,
		"depth":    float64(2),
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got := req.Query.Get("threaded"); got != "true" {
		t.Errorf("threaded = %q", got)
	}
	if got := req.Query.Get("depth"); got != "2" {
		t.Errorf("depth = %q", got)
	}
}

func TestResolveTypedStrings(t *testing.T) {
	tests := []struct {
		name  string
		param string
		value any
		want  string
	}{
		{"integer string", "depth", "10", "10"},
		{"json integer", "depth", json.Number("10"), "10"},
		{"boolean string", "threaded", "false", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Resolve(MustLookup("comments_article"), map[string]any{
				"article": "abc",
				tt.param:  tt.value,
			})
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if got := req.Query.Get(tt.param); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.param, got, tt.want)
			}
		})
	}
}

func TestResolveFormBody(t *testing.T) {
	req, err := Resolve(MustLookup("create_post"), map[string]any{
		"sr":       "golang",
		"title":    "Hello",
		"kind":     "self",
		"text":     "body & more",
		"api_type": "json",
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if req.Method != http.MethodPost || req.Path != "/api/submit" {
		t.Errorf("got %s %s", req.Method, req.Path)
	}
	if req.ContentType != ContentTypeForm {
		t.Errorf("ContentType = %q", req.ContentType)
	}
	form, err := url.ParseQuery(string(req.Body))
	if err != nil {
		t.Fatalf("body is not form encoded: %v", err)
	}
	if form.Get("text") != "body & more" || form.Get("sr") != "golang" || form.Get("api_type") != "json" {
		t.Errorf("form = %v", form)
	}
	if form.Has("url") {
		t.Error("unset optional params should not be sent")
	}
	if len(req.Query) != 0 {
		t.Errorf("Query = %v, want empty", req.Query)
	}
}

func TestResolveJSONBody(t *testing.T) {
	req, err := Resolve(MustLookup("api_v1_me_prefs1"), map[string]any{
		"nightmode":         true,
		"min_comment_score": float64(-4),
		"lang":              "en",
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if req.Method != http.MethodPatch || req.ContentType != ContentTypeJSON {
		t.Errorf("got %s with %q", req.Method, req.ContentType)
	}
	var body map[string]any
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["nightmode"] != true || body["lang"] != "en" || body["min_comment_score"] != float64(-4) {
		t.Errorf("body = %v", body)
	}
	if strings.Contains(string(req.Body), "hide_ads") {
		t.Error("unset fields should be omitted")
	}
}

func TestResolveDeleteWithQuery(t *testing.T) {
	req, err := Resolve(MustLookup("api_mod_notes"), map[string]any{
		"note_id":   "ModNote_1",
		"subreddit": "golang",
		"user":      "spez",
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if req.Method != http.MethodDelete || req.Path != "/api/mod/notes" {
		t.Errorf("got %s %s", req.Method, req.Path)
	}
	if req.Query.Get("note_id") != "ModNote_1" {
		t.Errorf("Query = %v", req.Query)
	}
}

func TestResolveEveryToolWithPlaceholders(t *testing.T) {
	for _, d := range All() {
		args := make(map[string]any)
		for _, p := range d.Params {
			if p.Required {
				args[p.Name] = "x"
			}
		}
		req, err := Resolve(&d, args)
		if err != nil {
			t.Errorf("%s: Resolve() error: %v", d.Name, err)
			continue
		}
		if strings.ContainsAny(req.Path, ":{}") {
			t.Errorf("%s: unexpanded template in %q", d.Name, req.Path)
		}
	}
}
