package reddit

import (
	"context"
	"net/http"
	"strings"
	"testing"

	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
)

func TestGetSubredditPostsMCP(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/top" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "2" || q.Get("t") != "week" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"after":"t3_b","children":[
			{"kind":"t3","data":{"id":"a","title":"Go 1.24 released","author":"gopher","score":1234,"permalink":"/r/golang/comments/a/go_124/"}},
			{"kind":"t3","data":{"id":"b","title":"","author":"","score":0,"permalink":""}}
		]}}`))
	})

	result, err := client.GetSubredditPostsMCP(context.Background(), GetSubredditPostsArgs{
		Subreddit: "r/golang",
		Limit:     2,
		Timeframe: "week",
	})
	if err != nil {
		t.Fatalf("GetSubredditPostsMCP failed: %v", err)
	}

	want := "Top 2 posts from r/golang (timeframe: week):\n\n" +
		"1. \"Go 1.24 released\" by u/gopher (Score: 1234)\n" +
		"   Link: https://www.reddit.com/r/golang/comments/a/go_124/\n" +
		"2. \"No Title\" by u/Unknown Author (Score: 0)\n" +
		"   Link: No Link"
	if result.Formatted != want {
		t.Errorf("Formatted =\n%s\nwant\n%s", result.Formatted, want)
	}
	if result.Count != 2 || len(result.Posts) != 2 {
		t.Errorf("Count = %d, posts = %d", result.Count, len(result.Posts))
	}
	if result.Subreddit != "golang" {
		t.Errorf("Subreddit = %q, want prefix stripped", result.Subreddit)
	}
}

func TestGetSubredditPostsMCP_Defaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "5" || q.Get("t") != "day" {
			t.Errorf("expected default limit 5 and t=day, got %v", q)
		}
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	})

	result, err := client.GetSubredditPostsMCP(context.Background(), GetSubredditPostsArgs{Subreddit: "golang"})
	if err != nil {
		t.Fatalf("GetSubredditPostsMCP failed: %v", err)
	}
	if result.Formatted != "No top posts found in r/golang for the timeframe 'day'." {
		t.Errorf("Formatted = %q", result.Formatted)
	}
	if result.Posts == nil {
		t.Error("Posts should be an empty slice, not nil")
	}
}

func TestGetSubredditPostsMCP_Validation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	tests := []struct {
		name    string
		args    GetSubredditPostsArgs
		wantMsg string
	}{
		{"missing subreddit", GetSubredditPostsArgs{}, "subreddit is required"},
		{"limit too high", GetSubredditPostsArgs{Subreddit: "go", Limit: 101}, "Invalid limit '101'. Please use a value between 1 and 100."},
		{"negative limit", GetSubredditPostsArgs{Subreddit: "go", Limit: -1}, "Invalid limit '-1'"},
		{"bad timeframe", GetSubredditPostsArgs{Subreddit: "go", Timeframe: "decade"}, "Invalid timeframe 'decade'. Please use one of: hour, day, week, month, year, all"},
		{"bad subreddit", GetSubredditPostsArgs{Subreddit: "go/lang"}, "subreddit names may only contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GetSubredditPostsMCP(context.Background(), tt.args)
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestGetSubredditPostsMCP_RedditErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": 404, "message": "Not Found"}`))
	})

	_, err := client.GetSubredditPostsMCP(context.Background(), GetSubredditPostsArgs{Subreddit: "nosuchsub"})
	if !apperrors.IsAPI(err) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if err.Error() != "Reddit API error: 404: Not Found" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestSearchSubredditsMCP(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subreddits/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "golang" || q.Get("sort") != "activity" || q.Get("limit") != "5" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[
			{"kind":"t5","data":{"display_name":"golang","title":"The Go Programming Language","subscribers":1234567,"public_description":"  Ask questions about Go.  "}},
			{"kind":"t5","data":{"display_name":"gopher","title":"Gophers","subscribers":0,"public_description":""}},
			{"kind":"t5","data":{"display_name":"empty","title":"","subscribers":null}}
		]}}`))
	})

	result, err := client.SearchSubredditsMCP(context.Background(), SearchSubredditsArgs{Query: "golang", Sort: "activity"})
	if err != nil {
		t.Fatalf("SearchSubredditsMCP failed: %v", err)
	}

	want := "Found 3 subreddits matching 'golang' (sorted by activity):\n\n" +
		"1. r/golang (1,234,567 subscribers)\n" +
		"   Description: Ask questions about Go.\n" +
		"2. r/gopher (Unknown subscribers)\n" +
		"   Description: Gophers\n" +
		"3. r/empty (Unknown subscribers)\n" +
		"   Description: No Title"
	if result.Formatted != want {
		t.Errorf("Formatted =\n%s\nwant\n%s", result.Formatted, want)
	}
	if result.Count != 3 {
		t.Errorf("Count = %d, want 3", result.Count)
	}
}

func TestSearchSubredditsMCP_Empty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	})

	result, err := client.SearchSubredditsMCP(context.Background(), SearchSubredditsArgs{Query: "zzzz"})
	if err != nil {
		t.Fatalf("SearchSubredditsMCP failed: %v", err)
	}
	if result.Formatted != "No subreddits found matching the query 'zzzz'." {
		t.Errorf("Formatted = %q", result.Formatted)
	}
	if result.Sort != "relevance" {
		t.Errorf("Sort = %q, want default relevance", result.Sort)
	}
}

func TestSearchSubredditsMCP_Validation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	if _, err := client.SearchSubredditsMCP(context.Background(), SearchSubredditsArgs{Query: "  "}); !apperrors.IsValidation(err) {
		t.Errorf("blank query: expected ValidationError, got %v", err)
	}
	_, err := client.SearchSubredditsMCP(context.Background(), SearchSubredditsArgs{Query: "go", Sort: "new"})
	if err == nil || err.Error() != `validation failed for sort="new": Invalid sort 'new'. Please use one of: relevance, activity` {
		t.Errorf("bad sort error = %v", err)
	}
}

func TestGetPostFlairsMCP(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantFlairs  int
		wantMessage string
	}{
		{"flairs", `[{"id":"f1","text":"Help","text_editable":false,"type":"text"},{"id":"f2","text":"News"}]`, 2, ""},
		{"empty array", `[]`, 0, "No post flairs available for r/golang."},
		{"empty body", ``, 0, "No post flairs available for r/golang."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/r/golang/api/link_flair_v2" {
					t.Errorf("path = %q", r.URL.Path)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := client.GetPostFlairsMCP(context.Background(), GetPostFlairsArgs{Subreddit: "golang"})
			if err != nil {
				t.Fatalf("GetPostFlairsMCP failed: %v", err)
			}
			if len(result.Flairs) != tt.wantFlairs {
				t.Errorf("flairs = %d, want %d", len(result.Flairs), tt.wantFlairs)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", result.Message, tt.wantMessage)
			}
		})
	}
}

func TestCreatePostMCP(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/submit" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		f := r.PostForm
		if f.Get("sr") != "golang" || f.Get("title") != "Hello" || f.Get("kind") != "self" ||
			f.Get("text") != "body" || f.Get("api_type") != "json" {
			t.Errorf("form = %v", f)
		}
		if _, ok := f["url"]; ok {
			t.Error("unset url should not be sent")
		}
		_, _ = w.Write([]byte(`{"json":{"errors":[],"data":{"id":"abc","name":"t3_abc","url":"https://www.reddit.com/r/golang/comments/abc/hello/"}}}`))
	})

	result, err := client.CreatePostMCP(context.Background(), CreatePostArgs{
		Subreddit: "golang",
		Title:     "Hello",
		Text:      "body",
	})
	if err != nil {
		t.Fatalf("CreatePostMCP failed: %v", err)
	}
	if result.Name != "t3_abc" || result.ID != "abc" {
		t.Errorf("result = %+v", result)
	}
	if result.Response == nil {
		t.Error("Response should carry the raw API response")
	}
}

func TestCreatePostMCP_RedditErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"json":{"errors":[["SUBREDDIT_NOEXIST","that subreddit doesn't exist","sr"],["RATELIMIT","you are doing that too much","ratelimit"]]}}`))
	})

	_, err := client.CreatePostMCP(context.Background(), CreatePostArgs{
		Subreddit: "nosuch",
		Title:     "Hi",
		Kind:      "link",
		URL:       "https://go.dev",
	})
	if !apperrors.IsAPI(err) {
		t.Fatalf("expected APIError, got %v", err)
	}
	want := "Reddit API error: SUBREDDIT_NOEXIST: that subreddit doesn't exist, RATELIMIT: you are doing that too much"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestCreatePostMCP_Validation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	tests := []struct {
		name    string
		args    CreatePostArgs
		wantMsg string
	}{
		{"bad kind", CreatePostArgs{Subreddit: "go", Title: "t", Kind: "image"}, "Invalid post kind. Must be one of 'self' or 'link'."},
		{"self without text", CreatePostArgs{Subreddit: "go", Title: "t"}, "Text content is required for text posts."},
		{"link without url", CreatePostArgs{Subreddit: "go", Title: "t", Kind: "link"}, "URL is required for link posts (including images)."},
		{"missing title", CreatePostArgs{Subreddit: "go", Text: "x"}, "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreatePostMCP(context.Background(), tt.args)
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestGetCommentByIDMCP(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/info" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "t1_abc123" {
			t.Errorf("id = %q, want prefixed fullname", got)
		}
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[{"kind":"t1","data":{"id":"abc123","author":"gopher","body":"nice","score":3}}]}}`))
	})

	result, err := client.GetCommentByIDMCP(context.Background(), GetCommentByIDArgs{CommentID: "abc123"})
	if err != nil {
		t.Fatalf("GetCommentByIDMCP failed: %v", err)
	}
	if result.Comment["body"] != "nice" || result.Comment["author"] != "gopher" {
		t.Errorf("comment = %v", result.Comment)
	}
}

func TestGetCommentByIDMCP_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	})

	_, err := client.GetCommentByIDMCP(context.Background(), GetCommentByIDArgs{CommentID: "t1_gone"})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != "comment not found: t1_gone" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestGetCommentByIDMCP_RejectsPostFullname(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	if _, err := client.GetCommentByIDMCP(context.Background(), GetCommentByIDArgs{CommentID: "t3_abc"}); !apperrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestWriteOperations(t *testing.T) {
	var gotPath string
	var gotForm map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = r.ParseForm()
		gotForm = r.PostForm
		_, _ = w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	if _, err := client.PostCommentMCP(ctx, PostCommentArgs{ParentID: "t3_abc", Text: "reply"}); err != nil {
		t.Fatalf("PostCommentMCP failed: %v", err)
	}
	if gotPath != "/api/comment" || gotForm["parent"][0] != "t3_abc" || gotForm["text"][0] != "reply" {
		t.Errorf("post_comment sent %s %v", gotPath, gotForm)
	}

	if _, err := client.EditContentMCP(ctx, EditContentArgs{ContentID: "t1_def", Text: "edited"}); err != nil {
		t.Fatalf("EditContentMCP failed: %v", err)
	}
	if gotPath != "/api/editusertext" || gotForm["thing_id"][0] != "t1_def" || gotForm["text"][0] != "edited" {
		t.Errorf("edit_content sent %s %v", gotPath, gotForm)
	}

	result, err := client.DeleteContentMCP(ctx, DeleteContentArgs{ContentID: "t3_abc"})
	if err != nil {
		t.Fatalf("DeleteContentMCP failed: %v", err)
	}
	if gotPath != "/api/del" || gotForm["id"][0] != "t3_abc" {
		t.Errorf("delete_content sent %s %v", gotPath, gotForm)
	}
	if result.Message != "Content t3_abc deleted successfully." {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestWriteOperations_Validation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	ctx := context.Background()

	if _, err := client.PostCommentMCP(ctx, PostCommentArgs{ParentID: "abc", Text: "x"}); !apperrors.IsValidation(err) {
		t.Errorf("bare parent id: expected ValidationError, got %v", err)
	}
	if _, err := client.PostCommentMCP(ctx, PostCommentArgs{ParentID: "t3_abc"}); !apperrors.IsValidation(err) {
		t.Errorf("empty text: expected ValidationError, got %v", err)
	}
	if _, err := client.EditContentMCP(ctx, EditContentArgs{ContentID: "t5_abc", Text: "x"}); !apperrors.IsValidation(err) {
		t.Errorf("subreddit fullname: expected ValidationError, got %v", err)
	}
	if _, err := client.DeleteContentMCP(ctx, DeleteContentArgs{}); !apperrors.IsValidation(err) {
		t.Errorf("missing id: expected ValidationError, got %v", err)
	}
}
