package reddit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
)

const (
	DefaultLimit     = 5
	MaxLimit         = 100
	DefaultTimeframe = "day"
	DefaultSort      = "relevance"
)

var (
	// ValidTimeframes are the t values accepted by /r/{subreddit}/top.
	ValidTimeframes = []string{"hour", "day", "week", "month", "year", "all"}

	// ValidSearchSorts are the sort orders of /subreddits/search.
	ValidSearchSorts = []string{"relevance", "activity"}

	// ValidPostKinds are the submission kinds create_post supports.
	ValidPostKinds = []string{"self", "link"}

	subredditRegex = regexp.MustCompile(`^[A-Za-z0-9_+]+$`)
	fullnameRegex  = regexp.MustCompile(`^t[1-6]_[a-z0-9]+$`)
	id36Regex      = regexp.MustCompile(`^[a-z0-9]+$`)
)

// NormalizeSubreddit strips whitespace and an optional r/ or /r/ prefix.
func NormalizeSubreddit(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	if len(name) > 2 && strings.EqualFold(name[:2], "r/") {
		name = name[2:]
	}
	return strings.TrimSuffix(name, "/")
}

// ValidateSubreddit validates a subreddit name. "a+b" combinations are allowed.
func ValidateSubreddit(name string) error {
	if name == "" {
		return apperrors.NewValidationError("subreddit", "", "subreddit is required")
	}
	if len(name) > 100 || !subredditRegex.MatchString(name) {
		return apperrors.NewValidationError("subreddit", name, "subreddit names may only contain letters, digits, underscores and '+'")
	}
	return nil
}

// ValidateLimit checks a 1..100 limit.
func ValidateLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return apperrors.NewValidationError("limit", strconv.Itoa(limit),
			fmt.Sprintf("Invalid limit '%d'. Please use a value between 1 and %d.", limit, MaxLimit))
	}
	return nil
}

// ValidateTimeframe checks t against ValidTimeframes.
func ValidateTimeframe(timeframe string) error {
	return oneOf("timeframe", timeframe, ValidTimeframes)
}

// ValidateSearchSort checks sort against ValidSearchSorts.
func ValidateSearchSort(sort string) error {
	return oneOf("sort", sort, ValidSearchSorts)
}

func oneOf(field, value string, valid []string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return apperrors.NewValidationError(field, value,
		fmt.Sprintf("Invalid %s '%s'. Please use one of: %s", field, value, strings.Join(valid, ", ")))
}

// ValidatePost checks the kind-specific requirements of a submission.
func ValidatePost(args CreatePostArgs) error {
	if strings.TrimSpace(args.Title) == "" {
		return apperrors.NewValidationError("title", "", "title is required")
	}
	switch args.Kind {
	case "self":
		if args.Text == "" {
			return apperrors.NewValidationError("text", "", "Text content is required for text posts.")
		}
	case "link":
		if args.URL == "" {
			return apperrors.NewValidationError("url", "", "URL is required for link posts (including images).")
		}
	default:
		return apperrors.NewValidationError("kind", args.Kind, "Invalid post kind. Must be one of 'self' or 'link'.")
	}
	return nil
}

// NormalizeFullname trims id and adds prefix (for example "t1_") when id is
// a bare ID36.
func NormalizeFullname(id, prefix string) string {
	id = strings.TrimSpace(id)
	if id36Regex.MatchString(id) {
		return prefix + id
	}
	return id
}

// ValidateFullname checks a type-prefixed Reddit id such as t1_abc or t3_xyz.
// A non-empty prefixes list restricts the accepted kinds.
func ValidateFullname(field, id string, prefixes ...string) error {
	if id == "" {
		return apperrors.NewValidationError(field, "", field+" is required")
	}
	if !fullnameRegex.MatchString(id) {
		return apperrors.NewValidationError(field, id, "expected a Reddit fullname such as t1_abc123 or t3_abc123")
	}
	if len(prefixes) == 0 {
		return nil
	}
	for _, p := range prefixes {
		if strings.HasPrefix(id, p) {
			return nil
		}
	}
	return apperrors.NewValidationError(field, id, "expected an id starting with "+strings.Join(prefixes, " or "))
}
