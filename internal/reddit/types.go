package reddit

import "encoding/json"

// Thing is Reddit's generic envelope: a kind tag (t1, t3, t5, Listing, ...)
// around a kind-specific data object.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Listing is a page of things with cursors for pagination.
type Listing struct {
	After    string  `json:"after"`
	Before   string  `json:"before"`
	Dist     int     `json:"dist"`
	Children []Thing `json:"children"`
}

// listingResponse is a Listing thing as returned by listing endpoints. Some
// endpoints answer with {"error": 404, "message": "..."} instead.
type listingResponse struct {
	Kind    string          `json:"kind"`
	Data    Listing         `json:"data"`
	Error   json.RawMessage `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Reason  string          `json:"reason,omitempty"`
}

// Post is the data of a t3 (link) thing.
type Post struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	Selftext    string  `json:"selftext"`
	IsSelf      bool    `json:"is_self"`
	Over18      bool    `json:"over_18"`
	CreatedUTC  float64 `json:"created_utc"`
}

// Subreddit is the data of a t5 thing.
type Subreddit struct {
	DisplayName       string `json:"display_name"`
	Title             string `json:"title"`
	PublicDescription string `json:"public_description"`
	Subscribers       int    `json:"subscribers"`
	URL               string `json:"url"`
	Over18            bool   `json:"over18"`
}

// Comment is the data of a t1 thing.
type Comment struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	ParentID   string  `json:"parent_id"`
	LinkID     string  `json:"link_id"`
	Subreddit  string  `json:"subreddit"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

// Flair is one entry of /r/{subreddit}/api/link_flair_v2.
type Flair struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	Type            string `json:"type,omitempty"`
	TextEditable    bool   `json:"text_editable"`
	CSSClass        string `json:"css_class,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	ModOnly         bool   `json:"mod_only,omitempty"`
}

// SubmitResponse is the api_type=json answer of /api/submit. Each error is
// a [code, message, field] triple.
type SubmitResponse struct {
	JSON struct {
		Errors [][]string `json:"errors"`
		Data   struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"data"`
	} `json:"json"`
}

// errorBody covers the error shapes Reddit sends with 4xx responses.
type errorBody struct {
	Error       json.RawMessage `json:"error"`
	Message     string          `json:"message"`
	Reason      string          `json:"reason"`
	Explanation string          `json:"explanation"`
	JSON        *struct {
		Errors [][]string `json:"errors"`
	} `json:"json"`
}
