package catalog

import "net/http"

// descriptors is the tool table in registration order: the curated tools
// first, then the generated REST passthroughs grouped by API area.
var descriptors = []Descriptor{
	{
		Name:        "get_subreddit_posts",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/top",
		Category:    "listings",
		Description: "Retrieves and formats top posts from a specified subreddit within a given timeframe.",
		Params: []Param{
			subredditPath,
			queryParam("limit", TypeInteger, "The maximum number of posts to return (default: 5, max: 100)"),
			queryParam("t", TypeString, "one of (hour, day, week, month, year, all)"),
		},
	},
	{
		Name:        "search_subreddits",
		Method:      http.MethodGet,
		Path:        "/subreddits/search",
		Category:    "subreddits",
		Description: "Searches Reddit for subreddits matching a query and lists their names, subscriber counts and descriptions.",
		Params: []Param{
			requiredQuery("q", TypeString, "The text to search for in subreddit names and descriptions"),
			queryParam("limit", TypeInteger, "The maximum number of subreddits to return, between 1 and 100 (default: 5)"),
			queryParam("sort", TypeString, "one of (relevance, activity)"),
		},
	},
	{
		Name:        "get_post_flairs",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/link_flair_v2",
		Category:    "flair",
		Description: "Retrieves the list of available post flairs for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "create_post",
		Method:      http.MethodPost,
		Path:        "/api/submit",
		Category:    "links & comments",
		Description: "Creates a new text or link post in a subreddit.",
		Params: []Param{
			requiredBody("sr", TypeString, "Subreddit name without the r/ prefix"),
			requiredBody("title", TypeString, "The title of the post"),
			requiredBody("kind", TypeString, "one of (self, link)"),
			bodyParam("text", TypeString, "Text content, required for self posts"),
			bodyParam("url", TypeString, "Link or image URL, required for link posts"),
			bodyParam("flair_id", TypeString, "The ID of the flair to assign to the post"),
			bodyParam("api_type", TypeString, `the string "json"`),
		},
	},
	{
		Name:        "get_comment_by_id",
		Method:      http.MethodGet,
		Path:        "/api/info",
		Category:    "links & comments",
		Description: "Retrieves a specific Reddit comment by its fullname (t1_...).",
		Params: []Param{
			requiredQuery("id", TypeString, "Comment fullname, e.g. t1_abcdef"),
		},
	},
	{
		Name:        "post_comment",
		Method:      http.MethodPost,
		Path:        "/api/comment",
		Category:    "links & comments",
		Description: "Posts a comment replying to a post or another comment.",
		Params: []Param{
			requiredBody("parent", TypeString, "Fullname of the parent post (t3_...) or comment (t1_...)"),
			requiredBody("text", TypeString, "Comment body in markdown"),
		},
	},
	{
		Name:        "edit_content",
		Method:      http.MethodPost,
		Path:        "/api/editusertext",
		Category:    "links & comments",
		Description: "Edits the text of an existing post or comment.",
		Params: []Param{
			requiredBody("thing_id", TypeString, "Fullname of the post (t3_...) or comment (t1_...)"),
			requiredBody("text", TypeString, "The new text content"),
		},
	},
	{
		Name:        "delete_content",
		Method:      http.MethodPost,
		Path:        "/api/del",
		Category:    "links & comments",
		Description: "Deletes a post or comment owned by the current user.",
		Params: []Param{
			requiredBody("id", TypeString, "Fullname of the post (t3_...) or comment (t1_...)"),
		},
	},
	{
		Name:        "api_v1_me",
		Method:      http.MethodGet,
		Path:        "/api/v1/me",
		Category:    "users",
		Description: "Get the current user's information.",
	},
	{
		Name:        "api_v1_me_karma",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/karma",
		Category:    "account",
		Description: "Get the current user's karma.",
	},
	{
		Name:        "api_v1_me_prefs",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/prefs",
		Category:    "account",
		Description: "Get the current user's preferences.",
	},
	{
		Name:        "api_v1_me_prefs1",
		Method:      http.MethodPatch,
		Path:        "/api/v1/me/prefs",
		Category:    "account",
		Description: "Update the current user's preferences.",
		Params:      prefsParams(),
		Body:        BodyJSON,
	},
	{
		Name:        "api_v1_me_trophies",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/trophies",
		Category:    "account",
		Description: "Get the current user's trophies.",
	},
	{
		Name:        "prefs_friends",
		Method:      http.MethodGet,
		Path:        "/prefs/friends",
		Category:    "account",
		Description: "Get the current user's friends.",
		Params:      listingParams(),
	},
	{
		Name:        "prefs_blocked",
		Method:      http.MethodGet,
		Path:        "/prefs/blocked",
		Category:    "account",
		Description: "Get the current user's blocked users.",
		Params:      listingParams(),
	},
	{
		Name:        "prefs_messaging",
		Method:      http.MethodGet,
		Path:        "/prefs/messaging",
		Category:    "account",
		Description: "Get the current user's messaging preferences.",
		Params:      listingParams(),
	},
	{
		Name:        "prefs_trusted",
		Method:      http.MethodGet,
		Path:        "/prefs/trusted",
		Category:    "account",
		Description: "Get the current user's trusted users.",
		Params:      listingParams(),
	},
	{
		Name:        "api_needs_captcha",
		Method:      http.MethodGet,
		Path:        "/api/needs_captcha",
		Category:    "captcha",
		Description: "Check if the current user needs a captcha.",
	},
	{
		Name:        "api_v1_collections_collection",
		Method:      http.MethodGet,
		Path:        "/api/v1/collections/collection",
		Category:    "collections",
		Description: "Get a collection by ID.",
		Params: []Param{
			queryParam("collection_id", TypeString, "the UUID of a collection"),
			queryParam("include_links", TypeBoolean, "boolean value(true, false)"),
		},
	},
	{
		Name:        "api_v1_collections_subreddit_collections",
		Method:      http.MethodGet,
		Path:        "/api/v1/collections/subreddit_collections",
		Category:    "collections",
		Description: "Get the current user's subreddit collections.",
	},
	{
		Name:        "api_v1_subreddit_emoji_emoji_name",
		Method:      http.MethodDelete,
		Path:        "/api/v1/:subreddit/emoji/:emoji_name",
		Category:    "emoji",
		Description: "Delete a subreddit emoji by name.",
		Params: []Param{
			subredditPath,
			pathParam("emoji_name", "Emoji name"),
		},
	},
	{
		Name:        "api_v1_subreddit_emojis_all",
		Method:      http.MethodGet,
		Path:        "/api/v1/:subreddit/emojis/all",
		Category:    "emoji",
		Description: "Get all emojis for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_api_flair",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/flair",
		Category:    "flair",
		Description: "Get the current user's flair for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_api_flairlist",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/flairlist",
		Category:    "flair",
		Description: "Get the current user's flair list for a subreddit.",
		Params: []Param{
			subredditPath,
			queryParam("after", TypeString, "fullname of a thing"),
			queryParam("before", TypeString, "fullname of a thing"),
			queryParam("count", TypeInteger, "a positive integer (default: 0)"),
			queryParam("limit", TypeInteger, "the maximum number of items desired (default: 25, maximum: 1000)"),
			queryParam("name", TypeString, "a user by name"),
			queryParam("show", TypeString, "(optional) the string \"all\" Example: 'all'."),
			queryParam("sr_detail", TypeString, "(optional) expand subreddits"),
		},
	},
	{
		Name:        "r_subreddit_api_link_flair",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/link_flair",
		Category:    "flair",
		Description: "Get the current user's link flair for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_api_link_flair_v2",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/link_flair_v2",
		Category:    "flair",
		Description: "Get the current user's link flair for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_api_user_flair",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/user_flair",
		Category:    "flair",
		Description: "Get the current user's user flair for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_api_user_flair_v2",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/user_flair_v2",
		Category:    "flair",
		Description: "Get the current user's user flair for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "api_info",
		Method:      http.MethodGet,
		Path:        "/api/info",
		Category:    "links & comments",
		Description: "Get information about a link or comment.",
		Params: []Param{
			queryParam("id", TypeString, "A comma-separated list of thing fullnames"),
			queryParam("sr_name", TypeString, "A comma-separated list of subreddit names"),
			queryParam("url", TypeString, "a valid URL"),
		},
	},
	{
		Name:        "r_subreddit_api_info",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/info",
		Category:    "links & comments",
		Description: "Get information about a link or comment in a subreddit.",
		Params: []Param{
			subredditPath,
			queryParam("id", TypeString, "A comma-separated list of thing fullnames"),
			queryParam("sr_name", TypeString, "A comma-separated list of subreddit names"),
			queryParam("url", TypeString, "a valid URL"),
		},
	},
	{
		Name:        "api_morechildren",
		Method:      http.MethodGet,
		Path:        "/api/morechildren",
		Category:    "links & comments",
		Description: "Get more children for a link or comment.",
		Params: []Param{
			queryParam("api_type", TypeString, "the string \"json\" Example: 'json'."),
			queryParam("children", TypeString, ""),
			queryParam("depth", TypeInteger, "(optional) an integer"),
			queryParam("id", TypeString, "(optional) id of the associated MoreChildren object"),
			queryParam("limit_children", TypeBoolean, "boolean value (true, false)"),
			queryParam("link_id", TypeString, "fullname of a link"),
			queryParam("sort", TypeString, "one of (confidence, top, new, controversial, old, random, qa, live)"),
		},
	},
	{
		Name:        "api_saved_categories",
		Method:      http.MethodGet,
		Path:        "/api/saved_categories",
		Category:    "links & comments",
		Description: "Get the current user's saved categories.",
	},
	{
		Name:        "req",
		Method:      http.MethodGet,
		Path:        "/req",
		Category:    "listings",
		Description: "Get the current user's requests.",
	},
	{
		Name:        "best",
		Method:      http.MethodGet,
		Path:        "/best",
		Category:    "listings",
		Description: "Get the best posts.",
		Params:      listingParams(),
	},
	{
		Name:        "by_id_names",
		Method:      http.MethodGet,
		Path:        "/by_id/:names",
		Category:    "listings",
		Description: "Get posts by ID.",
		Params: []Param{
			pathParam("names", "Comma-separated list of link fullnames (t3_...)"),
		},
	},
	{
		Name:        "comments_article",
		Method:      http.MethodGet,
		Path:        "/comments/:article",
		Category:    "listings",
		Description: "Get comments for a post.",
		Params: []Param{
			pathParam("article", "ID36 of a link (post), without the t3_ prefix"),
			queryParam("comment", TypeString, "(optional) ID36 of a comment"),
			queryParam("context", TypeInteger, "an integer between 0 and 8"),
			queryParam("depth", TypeInteger, "(optional) an integer"),
			queryParam("limit", TypeInteger, "(optional) an integer"),
			queryParam("showedits", TypeBoolean, "boolean value (true, false)"),
			queryParam("showmedia", TypeBoolean, "boolean value (true, false)"),
			queryParam("showmore", TypeBoolean, "boolean value (true, false)"),
			queryParam("showtitle", TypeBoolean, "boolean value (true, false)"),
			queryParam("sort", TypeString, "one of (confidence, top, new, controversial, old, random, qa, live)"),
			queryParam("sr_detail", TypeString, "(optional) expand subreddits"),
			queryParam("theme", TypeString, "one of (default, dark)"),
			queryParam("threaded", TypeBoolean, "boolean value (true, false)"),
			queryParam("truncate", TypeInteger, "an integer between 0 and 50"),
		},
	},
	{
		Name:        "get_post_comments_details",
		Method:      http.MethodGet,
		Path:        "/comments/:post_id",
		Category:    "listings",
		Description: "Get post details and comments like title, author, score, etc.",
		Params: []Param{
			pathParam("post_id", "Post ID36, e.g. 1m734tx"),
		},
	},
	{
		Name:        "controversial",
		Method:      http.MethodGet,
		Path:        "/controversial",
		Category:    "listings",
		Description: "Get the most controversial posts.",
		Params:      listingParams(),
	},
	{
		Name:        "duplicates_article",
		Method:      http.MethodGet,
		Path:        "/duplicates/:article",
		Category:    "listings",
		Description: "Get duplicate posts.",
		Params: listingParams(
			pathParam("article", "ID36 of a link (post), without the t3_ prefix"),
			queryParam("crossposts_only", TypeBoolean, "boolean value (true, false)"),
			queryParam("sort", TypeString, "one of (num_comments, new)"),
			queryParam("sr", TypeString, "subreddit name"),
		),
	},
	{
		Name:        "hot",
		Method:      http.MethodGet,
		Path:        "/hot",
		Category:    "listings",
		Description: "Get the hottest posts.",
		Params: listingParams(
			queryParam("g", TypeString, geoFilterDesc),
		),
	},
	{
		Name:        "new",
		Method:      http.MethodGet,
		Path:        "/new",
		Category:    "listings",
		Description: "Get the newest posts.",
		Params:      listingParams(),
	},
	{
		Name:        "r_subreddit_comments_article",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/comments/:article",
		Category:    "listings",
		Description: "Get comments for a post in a subreddit.",
		Params: []Param{
			subredditPath,
			pathParam("article", "ID36 of a link (post), without the t3_ prefix"),
			queryParam("comment", TypeString, "(optional) ID36 of a comment"),
			queryParam("context", TypeInteger, "an integer between 0 and 8"),
			queryParam("depth", TypeInteger, "(optional) an integer"),
			queryParam("limit", TypeInteger, "(optional) an integer"),
			queryParam("showedits", TypeBoolean, "boolean value (true, false)"),
			queryParam("showmedia", TypeBoolean, "boolean value (true, false)"),
			queryParam("showmore", TypeBoolean, "boolean value (true, false)"),
			queryParam("showtitle", TypeBoolean, "boolean value (true, false)"),
			queryParam("sort", TypeString, "one of (confidence, top, new, controversial, old, random, qa, live)"),
			queryParam("sr_detail", TypeString, "(optional) expand subreddits"),
			queryParam("theme", TypeString, "one of (default, dark)"),
			queryParam("threaded", TypeBoolean, "boolean value (true, false)"),
			queryParam("truncate", TypeInteger, "an integer between 0 and 50"),
		},
	},
	{
		Name:        "r_subreddit_controversial",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/controversial",
		Category:    "listings",
		Description: "Get the most controversial posts in a subreddit.",
		Params: listingParams(
			subredditPath,
		),
	},
	{
		Name:        "r_subreddit_hot",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/hot",
		Category:    "listings",
		Description: "Get the hottest posts in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("g", TypeString, geoFilterDesc),
		),
	},
	{
		Name:        "r_subreddit_new",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/new",
		Category:    "listings",
		Description: "Get the newest posts in a subreddit.",
		Params: listingParams(
			subredditPath,
		),
	},
	{
		Name:        "r_subreddit_random",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/random",
		Category:    "listings",
		Description: "Get a random post in a subreddit.",
		Params: listingParams(
			subredditPath,
		),
	},
	{
		Name:        "r_subreddit_rising",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/rising",
		Category:    "listings",
		Description: "Get the rising posts in a subreddit.",
		Params: listingParams(
			subredditPath,
		),
	},
	{
		Name:        "r_subreddit_top",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/top",
		Category:    "listings",
		Description: "Get the top posts in a subreddit.",
		Params: listingParams(
			subredditPath,
		),
	},
	{
		Name:        "random",
		Method:      http.MethodGet,
		Path:        "/random",
		Category:    "listings",
		Description: "Get a random post.",
		Params:      listingParams(),
	},
	{
		Name:        "rising",
		Method:      http.MethodGet,
		Path:        "/rising",
		Category:    "listings",
		Description: "Get the rising posts.",
		Params:      listingParams(),
	},
	{
		Name:        "top",
		Method:      http.MethodGet,
		Path:        "/top",
		Category:    "listings",
		Description: "Get the top posts.",
		Params:      listingParams(),
	},
	{
		Name:        "api_saved_media_text",
		Method:      http.MethodGet,
		Path:        "/api/saved_media_text",
		Category:    "misc",
		Description: "Get the text of a saved media.",
		Params: []Param{
			queryParam("url", TypeString, "a valid URL"),
		},
	},
	{
		Name:        "api_v1_scopes",
		Method:      http.MethodGet,
		Path:        "/api/v1/scopes",
		Category:    "misc",
		Description: "Get the current user's scopes.",
		Params: []Param{
			queryParam("scopes", TypeString, "(optional) An OAuth2 scope string"),
		},
	},
	{
		Name:        "r_subreddit_api_saved_media_text",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/saved_media_text",
		Category:    "misc",
		Description: "Get the text of a saved media in a subreddit.",
		Params: []Param{
			subredditPath,
			queryParam("url", TypeString, "a valid URL"),
		},
	},
	{
		Name:        "r_subreddit_about_log",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/log",
		Category:    "moderation",
		Description: "Get the log of a subreddit.",
		Params: []Param{
			subredditPath,
			queryParam("after", TypeString, "a ModAction ID"),
			queryParam("before", TypeString, "a ModAction ID"),
			queryParam("count", TypeInteger, "a positive integer (default: 0)"),
			queryParam("limit", TypeInteger, "the maximum number of items desired (default: 25, maximum: 500)"),
			queryParam("mod", TypeString, "(optional) a moderator filter"),
			queryParam("show", TypeString, "(optional) the string \"all\""),
			queryParam("sr_detail", TypeString, "(optional) expand subreddits"),
			queryParam("type", TypeString, modActionTypeDesc),
		},
	},
	{
		Name:        "r_subreddit_about_edited",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/edited",
		Category:    "moderation",
		Description: "Get the edited posts in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("location", TypeString, ""),
			queryParam("only", TypeString, "one of (links, comments, chat_comments)"),
		),
	},
	{
		Name:        "r_subreddit_about_modqueue",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/modqueue",
		Category:    "moderation",
		Description: "Get the modqueue in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("location", TypeString, ""),
			queryParam("only", TypeString, "one of (links, comments, chat_comments)"),
		),
	},
	{
		Name:        "r_subreddit_about_reports",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/reports",
		Category:    "moderation",
		Description: "Get the reports in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("location", TypeString, ""),
			queryParam("only", TypeString, "one of (links, comments, chat_comments)"),
		),
	},
	{
		Name:        "r_subreddit_about_spam",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/spam",
		Category:    "moderation",
		Description: "Get the spam posts in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("location", TypeString, ""),
			queryParam("only", TypeString, "one of (links, comments, chat_comments)"),
		),
	},
	{
		Name:        "r_subreddit_about_unmoderated",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/unmoderated",
		Category:    "moderation",
		Description: "Get the unmoderated posts in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("location", TypeString, ""),
			queryParam("only", TypeString, "one of (links, comments, chat_comments)"),
		),
	},
	{
		Name:        "r_subreddit_stylesheet",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/stylesheet",
		Category:    "moderation",
		Description: "Get the stylesheet of a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "stylesheet",
		Method:      http.MethodGet,
		Path:        "/stylesheet",
		Category:    "moderation",
		Description: "Get the stylesheet of the current user.",
	},
	{
		Name:        "api_mod_notes1",
		Method:      http.MethodGet,
		Path:        "/api/mod/notes",
		Category:    "modnote",
		Description: "Get the mod notes of a subreddit.",
		Params: []Param{
			queryParam("before", TypeString, "(optional) an encoded string used for pagination with mod notes"),
			queryParam("filter", TypeString, "(optional) one of (NOTE, APPROVAL, REMOVAL, BAN, MUTE, INVITE, SPAM, CONTENT_CHANGE, MOD_ACTION, ALL), to be used for querying specific types of mod notes (default: all)"),
			queryParam("limit", TypeInteger, "(optional) the number of mod notes to return in the response payload (default: 25, max: 100)"),
			queryParam("subreddit", TypeString, "subreddit name"),
			queryParam("user", TypeString, "account username"),
		},
	},
	{
		Name:        "api_mod_notes",
		Method:      http.MethodDelete,
		Path:        "/api/mod/notes",
		Category:    "modnote",
		Description: "Delete a mod note.",
		Params: []Param{
			queryParam("note_id", TypeString, "a unique ID for the note to be deleted (should have a ModNote_ prefix)"),
			queryParam("subreddit", TypeString, "subreddit name"),
			queryParam("user", TypeString, "account username"),
		},
	},
	{
		Name:        "api_mod_notes_recent",
		Method:      http.MethodGet,
		Path:        "/api/mod/notes/recent",
		Category:    "modnote",
		Description: "Get the recent mod notes.",
		Params: []Param{
			queryParam("before", TypeString, "(optional) an encoded string used for pagination with mod notes"),
			queryParam("filter", TypeString, "(optional) one of (NOTE, APPROVAL, REMOVAL, BAN, MUTE, INVITE, SPAM, CONTENT_CHANGE, MOD_ACTION, ALL), to be used for querying specific types of mod notes (default: all)"),
			queryParam("limit", TypeInteger, "(optional) the number of mod notes to return in the response payload (default: 25, max: 100)"),
			queryParam("subreddits", TypeString, "a comma-separated list of subreddits by name"),
			queryParam("user", TypeString, "a comma-separated list of usernames"),
		},
	},
	{
		Name:        "api_multi_mine",
		Method:      http.MethodGet,
		Path:        "/api/multi/mine",
		Category:    "multis",
		Description: "Get the current user's multi.",
		Params: []Param{
			queryParam("expand_srs", TypeBoolean, "boolean value (true, false)"),
		},
	},
	{
		Name:        "api_multi_user_username",
		Method:      http.MethodGet,
		Path:        "/api/multi/user/:username",
		Category:    "multis",
		Description: "Get a user's multi.",
		Params: []Param{
			pathParam("username", "Reddit username without the u/ prefix"),
			queryParam("expand_srs", TypeBoolean, "boolean value (true, false)"),
		},
	},
	{
		Name:        "api_multi_multipath1",
		Method:      http.MethodGet,
		Path:        "/api/multi/:multipath",
		Category:    "multis",
		Description: "Get a multi.",
		Params: []Param{
			reservedPathParam("multipath", "Multireddit path, e.g. user/spez/m/cats"),
			queryParam("expand_srs", TypeBoolean, "boolean value (true, false)"),
		},
	},
	{
		Name:        "api_multi_multipath",
		Method:      http.MethodDelete,
		Path:        "/api/multi/:multipath",
		Category:    "multis",
		Description: "Delete a multireddit.",
		Params: []Param{
			reservedPathParam("multipath", "Multireddit path, e.g. user/spez/m/cats"),
			queryParam("expand_srs", TypeBoolean, "boolean value (true, false)"),
		},
	},
	{
		Name:        "api_multi_multipath_description",
		Method:      http.MethodGet,
		Path:        "/api/multi/:multipath/description",
		Category:    "multis",
		Description: "Get a multi's description.",
		Params: []Param{
			reservedPathParam("multipath", "Multireddit path, e.g. user/spez/m/cats"),
		},
	},
	{
		Name:        "api_multi_multipath_rsubreddit1",
		Method:      http.MethodGet,
		Path:        "/api/multi/:multipath/r/:subreddit",
		Category:    "multis",
		Description: "Get a multi's subreddit.",
		Params: []Param{
			reservedPathParam("multipath", "Multireddit path, e.g. user/spez/m/cats"),
			subredditPath,
		},
	},
	{
		Name:        "api_multi_multipath_rsubreddit",
		Method:      http.MethodDelete,
		Path:        "/api/multi/:multipath/r/:subreddit",
		Category:    "multis",
		Description: "Remove a subreddit from a multireddit.",
		Params: []Param{
			reservedPathParam("multipath", "Multireddit path, e.g. user/spez/m/cats"),
			subredditPath,
		},
	},
	{
		Name:        "api_mod_conversations",
		Method:      http.MethodGet,
		Path:        "/api/mod/conversations",
		Category:    "new modmail",
		Description: "Get the mod conversations.",
		Params: []Param{
			queryParam("after", TypeString, "A ModMail Converstion ID, in the form ModmailConversation_<id>"),
			queryParam("entity", TypeString, "A comma-separated list of subreddit names"),
			queryParam("limit", TypeInteger, "an integer between 1 and 100 (default: 25)"),
			queryParam("sort", TypeString, "one of (recent, mod, user, unread)"),
			queryParam("state", TypeString, "one of (all, appeals, notifications, inbox, filtered, inprogress, mod, archived, default, highlighted, join_requests, new)"),
		},
	},
	{
		Name:        "api_mod_conversations_conversation_id",
		Method:      http.MethodGet,
		Path:        "/api/mod/conversations/:conversation_id",
		Category:    "new modmail",
		Description: "Get a mod conversation.",
		Params: []Param{
			pathParam("conversation_id", "Modmail conversation ID"),
			queryParam("markRead", TypeBoolean, "boolean value (true, false)"),
		},
	},
	{
		Name:        "api_mod_conversations_conversation_id_highlight",
		Method:      http.MethodDelete,
		Path:        "/api/mod/conversations/:conversation_id/highlight",
		Category:    "new modmail",
		Description: "Remove the highlight from a mod conversation.",
		Params: []Param{
			pathParam("conversation_id", "Modmail conversation ID"),
		},
	},
	{
		Name:        "api_mod_conversations_conversation_id_unarchive",
		Method:      http.MethodPost,
		Path:        "/api/mod/conversations/:conversation_id/unarchive",
		Category:    "new modmail",
		Description: "Unarchive a mod conversation.",
		Params: []Param{
			pathParam("conversation_id", "Modmail conversation ID"),
		},
	},
	{
		Name:        "api_mod_conversations_conversation_id_unban",
		Method:      http.MethodPost,
		Path:        "/api/mod/conversations/:conversation_id/unban",
		Category:    "new modmail",
		Description: "Unban a mod conversation.",
		Params: []Param{
			pathParam("conversation_id", "Modmail conversation ID"),
		},
	},
	{
		Name:        "api_mod_conversations_conversation_id_unmute",
		Method:      http.MethodPost,
		Path:        "/api/mod/conversations/:conversation_id/unmute",
		Category:    "new modmail",
		Description: "Unmute a mod conversation.",
		Params: []Param{
			pathParam("conversation_id", "Modmail conversation ID"),
		},
	},
	{
		Name:        "api_mod_conversations_conversation_id_user",
		Method:      http.MethodGet,
		Path:        "/api/mod/conversations/:conversation_id/user",
		Category:    "new modmail",
		Description: "Get a mod conversation's user.",
		Params: []Param{
			pathParam("conversation_id", "Modmail conversation ID"),
		},
	},
	{
		Name:        "api_mod_conversations_subreddits",
		Method:      http.MethodGet,
		Path:        "/api/mod/conversations/subreddits",
		Category:    "new modmail",
		Description: "Get the mod conversations' subreddits.",
	},
	{
		Name:        "api_mod_conversations_unread_count",
		Method:      http.MethodGet,
		Path:        "/api/mod/conversations/unread/count",
		Category:    "new modmail",
		Description: "Get the unread count of the mod conversations.",
	},
	{
		Name:        "message_inbox",
		Method:      http.MethodGet,
		Path:        "/message/inbox",
		Category:    "private messages",
		Description: "Get the current user's inbox.",
		Params: listingParams(
			queryParam("mark", TypeString, "one of (true, false)"),
			queryParam("mid", TypeString, ""),
		),
	},
	{
		Name:        "message_sent",
		Method:      http.MethodGet,
		Path:        "/message/sent",
		Category:    "private messages",
		Description: "Get the current user's sent messages.",
		Params: listingParams(
			queryParam("mark", TypeString, "one of (true, false)"),
			queryParam("mid", TypeString, ""),
		),
	},
	{
		Name:        "message_unread",
		Method:      http.MethodGet,
		Path:        "/message/unread",
		Category:    "private messages",
		Description: "Get the current user's unread messages.",
		Params: listingParams(
			queryParam("mark", TypeString, "one of (true, false)"),
			queryParam("mid", TypeString, ""),
		),
	},
	{
		Name:        "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Category:    "search",
		Description: "Search for posts, comments, and users.",
		Params: listingParams(
			queryParam("category", TypeString, "a string no longer than 5 characters"),
			queryParam("include_facets", TypeBoolean, "boolean value (true, false)"),
			queryParam("q", TypeString, "a string no longer than 512 characters"),
			queryParam("restrict_sr", TypeBoolean, "boolean value (true, false)"),
			queryParam("sort", TypeString, "one of (relevance, hot, top, new, comments)"),
			queryParam("t", TypeString, "one of (hour, day, week, month, year, all)"),
			queryParam("type", TypeString, "(optional) A comma-separated list of result types (sr, link, user)"),
		),
	},
	{
		Name:        "r_subreddit_search",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/search",
		Category:    "search",
		Description: "Search for posts, comments, and users in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("category", TypeString, "a string no longer than 5 characters"),
			queryParam("include_facets", TypeBoolean, "boolean value (true, false)"),
			queryParam("q", TypeString, "a string no longer than 512 characters"),
			queryParam("restrict_sr", TypeBoolean, "boolean value (true, false)"),
			queryParam("sort", TypeString, "one of (relevance, hot, top, new, comments)"),
			queryParam("t", TypeString, "one of (hour, day, week, month, year, all)"),
			queryParam("type", TypeString, "(optional) A comma-separated list of result types (sr, link, user)"),
		),
	},
	{
		Name:        "api_search_reddit_names",
		Method:      http.MethodGet,
		Path:        "/api/search_reddit_names",
		Category:    "subreddits",
		Description: "Search for subreddits.",
		Params: []Param{
			queryParam("exact", TypeBoolean, "boolean value (true, false) Example: 'false'."),
			queryParam("include_over_18", TypeBoolean, "boolean value (true, false) Example: 'true'."),
			queryParam("include_unadvertisable", TypeBoolean, "boolean value (true, false) Example: 'true'."),
			queryParam("query", TypeString, "a string up to 50 characters long, consisting of printable characters"),
			queryParam("search_query_id", TypeString, "a UUID"),
			queryParam("typeahead_active", TypeBoolean, "boolean value or None Example: 'None'."),
		},
	},
	{
		Name:        "api_subreddit_autocomplete",
		Method:      http.MethodGet,
		Path:        "/api/subreddit_autocomplete",
		Category:    "subreddits",
		Description: "Search for subreddits.",
		Params: []Param{
			queryParam("include_over_18", TypeBoolean, "boolean value (true, false)"),
			queryParam("include_profiles", TypeBoolean, "boolean value (true, false)"),
			queryParam("query", TypeString, "a string up to 25 characters long, consisting of printable characters."),
		},
	},
	{
		Name:        "api_subreddit_autocomplete_v2",
		Method:      http.MethodGet,
		Path:        "/api/subreddit_autocomplete_v2",
		Category:    "subreddits",
		Description: "Search for subreddits.",
		Params: []Param{
			queryParam("include_over_18", TypeBoolean, "boolean value (true, false)"),
			queryParam("include_profiles", TypeBoolean, "boolean value (true, false)"),
			queryParam("limit", TypeInteger, "an integer between 1 and 10 (default: 5)"),
			queryParam("query", TypeString, "a string up to 25 characters long, consisting of printable characters."),
			queryParam("search_query_id", TypeString, "a UUID"),
			queryParam("typeahead_active", TypeBoolean, "boolean value (true, false) or None"),
		},
	},
	{
		Name:        "api_v1_subreddit_post_requirements",
		Method:      http.MethodGet,
		Path:        "/api/v1/:subreddit/post_requirements",
		Category:    "subreddits",
		Description: "Get the post requirements for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_about_banned",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/banned",
		Category:    "subreddits",
		Description: "Get the banned users in a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("user", TypeString, "A valid, existing reddit username"),
		),
	},
	{
		Name:        "r_subreddit_about",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about",
		Category:    "subreddits",
		Description: "Get the about information for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_about_edit",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/edit",
		Category:    "subreddits",
		Description: "Get the edit information for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_about_contributors",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/contributors",
		Category:    "subreddits",
		Description: "Get the contributors for a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("user", TypeString, "A valid, existing reddit username"),
		),
	},
	{
		Name:        "r_subreddit_about_moderators",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/moderators",
		Category:    "subreddits",
		Description: "Get the moderators for a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("user", TypeString, "A valid, existing reddit username"),
		),
	},
	{
		Name:        "r_subreddit_about_muted",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/muted",
		Category:    "subreddits",
		Description: "Get the muted users for a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("user", TypeString, "A valid, existing reddit username"),
		),
	},
	{
		Name:        "r_subreddit_about_rules",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/rules",
		Category:    "subreddits",
		Description: "Get the rules for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_about_sticky",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/sticky",
		Category:    "subreddits",
		Description: "Get the sticky posts for a subreddit.",
		Params: []Param{
			subredditPath,
			queryParam("num", TypeInteger, "an integer between 1 and 2 (default: 1)"),
		},
	},
	{
		Name:        "r_subreddit_about_traffic",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/traffic",
		Category:    "subreddits",
		Description: "Get the traffic for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_about_wikibanned",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/wikibanned",
		Category:    "subreddits",
		Description: "Get the wikibanned users for a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("user", TypeString, "A valid, existing reddit username"),
		),
	},
	{
		Name:        "r_subreddit_about_wikicontributors",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/about/wikicontributors",
		Category:    "subreddits",
		Description: "Get the wikicontributors for a subreddit.",
		Params: listingParams(
			subredditPath,
			queryParam("user", TypeString, "A valid, existing reddit username"),
		),
	},
	{
		Name:        "r_subreddit_api_submit_text",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/submit_text",
		Category:    "subreddits",
		Description: "Get the submit text for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "subreddits_mine_where",
		Method:      http.MethodGet,
		Path:        "/subreddits/mine/:where",
		Category:    "subreddits",
		Description: "Get the subreddits the current user has access to.",
		Params: listingParams(
			pathParam("where", "one of (subscriber, contributor, moderator, streams)"),
		),
	},
	{
		Name:        "subreddits_search",
		Method:      http.MethodGet,
		Path:        "/subreddits/search",
		Category:    "subreddits",
		Description: "Search for subreddits.",
		Params: listingParams(
			queryParam("q", TypeString, "a search query"),
			queryParam("search_query_id", TypeString, "a UUID"),
			queryParam("show_users", TypeBoolean, "boolean value (true, false)"),
			queryParam("sort", TypeString, "one of (relevance, activity)"),
			queryParam("typeahead_active", TypeBoolean, "boolean value (true, false) or None"),
		),
	},
	{
		Name:        "subreddits_where",
		Method:      http.MethodGet,
		Path:        "/subreddits/:where",
		Category:    "subreddits",
		Description: "Get the subreddits the current user has access to.",
		Params: listingParams(
			pathParam("where", "one of (popular, new, gold, default)"),
		),
	},
	{
		Name:        "api_user_data_by_account_ids",
		Method:      http.MethodGet,
		Path:        "/api/user_data_by_account_ids",
		Category:    "users",
		Description: "Get the user data by account IDs.",
		Params: []Param{
			queryParam("ids", TypeString, "A comma-separated list of account fullnames"),
		},
	},
	{
		Name:        "api_username_available",
		Method:      http.MethodGet,
		Path:        "/api/username_available",
		Category:    "users",
		Description: "Check if a username is available.",
		Params: []Param{
			queryParam("user", TypeString, "a valid, unused, username"),
		},
	},
	{
		Name:        "api_v1_me_friends_username1",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/friends/:username",
		Category:    "users",
		Description: "Get a user's friends.",
		Params: []Param{
			pathParam("username", "Reddit username without the u/ prefix"),
			queryParam("id", TypeString, "A valid, existing reddit username"),
		},
	},
	{
		Name:        "api_v1_me_friends_username",
		Method:      http.MethodDelete,
		Path:        "/api/v1/me/friends/:username",
		Category:    "users",
		Description: "Remove a user from the current user's friends.",
		Params: []Param{
			pathParam("username", "Reddit username without the u/ prefix"),
			queryParam("id", TypeString, "A valid, existing reddit username"),
		},
	},
	{
		Name:        "api_v1_user_username_trophies",
		Method:      http.MethodGet,
		Path:        "/api/v1/user/:username/trophies",
		Category:    "users",
		Description: "Get a user's trophies.",
		Params: []Param{
			pathParam("username", "Reddit username without the u/ prefix"),
			queryParam("id", TypeString, "A valid, existing reddit username"),
		},
	},
	{
		Name:        "user_username_about",
		Method:      http.MethodGet,
		Path:        "/user/:username/about",
		Category:    "users",
		Description: "Get the about information for a user.",
		Params: []Param{
			pathParam("username", "Reddit username without the u/ prefix"),
		},
	},
	{
		Name:        "user_username_where",
		Method:      http.MethodGet,
		Path:        "/user/:username/:where",
		Category:    "users",
		Description: "Get the user's posts or comments.",
		Params: listingParams(
			pathParam("username", "Reddit username without the u/ prefix"),
			pathParam("where", "one of (overview, submitted, comments, upvoted, downvoted, hidden, saved, gilded)"),
			queryParam("context", TypeInteger, "an integer between 2 and 10"),
			queryParam("sort", TypeString, "one of (hot, new, top, controversial)"),
			queryParam("t", TypeString, "one of (hour, day, week, month, year, all)"),
			queryParam("type", TypeString, "one of (links, comments)"),
		),
	},
	{
		Name:        "users_search",
		Method:      http.MethodGet,
		Path:        "/users/search",
		Category:    "users",
		Description: "Search for users.",
		Params: listingParams(
			queryParam("q", TypeString, "a search query"),
			queryParam("search_query_id", TypeString, "a UUID"),
			queryParam("sort", TypeString, "one of (relevance, activity)"),
			queryParam("typeahead_active", TypeBoolean, "boolean value (true, false) or None"),
		),
	},
	{
		Name:        "users_where",
		Method:      http.MethodGet,
		Path:        "/users/:where",
		Category:    "users",
		Description: "Get the user's posts or comments.",
		Params: listingParams(
			pathParam("where", "one of (popular, new)"),
		),
	},
	{
		Name:        "r_subreddit_api_widgets",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/widgets",
		Category:    "widgets",
		Description: "Get the widgets for a subreddit.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_api_widget_order_section",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/api/widget_order/:section",
		Category:    "widgets",
		Description: "Get the widget order for a subreddit.",
		Params: []Param{
			subredditPath,
			pathParam("section", "Widget section (sidebar or topbar)"),
		},
	},
	{
		Name:        "r_subreddit_api_widget_widget_id",
		Method:      http.MethodDelete,
		Path:        "/r/:subreddit/api/widget/:widget_id",
		Category:    "widgets",
		Description: "Delete a widget.",
		Params: []Param{
			subredditPath,
			pathParam("widget_id", "Widget ID"),
		},
	},
	{
		Name:        "r_subreddit_wiki_discussions_page",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/wiki/discussions/:page",
		Category:    "wiki",
		Description: "Get the discussions for a wiki page.",
		Params: listingParams(
			subredditPath,
			pathParam("page", "Wiki page name"),
		),
	},
	{
		Name:        "r_subreddit_wiki_page",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/wiki/:page",
		Category:    "wiki",
		Description: "Get a wiki page.",
		Params: []Param{
			subredditPath,
			pathParam("page", "Wiki page name"),
			queryParam("v", TypeString, "a wiki revision ID"),
			queryParam("v2", TypeString, "a wiki revision ID"),
		},
	},
	{
		Name:        "r_subreddit_wiki_pages",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/wiki/pages",
		Category:    "wiki",
		Description: "Get the pages for a wiki.",
		Params: []Param{
			subredditPath,
		},
	},
	{
		Name:        "r_subreddit_wiki_revisions",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/wiki/revisions",
		Category:    "wiki",
		Description: "Get the revisions for a wiki.",
		Params: listingParams(
			subredditPath,
		),
	},
	{
		Name:        "r_subreddit_wiki_revisions_page",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/wiki/revisions/:page",
		Category:    "wiki",
		Description: "Get the revisions for a wiki page.",
		Params: listingParams(
			subredditPath,
			pathParam("page", "Wiki page name"),
		),
	},
	{
		Name:        "r_subreddit_wiki_settings_page",
		Method:      http.MethodGet,
		Path:        "/r/:subreddit/wiki/settings/:page",
		Category:    "wiki",
		Description: "Get the settings for a wiki page.",
		Params: []Param{
			subredditPath,
			pathParam("page", "Wiki page name"),
		},
	},
}
