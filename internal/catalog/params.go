package catalog

const geoFilterDesc = "geo filter for popular listings, one of (GLOBAL, US, AR, AU, BG, CA, CL, CO, HR, CZ, FI, FR, DE, GR, HU, IS, IN, IE, IT, JP, MY, MX, NZ, PH, PL, PT, PR, RO, RS, SG, ES, SE, TW, TH, TR, GB) or a US state code such as US_CA"

const modActionTypeDesc = "a moderator action type such as banuser, removelink, approvecomment, addmoderator, wikirevise, sticky, lock, muteuser, addnote"

var subredditPath = pathParam("subreddit", "Subreddit name without the r/ prefix")

func pathParam(name, desc string) Param {
	return Param{Name: name, Type: TypeString, Description: desc, Required: true, In: InPath}
}

func reservedPathParam(name, desc string) Param {
	p := pathParam(name, desc)
	p.Reserved = true
	return p
}

func queryParam(name string, typ ParamType, desc string) Param {
	return Param{Name: name, Type: typ, Description: desc, In: InQuery}
}

func requiredQuery(name string, typ ParamType, desc string) Param {
	p := queryParam(name, typ, desc)
	p.Required = true
	return p
}

func bodyParam(name string, typ ParamType, desc string) Param {
	return Param{Name: name, Type: typ, Description: desc, In: InBody}
}

func requiredBody(name string, typ ParamType, desc string) Param {
	p := bodyParam(name, typ, desc)
	p.Required = true
	return p
}

// listingParams appends Reddit's standard Listing pagination parameters to extra.
func listingParams(extra ...Param) []Param {
	return append(extra,
		queryParam("after", TypeString, "fullname of a thing"),
		queryParam("before", TypeString, "fullname of a thing"),
		queryParam("count", TypeInteger, "a positive integer (default: 0)"),
		queryParam("limit", TypeInteger, "the maximum number of items desired (default: 25, maximum: 100)"),
		queryParam("show", TypeString, `(optional) the string "all"`),
		queryParam("sr_detail", TypeString, "(optional) expand subreddits"),
	)
}

var (
	prefBoolFields = []string{
		"activity_relevant_ads", "allow_clicktracking", "beta", "clickgadget",
		"collapse_read_messages", "compress", "creddit_autorenew", "domain_details",
		"email_chat_request", "email_comment_reply", "email_community_discovery",
		"email_digests", "email_messages", "email_new_user_welcome", "email_post_reply",
		"email_private_message", "email_unsubscribe_all", "email_upvote_comment",
		"email_upvote_post", "email_user_new_follower", "email_username_mention",
		"enable_default_themes", "enable_followers", "feed_recommendations_enabled",
		"hide_ads", "hide_downs", "hide_from_robots", "hide_ups", "highlight_controversial",
		"highlight_new_comments", "ignore_suggested_sort", "in_redesign_beta", "label_nsfw",
		"legacy_search", "live_bar_recommendations_enabled", "live_orangereds",
		"mark_messages_read", "monitor_mentions", "newwindow", "nightmode", "no_profanity",
		"over_18", "private_feeds", "profile_opt_out", "public_votes", "research",
		"search_include_over_18", "send_crosspost_messages", "send_welcome_messages",
		"show_flair", "show_gold_expiration", "show_link_flair",
		"show_location_based_recommendations", "show_presence", "show_promote",
		"show_stylesheets", "show_trending", "show_twitter", "sms_notifications_enabled",
		"store_visits", "third_party_data_personalized_ads", "third_party_personalized_ads",
		"third_party_site_data_personalized_ads", "third_party_site_data_personalized_content",
		"threaded_messages", "threaded_modmail", "top_karma_subreddits", "use_global_defaults",
		"video_autoplay", "whatsapp_comment_reply", "whatsapp_enabled",
	}
	prefNumberFields = []string{"min_comment_score", "min_link_score", "num_comments", "numsites"}
	prefStringFields = [][2]string{
		{"accept_pms", "one of (everyone, whitelisted)"},
		{"bad_comment_autocollapse", "one of (off, low, medium, high)"},
		{"country_code", "two letter country code, e.g. ZZ"},
		{"default_comment_sort", "one of (confidence, top, new, controversial, old, random, qa, live)"},
		{"g", geoFilterDesc},
		{"lang", "a valid IETF language tag, e.g. en"},
		{"media", "one of (on, off, subreddit)"},
		{"media_preview", "one of (on, off, subreddit)"},
		{"organic", "organic"},
		{"other_theme", "subreddit name of a theme"},
		{"survey_last_seen_time", "an integer timestamp"},
		{"theme_selector", "subreddit name of a theme"},
	}
)

// prefsParams lists the fields accepted by PATCH /api/v1/me/prefs.
func prefsParams() []Param {
	params := make([]Param, 0, len(prefBoolFields)+len(prefNumberFields)+len(prefStringFields))
	for _, f := range prefStringFields {
		params = append(params, bodyParam(f[0], TypeString, f[1]))
	}
	for _, name := range prefBoolFields {
		params = append(params, bodyParam(name, TypeBoolean, name))
	}
	for _, name := range prefNumberFields {
		params = append(params, bodyParam(name, TypeNumber, name))
	}
	return params
}
