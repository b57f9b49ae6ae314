package faq

import "net/url"

// QueryParam is the URL key carrying the search text.
const QueryParam = "search"

// Location builds the page URL for query; an empty query yields the bare path.
func Location(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + url.Values{QueryParam: {query}}.Encode()
}

// ResolveNavigation decides where a search submission leads. text is the
// search box content and active the parameter currently in the URL.
func ResolveNavigation(path, text, active string) Navigation {
	if text == "" && active == "" {
		return Navigation{}
	}
	return Navigation{Navigate: true, Location: Location(path, text)}
}
