package http

import (
	"net/http"
	"strings"
)

// htmxRequestHeader is set by htmx on every request it issues.
const htmxRequestHeader = "HX-Request"

func isHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}
