package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/oklog/ulid/v2"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var errBadCursor = errors.New("invalid cursor")

// historyPage is one page request over operation history. Before is the ID
// of the last operation already seen, or empty for the newest page.
type historyPage struct {
	Before string
	Limit  int
}

// parseHistoryPage reads ?limit and ?cursor. A missing or non-positive limit
// falls back to 50, and anything above 200 is capped. The cursor must decode
// to an operation ID.
func parseHistoryPage(r *http.Request) (historyPage, error) {
	p := historyPage{Limit: defaultLimit}
	q := r.URL.Query()

	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		p.Limit = min(n, maxLimit)
	}

	if c := q.Get("cursor"); c != "" {
		raw, err := base64.RawURLEncoding.DecodeString(c)
		if err != nil {
			return p, errBadCursor
		}
		id, err := ulid.ParseStrict(string(raw))
		if err != nil {
			return p, errBadCursor
		}
		p.Before = id.String()
	}
	return p, nil
}

// nextCursor encodes the ID of the last operation on a page.
func nextCursor(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}
