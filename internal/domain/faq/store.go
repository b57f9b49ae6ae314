package faq

import (
	"context"
	"time"
)

// StateStore keeps the expanded set of each browser session.
type StateStore interface {
	LoadExpanded(ctx context.Context, sessionID string) (ExpandedSet, error)
	SaveExpanded(ctx context.Context, sessionID string, set ExpandedSet, ttl time.Duration) error
}
