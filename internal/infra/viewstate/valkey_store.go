package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/hireup-faq/internal/domain/faq"
)

// ValkeyStore keeps expanded sets in a Valkey-compatible database so that
// several replicas can serve the same session.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "faq"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) LoadExpanded(ctx context.Context, sessionID string) (faq.ExpandedSet, error) {
	if sessionID == "" {
		return nil, nil
	}
	key := s.sessionKey(sessionID)
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	var set faq.ExpandedSet
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		// Drop the corrupt record so the next toggle starts from an empty set.
		decodeErr := fmt.Errorf("decode session %s: %w", sessionID, err)
		if delErr := s.client.Do(ctx, s.client.B().Del().Key(key).Build()).Error(); delErr != nil {
			return nil, errors.Join(decodeErr, fmt.Errorf("drop session %s: %w", sessionID, delErr))
		}
		return nil, decodeErr
	}
	return set, nil
}

func (s *ValkeyStore) SaveExpanded(ctx context.Context, sessionID string, set faq.ExpandedSet, ttl time.Duration) error {
	if sessionID == "" {
		return nil
	}
	key := s.sessionKey(sessionID)
	if len(set) == 0 {
		return s.client.Do(ctx, s.client.B().Del().Key(key).Build()).Error()
	}
	payload, err := json.Marshal(set)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(key).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

// Close releases the underlying client.
func (s *ValkeyStore) Close() error {
	s.client.Close()
	return nil
}

func (s *ValkeyStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, sessionID)
}

var _ faq.StateStore = (*ValkeyStore)(nil)
