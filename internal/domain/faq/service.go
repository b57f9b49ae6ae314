package faq

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/hireup-faq/pkg/errors"
)

// Service is the controller behind the FAQ page. It owns the dataset and the
// per-session expanded sets; the search text lives in the URL.
type Service interface {
	Metadata() Metadata
	Location(query string) string
	Page(ctx context.Context, sessionID, query string) (Page, error)
	Search(query string) []Item
	SubmitSearch(text, active string) Navigation
	Toggle(ctx context.Context, sessionID string, id int) (ExpandedSet, error)
	ToggleAll(ctx context.Context, sessionID string) (ExpandedSet, error)
}

type service struct {
	cfg    Config
	items  []Item
	store  StateStore
	logger *slog.Logger
}

// NewService wires up the FAQ domain over the built-in dataset.
func NewService(cfg Config, store StateStore, logger *slog.Logger) Service {
	return newServiceWithItems(cfg, Items(), store, logger)
}

func newServiceWithItems(cfg Config, items []Item, store StateStore, logger *slog.Logger) *service {
	if cfg.Path == "" {
		cfg.Path = "/faq"
	}
	return &service{
		cfg:    cfg,
		items:  items,
		store:  store,
		logger: logger.With("component", "faq.service"),
	}
}

func (s *service) Metadata() Metadata {
	return Metadata{Title: s.cfg.Title, Description: s.cfg.Description}
}

func (s *service) Location(query string) string {
	return Location(s.cfg.Path, query)
}

// Page builds the render model for the current URL. Store failures degrade to
// a fully collapsed list.
func (s *service) Page(ctx context.Context, sessionID, query string) (Page, error) {
	expanded, err := s.loadExpanded(ctx, sessionID)
	if err != nil {
		s.logger.Warn("faq state load failed, rendering collapsed", "error", err)
		expanded = nil
	}

	visible := Filter(s.items, query)
	views := make([]ItemView, 0, len(visible))
	for _, item := range visible {
		views = append(views, ItemView{Item: item, Expanded: expanded.Contains(item.ID)})
	}

	return Page{
		Metadata:    s.Metadata(),
		Path:        s.cfg.Path,
		Query:       query,
		Items:       views,
		AllExpanded: expanded.AllExpanded(s.items),
	}, nil
}

func (s *service) Search(query string) []Item {
	return Filter(s.items, query)
}

func (s *service) SubmitSearch(text, active string) Navigation {
	return ResolveNavigation(s.cfg.Path, text, active)
}

func (s *service) Toggle(ctx context.Context, sessionID string, id int) (ExpandedSet, error) {
	if !containsID(s.items, id) {
		return nil, apperrors.Wrap("invalid_input", "unknown faq item", nil)
	}
	return s.update(ctx, sessionID, func(set ExpandedSet) ExpandedSet {
		return set.Toggle(id)
	})
}

func (s *service) ToggleAll(ctx context.Context, sessionID string) (ExpandedSet, error) {
	return s.update(ctx, sessionID, func(set ExpandedSet) ExpandedSet {
		return set.ToggleAll(s.items)
	})
}

func (s *service) update(ctx context.Context, sessionID string, mutate func(ExpandedSet) ExpandedSet) (ExpandedSet, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, apperrors.Wrap("invalid_input", "session is required", nil)
	}
	current, err := s.loadExpanded(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Wrap("state_error", "load expanded items", err)
	}
	next := mutate(current)
	if err := s.store.SaveExpanded(ctx, sessionID, next, s.cfg.StateTTL); err != nil {
		return nil, apperrors.Wrap("state_error", "save expanded items", err)
	}
	s.logger.Debug("faq state updated", "session", sessionID, "expanded", len(next))
	return next, nil
}

func (s *service) loadExpanded(ctx context.Context, sessionID string) (ExpandedSet, error) {
	if sessionID == "" {
		return nil, nil
	}
	set, err := s.store.LoadExpanded(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Ids outside the dataset can only come from a foreign writer; drop them.
	out := set[:0:0]
	for _, id := range set {
		if containsID(s.items, id) && !out.Contains(id) {
			out = append(out, id)
		}
	}
	return out, nil
}
