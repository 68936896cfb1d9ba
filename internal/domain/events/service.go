package events

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]bson.M, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListPage(ctx context.Context, opts PageOptions) ([]bson.M, error) {
	return s.repo.ListPage(ctx, opts)
}

func (s *Service) Get(ctx context.Context, id string) (bson.M, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, body map[string]any) (string, error) {
	return s.repo.Insert(ctx, NewDocument(body))
}

// Update merges the request body over the stored document and replaces the
// mapped fields. A zero modified count reports ErrNotFound even when the
// document exists and the submitted values equal the stored ones; callers
// cannot tell the two apart, matching the documented API behavior.
func (s *Service) Update(ctx context.Context, id string, body map[string]any) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	modified, err := s.repo.Update(ctx, id, MergeUpdate(existing, body))
	if err != nil {
		return err
	}
	if modified != 1 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted != 1 {
		return ErrNotFound
	}
	return nil
}

// PageOptions is a skip/limit window over the events collection.
type PageOptions struct {
	Limit      int64
	Skip       int64
	SortLatest bool
}

// ParsePageOptions reads type/limit/page query parameters. limit defaults to
// 10 and page to 1 when absent, non-numeric, or zero; negative values are
// passed through as unspecified input except that skip is floored at 0, which
// the store requires. type=latest sorts by schedule descending.
func ParsePageOptions(values url.Values) PageOptions {
	limit := parseIntDefault(values.Get("limit"), 10)
	page := parseIntDefault(values.Get("page"), 1)

	skip := (page - 1) * limit
	if skip < 0 {
		skip = 0
	}

	return PageOptions{
		Limit:      limit,
		Skip:       skip,
		SortLatest: values.Get("type") == "latest",
	}
}

// parseIntDefault treats zero the same as absent or non-numeric input, so
// limit=0 cannot turn into an unbounded query.
func parseIntDefault(raw string, fallback int64) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed == 0 {
		return fallback
	}
	return parsed
}
