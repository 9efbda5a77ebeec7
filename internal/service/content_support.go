package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/repository/contract"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/pkg/richtext"
	"industrial-site-be/pkg/slug"

	"github.com/google/uuid"
)

// Content kinds as they appear in events, cache keys and log details.
const (
	KindService    = "service"
	KindSubService = "sub_service"
	KindMarket     = "market"
	KindProject    = "project"
	KindNews       = "news"
	KindJobPosting = "job_posting"
	KindLocation   = "location"
	KindTeamMember = "team_member"
)

// ContentAdmin is the CRUD surface every admin content section exposes.
type ContentAdmin[Req any, Resp any] interface {
	List(ctx context.Context) ([]*Resp, error)
	Get(ctx context.Context, id uuid.UUID) (*Resp, error)
	Create(ctx context.Context, req *Req) (*Resp, error)
	Update(ctx context.Context, id uuid.UUID, req *Req) (*Resp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// parseDocument validates an authored document. Malformed input is rejected rather than emptied;
// repairs are applied silently. An omitted document is the empty document.
func parseDocument(raw json.RawMessage, field string) (richtext.Document, error) {
	doc, err := richtext.Inspect(raw)
	if err != nil {
		return richtext.EmptyDocument(), apperror.Validation("malformed document", map[string]string{
			field: err.Error(),
		})
	}
	return doc, nil
}

func parseOptionalDocument(raw json.RawMessage, field string) (*richtext.Document, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	doc, err := parseDocument(raw, field)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func isAbsent(raw json.RawMessage) bool {
	s := string(raw)
	return len(raw) == 0 || s == "null"
}

// resolveSlug uses the requested slug or derives one from the title.
func resolveSlug(requested, title string) (string, error) {
	s := requested
	if s == "" {
		s = slug.Derive(title)
	}
	if s == "" {
		return "", apperror.Validation("slug cannot be derived from title", map[string]string{
			"slug": "title must contain letters or digits",
		})
	}
	return s, nil
}

// ensureSlugFree fails with Conflict when another live record already uses s.
func ensureSlugFree[E any](ctx context.Context, repo contract.Repository[E], s string, self uuid.UUID, scope ...specification.Specification) error {
	specs := append([]specification.Specification{specification.BySlug{Slug: s}}, scope...)
	if self != uuid.Nil {
		specs = append(specs, specification.ExcludeID{ID: self})
	}
	n, err := repo.Count(ctx, specs...)
	if err != nil {
		return err
	}
	if n > 0 {
		return slugConflict(s)
	}
	return nil
}

// slugWriteError reports a write rejected by the slug unique index the same way ensureSlugFree
// reports a taken slug. Concurrent creates can both pass the check.
func slugWriteError(err error, s string) error {
	if errors.Is(err, contract.ErrDuplicateKey) {
		return slugConflict(s)
	}
	return err
}

func slugConflict(s string) error {
	return apperror.Conflict(fmt.Sprintf("slug %q is already in use", s))
}

// stampPublished sets the publication time the first time a record is published.
// Unpublishing keeps the timestamp.
func stampPublished(published bool, current *time.Time, now time.Time) *time.Time {
	if published && current == nil {
		return &now
	}
	return current
}

func notFound(what string) error {
	return apperror.NotFound(what + " not found")
}

func utcNow() time.Time {
	return time.Now().UTC()
}
