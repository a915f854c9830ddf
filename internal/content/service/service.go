// Package service owns the only code path allowed to read or write the
// canonical content document. It isolates the rest of the app from the
// storage backend's existence.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/khaoyai-getaway/content-service/internal/content"
	"github.com/khaoyai-getaway/content-service/internal/content/repository"
	"github.com/khaoyai-getaway/content-service/pkg/logger"
	"github.com/khaoyai-getaway/content-service/pkg/metrics"
)

// ErrSeedNotFound is returned by Migrate when the local seed file is absent.
var ErrSeedNotFound = errors.New("seed content file not found")

// Service reads and writes the content document through a repository. It
// holds no per-request state; every call is an independent invocation.
type Service struct {
	repo repository.Repository
	seed repository.Repository
	now  func() time.Time
}

// New builds a Service over the primary repository. seed is the local
// file-based repository used only by Migrate; it may be nil when migration is
// not wired.
func New(repo repository.Repository, seed repository.Repository) *Service {
	return &Service{repo: repo, seed: seed, now: time.Now}
}

// Read returns the content document and where it came from. Reads never fail:
// a missing document (first run, storage wiped) and a transient storage error
// both fall back to the built-in defaults, so no consumer ever receives a
// partial document. Availability wins over strict consistency here.
func (s *Service) Read(ctx context.Context) (*content.ContentDocument, content.Source) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		logger.Errorf("content read failed, serving defaults: %v", err)
		metrics.ContentReads.WithLabelValues(content.SourceDefault.String()).Inc()
		return content.DefaultDocument(), content.SourceDefault
	}
	if doc == nil {
		logger.Infof("no stored content document, serving defaults")
		metrics.ContentReads.WithLabelValues(content.SourceDefault.String()).Inc()
		return content.DefaultDocument(), content.SourceDefault
	}
	metrics.ContentReads.WithLabelValues(content.SourceStored.String()).Inc()
	return doc, content.SourceStored
}

// Write stamps the modification timestamp and persists the whole document.
// Unlike reads, a failed write always surfaces: silently "succeeding" would
// hide data loss from the admin.
func (s *Service) Write(ctx context.Context, doc *content.ContentDocument) error {
	doc.LastModified = s.now().UTC().Format(time.RFC3339)
	if err := s.repo.Store(ctx, doc); err != nil {
		metrics.ContentWrites.WithLabelValues("error").Inc()
		return fmt.Errorf("write content data: %w", err)
	}
	metrics.ContentWrites.WithLabelValues("ok").Inc()
	return nil
}

// Section helpers below perform read-modify-write of the whole document and
// replace exactly one top-level key. They are not atomic: two close-together
// section updates race and the later write wins. Single-admin usage model.

func (s *Service) UpdateTripInfo(ctx context.Context, ti content.TripInfo) error {
	if err := ti.Validate(); err != nil {
		return err
	}
	doc, _ := s.Read(ctx)
	doc.TripInfo = ti
	return s.Write(ctx, doc)
}

func (s *Service) UpdateTimeline(ctx context.Context, items []content.TimelineItem) error {
	doc, _ := s.Read(ctx)
	doc.Timeline = items
	return s.Write(ctx, doc)
}

func (s *Service) UpdateActivities(ctx context.Context, cards []content.ActivityCard) error {
	content.EnsureActivityIDs(cards)
	doc, _ := s.Read(ctx)
	doc.Activities = cards
	return s.Write(ctx, doc)
}

func (s *Service) UpdateRestaurants(ctx context.Context, rs []content.RestaurantInfo) error {
	for _, r := range rs {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("restaurant %q: %w", r.Name, err)
		}
	}
	doc, _ := s.Read(ctx)
	doc.Restaurants = rs
	return s.Write(ctx, doc)
}

// UpdateImageURLs merges the given keys into the existing map; keys are an
// open set defined by UI consumers.
func (s *Service) UpdateImageURLs(ctx context.Context, urls map[string]string) error {
	doc, _ := s.Read(ctx)
	if doc.ImageURLs == nil {
		doc.ImageURLs = map[string]string{}
	}
	for k, v := range urls {
		doc.ImageURLs[k] = v
	}
	return s.Write(ctx, doc)
}

// Migrate copies the local seed document into the primary repository. Intended
// for deployment bootstrap, not routine use; the seed is stored as-is, without
// re-stamping lastModified.
func (s *Service) Migrate(ctx context.Context) (*content.ContentDocument, error) {
	if s.seed == nil {
		return nil, ErrSeedNotFound
	}
	doc, err := s.seed.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("read seed content: %w", err)
	}
	if doc == nil {
		return nil, ErrSeedNotFound
	}
	if err := s.repo.Store(ctx, doc); err != nil {
		return nil, fmt.Errorf("migrate content data: %w", err)
	}
	logger.Infof("content migration completed")
	return doc, nil
}
