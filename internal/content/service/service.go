package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ms-content/internal/logger"
	"ms-content/internal/models"
	"ms-content/internal/store"
)

// ContentDB is the read side of the content store used by the website.
type ContentDB interface {
	ListPrograms(ctx context.Context, opts store.ListOptions) ([]models.Program, error)
	ListLeaders(ctx context.Context, opts store.ListOptions) ([]models.Leader, error)
	ListTestimonials(ctx context.Context, opts store.ListOptions) ([]models.Testimonial, error)
	ListUpcomingEvents(ctx context.Context, from time.Time) ([]models.Event, error)
	ListPublishedNews(ctx context.Context, limit int) ([]models.NewsArticle, error)
	CountByGroup(ctx context.Context, entity models.Entity) ([]store.GroupCount, error)
	GetHeroContent(ctx context.Context) (*models.HeroContent, error)
	GetAboutContent(ctx context.Context) (*models.AboutContent, error)
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
	GetDonationConfig(ctx context.Context) (*models.DonationConfig, error)
}

// Cache is an optional read-through cache of encoded responses.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// versioned is implemented by stores that can tell when another process
// wrote to them.
type versioned interface {
	DataVersion(ctx context.Context) (int64, error)
}

// flusher is implemented by caches that can drop every content key.
type flusher interface {
	Flush(ctx context.Context) (int64, error)
}

// publicListing is what visitors see: active rows in display order.
var publicListing = store.ListOptions{Ordered: true, ActiveOnly: true}

type ContentService struct {
	DB     ContentDB
	Cache  Cache
	Logger *logger.Logger
	Now    func() time.Time

	mu          sync.Mutex
	seenVersion int64
}

func NewContentService(db ContentDB, cache Cache, log *logger.Logger) *ContentService {
	return &ContentService{DB: db, Cache: cache, Logger: log, Now: time.Now}
}

// cached serves key from the cache when possible. Cache failures are logged
// and fall through to the store.
func cached[T any](ctx context.Context, s *ContentService, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if s.Cache != nil {
		s.syncCache(ctx)

		var hit T
		ok, err := s.Cache.Get(ctx, key, &hit)
		if err != nil {
			s.Logger.Warn("CACHE", fmt.Sprintf("read %s: %v", key, err))
		} else if ok {
			return hit, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, value); err != nil {
			s.Logger.Warn("CACHE", fmt.Sprintf("write %s: %v", key, err))
		}
	}
	return value, nil
}

// Programs returns active programs ordered by orderIndex.
func (s *ContentService) Programs(ctx context.Context) ([]models.Program, error) {
	return cached(ctx, s, "programs", func(ctx context.Context) ([]models.Program, error) {
		return s.DB.ListPrograms(ctx, publicListing)
	})
}

func (s *ContentService) ProgramCategories(ctx context.Context) ([]store.GroupCount, error) {
	return cached(ctx, s, "programs:categories", func(ctx context.Context) ([]store.GroupCount, error) {
		return s.DB.CountByGroup(ctx, models.EntityPrograms)
	})
}

func (s *ContentService) Leaders(ctx context.Context) ([]models.Leader, error) {
	return cached(ctx, s, "leadership", func(ctx context.Context) ([]models.Leader, error) {
		return s.DB.ListLeaders(ctx, publicListing)
	})
}

func (s *ContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return cached(ctx, s, "testimonials", func(ctx context.Context) ([]models.Testimonial, error) {
		return s.DB.ListTestimonials(ctx, publicListing)
	})
}

// UpcomingEvents is not cached: the result depends on the current time.
func (s *ContentService) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	return s.DB.ListUpcomingEvents(ctx, s.Now())
}

func (s *ContentService) News(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	return cached(ctx, s, fmt.Sprintf("news:%d", limit), func(ctx context.Context) ([]models.NewsArticle, error) {
		return s.DB.ListPublishedNews(ctx, limit)
	})
}

func (s *ContentService) Hero(ctx context.Context) (*models.HeroContent, error) {
	return cached(ctx, s, "hero", s.DB.GetHeroContent)
}

func (s *ContentService) About(ctx context.Context) (*models.AboutContent, error) {
	return cached(ctx, s, "about", s.DB.GetAboutContent)
}

func (s *ContentService) Contact(ctx context.Context) (*models.ContactInfo, error) {
	return cached(ctx, s, "contact", s.DB.GetContactInfo)
}

func (s *ContentService) Donation(ctx context.Context) (*models.DonationConfig, error) {
	return cached(ctx, s, "donation", s.DB.GetDonationConfig)
}

// syncCache flushes the cache once the store reports a write from another
// process, so a seed run is visible before the TTL expires.
func (s *ContentService) syncCache(ctx context.Context) {
	db, ok := s.DB.(versioned)
	if !ok {
		return
	}
	c, ok := s.Cache.(flusher)
	if !ok {
		return
	}

	version, err := db.DataVersion(ctx)
	if err != nil {
		s.Logger.Warn("CACHE", fmt.Sprintf("read store version: %v", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if version == s.seenVersion {
		return
	}
	removed, err := c.Flush(ctx)
	if err != nil {
		s.Logger.Warn("CACHE", fmt.Sprintf("flush after store change: %v", err))
		return
	}
	s.seenVersion = version
	s.Logger.Info("CACHE", fmt.Sprintf("store changed (version %d), %d cached entries dropped", version, removed))
}
