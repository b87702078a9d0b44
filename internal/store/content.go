package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ms-content/internal/models"

	"github.com/uptrace/bun"
)

func (s *Store) ListPrograms(ctx context.Context, opts ListOptions) ([]models.Program, error) {
	programs := make([]models.Program, 0)
	if err := s.List(ctx, models.EntityPrograms, opts, &programs); err != nil {
		return nil, err
	}
	return nonNil(programs), nil
}

func (s *Store) ListLeaders(ctx context.Context, opts ListOptions) ([]models.Leader, error) {
	leaders := make([]models.Leader, 0)
	if err := s.List(ctx, models.EntityLeadership, opts, &leaders); err != nil {
		return nil, err
	}
	return nonNil(leaders), nil
}

func (s *Store) ListTestimonials(ctx context.Context, opts ListOptions) ([]models.Testimonial, error) {
	testimonials := make([]models.Testimonial, 0)
	if err := s.List(ctx, models.EntityTestimonials, opts, &testimonials); err != nil {
		return nil, err
	}
	return nonNil(testimonials), nil
}

// ListUpcomingEvents returns active events dated at or after from, soonest
// first.
func (s *Store) ListUpcomingEvents(ctx context.Context, from time.Time) ([]models.Event, error) {
	events := make([]models.Event, 0)
	err := s.idb.NewSelect().
		Model(&events).
		Where("? = ?", bun.Ident("is_active"), true).
		Where("? >= ?", bun.Ident("event_date"), from.UTC()).
		OrderExpr("? ASC", bun.Ident("event_date")).
		OrderExpr("? ASC", bun.Ident("id")).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return nonNil(events), nil
}

// ListPublishedNews returns published articles, newest first. A limit of
// zero or less returns all of them.
func (s *Store) ListPublishedNews(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	news := make([]models.NewsArticle, 0)
	q := s.idb.NewSelect().
		Model(&news).
		Where("? = ?", bun.Ident("is_published"), true).
		OrderExpr("? DESC", bun.Ident("published_at")).
		OrderExpr("? DESC", bun.Ident("id"))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list published news: %w", err)
	}
	return nonNil(news), nil
}

func (s *Store) GetHeroContent(ctx context.Context) (*models.HeroContent, error) {
	hero := new(models.HeroContent)
	if err := s.latest(ctx, hero, models.EntityHeroContent); err != nil {
		return nil, err
	}
	return hero, nil
}

func (s *Store) GetAboutContent(ctx context.Context) (*models.AboutContent, error) {
	about := new(models.AboutContent)
	if err := s.latest(ctx, about, models.EntityAboutContent); err != nil {
		return nil, err
	}
	return about, nil
}

func (s *Store) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	contact := new(models.ContactInfo)
	if err := s.latest(ctx, contact, models.EntityContactInfo); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *Store) GetDonationConfig(ctx context.Context) (*models.DonationConfig, error) {
	donation := new(models.DonationConfig)
	if err := s.latest(ctx, donation, models.EntityDonationConfig); err != nil {
		return nil, err
	}
	return donation, nil
}

// nonNil keeps empty listings encoding as [] rather than null.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

// latest loads the most recently inserted row of a singleton entity.
func (s *Store) latest(ctx context.Context, dest any, entity models.Entity) error {
	err := s.idb.NewSelect().
		Model(dest).
		OrderExpr("? DESC", bun.Ident("id")).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", entity, err)
	}
	return nil
}
