package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"ms-content/internal/models"
	"ms-content/internal/schema"
	"ms-content/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	// In-memory store with the embedded schema applied
	s, err := store.Open(context.Background(), store.Options{Path: store.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func program(title, category string, order int) *schema.ProgramInsert {
	return &schema.ProgramInsert{
		Title:       title,
		Description: title + " description",
		Icon:        "star",
		Category:    category,
		OrderIndex:  intPtr(order),
	}
}

func TestOpenCreatesFileAndIsRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "content.db")

	s, err := store.Open(ctx, store.Options{Path: path, BusyTimeout: time.Second})
	require.NoError(t, err)
	_, err = s.Create(ctx, program("Education", "education", 1))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening runs migrations again without touching data
	s, err = store.Open(ctx, store.Options{Path: path})
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(ctx, models.EntityPrograms)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, path, s.Path())
}

func TestDataVersionTracksOtherWriters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "content.db")

	reader, err := store.Open(ctx, store.Options{Path: path, BusyTimeout: time.Second})
	require.NoError(t, err)
	defer reader.Close()

	before, err := reader.DataVersion(ctx)
	require.NoError(t, err)

	// Own writes leave the version alone
	_, err = reader.Create(ctx, program("Education", "education", 1))
	require.NoError(t, err)
	same, err := reader.DataVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, same)

	writer, err := store.Open(ctx, store.Options{Path: path, BusyTimeout: time.Second})
	require.NoError(t, err)
	_, err = writer.Create(ctx, program("Health", "health", 2))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	after, err := reader.DataVersion(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestCreateAssignsIDsAndDefaults(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, &schema.ProgramInsert{
		Title:       "Health Camps",
		Description: "Free checkups",
		Icon:        "heart",
		Category:    "health",
	})
	require.NoError(t, err)
	second, err := s.Create(ctx, program("Skills", "livelihood", 2))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	programs, err := s.ListPrograms(ctx, store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, programs, 2)

	assert.Equal(t, first, programs[0].ID)
	assert.Equal(t, 0, programs[0].OrderIndex)
	assert.True(t, programs[0].IsActive)
	assert.Nil(t, programs[0].ImageURL)
	assert.False(t, programs[0].CreatedAt.IsZero())
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, &schema.ProgramInsert{Title: "No category", Description: "x", Icon: "x"})

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("category"))

	n, err := s.Count(ctx, models.EntityPrograms)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListOrderedBreaksTiesByID(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, p := range []*schema.ProgramInsert{
		program("C", "education", 2),
		program("A", "education", 1),
		program("B", "health", 1),
		program("D", "health", 0),
	} {
		_, err := s.Create(ctx, p)
		require.NoError(t, err)
	}

	programs, err := s.ListPrograms(ctx, store.ListOptions{Ordered: true})
	require.NoError(t, err)

	var titles []string
	for _, p := range programs {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"D", "A", "B", "C"}, titles)

	// Unordered listing follows insertion order
	programs, err = s.ListPrograms(ctx, store.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "C", programs[0].Title)
}

func TestListActiveOnly(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	hidden := program("Hidden", "education", 1)
	hidden.IsActive = boolPtr(false)
	_, err := s.Create(ctx, hidden)
	require.NoError(t, err)
	_, err = s.Create(ctx, program("Visible", "education", 2))
	require.NoError(t, err)

	programs, err := s.ListPrograms(ctx, store.ListOptions{Ordered: true, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "Visible", programs[0].Title)
}

func TestListRejectsMismatchedDestination(t *testing.T) {
	s := setupTestStore(t)

	var leaders []models.Leader
	err := s.List(context.Background(), models.EntityPrograms, store.ListOptions{}, &leaders)
	assert.ErrorIs(t, err, store.ErrUnknownEntity)
}

func TestUnknownEntity(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.Count(ctx, models.Entity("volunteers"))
	assert.ErrorIs(t, err, store.ErrUnknownEntity)

	_, err = s.DeleteAll(ctx, models.Entity("volunteers"))
	assert.ErrorIs(t, err, store.ErrUnknownEntity)
}

func TestDeleteAll(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// Empty table is a no-op
	n, err := s.DeleteAll(ctx, models.EntityPrograms)
	require.NoError(t, err)
	assert.Zero(t, n)

	for i := 1; i <= 3; i++ {
		_, err := s.Create(ctx, program("P", "education", i))
		require.NoError(t, err)
	}

	n, err = s.DeleteAll(ctx, models.EntityPrograms)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	count, err := s.Count(ctx, models.EntityPrograms)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCountByGroupSumsToCount(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i, category := range []string{"health", "education", "health", "women", "health"} {
		_, err := s.Create(ctx, program("P", category, i))
		require.NoError(t, err)
	}

	groups, err := s.CountByGroup(ctx, models.EntityPrograms)
	require.NoError(t, err)
	assert.Equal(t, []store.GroupCount{
		{Group: "education", Count: 1},
		{Group: "health", Count: 3},
		{Group: "women", Count: 1},
	}, groups)

	total, err := s.Count(ctx, models.EntityPrograms)
	require.NoError(t, err)
	sum := 0
	for _, g := range groups {
		sum += g.Count
	}
	assert.Equal(t, total, sum)

	_, err = s.CountByGroup(ctx, models.EntityHeroContent)
	assert.ErrorIs(t, err, store.ErrNotGrouped)
}

func TestSummaries(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, program("Second", "health", 2))
	require.NoError(t, err)
	inactive := program("First", "education", 1)
	inactive.IsActive = boolPtr(false)
	_, err = s.Create(ctx, inactive)
	require.NoError(t, err)

	rows, err := s.Summaries(ctx, models.EntityPrograms)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "First", rows[0].Label)
	assert.Equal(t, "education", rows[0].Group)
	assert.Equal(t, 1, rows[0].OrderIndex)
	assert.False(t, rows[0].Active)
	assert.Equal(t, "Second", rows[1].Label)
	assert.True(t, rows[1].Active)

	_, err = s.Create(ctx, &schema.HeroContentInsert{Title: "Welcome", Subtitle: "Together"})
	require.NoError(t, err)
	rows, err = s.Summaries(ctx, models.EntityHeroContent)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Welcome", rows[0].Label)
	assert.Empty(t, rows[0].Group)
	assert.True(t, rows[0].Active)
}

func TestSingletonReadsLatestRow(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetHeroContent(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Create(ctx, &schema.HeroContentInsert{Title: "Old", Subtitle: "One"})
	require.NoError(t, err)
	_, err = s.Create(ctx, &schema.HeroContentInsert{Title: "New", Subtitle: "Two", Description: strPtr("Hello")})
	require.NoError(t, err)

	hero, err := s.GetHeroContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", hero.Title)
	assert.Equal(t, "Hello", *hero.Description)
}

func TestListUpcomingEvents(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, e := range []*schema.EventInsert{
		{Title: "Past", EventDate: now.AddDate(0, 0, -3), EventType: "camp"},
		{Title: "Later", EventDate: now.AddDate(0, 1, 0), EventType: "camp"},
		{Title: "Soon", EventDate: now.AddDate(0, 0, 2), EventType: "drive"},
		{Title: "Cancelled", EventDate: now.AddDate(0, 0, 1), EventType: "drive", IsActive: boolPtr(false)},
	} {
		_, err := s.Create(ctx, e)
		require.NoError(t, err)
	}

	events, err := s.ListUpcomingEvents(ctx, now)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Soon", events[0].Title)
	assert.Equal(t, "Later", events[1].Title)
}

func TestListPublishedNews(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, title := range []string{"Oldest", "Middle", "Newest"} {
		published := base.AddDate(0, 0, i)
		_, err := s.Create(ctx, &schema.NewsInsert{
			Title:       title,
			Content:     "Body",
			Category:    "updates",
			PublishedAt: &published,
		})
		require.NoError(t, err)
	}
	_, err := s.Create(ctx, &schema.NewsInsert{Title: "Draft", Content: "Body", Category: "updates", IsPublished: boolPtr(false)})
	require.NoError(t, err)

	news, err := s.ListPublishedNews(ctx, 2)
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "Newest", news[0].Title)
	assert.Equal(t, "Middle", news[1].Title)

	all, err := s.ListPublishedNews(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRunInTxRollsBack(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, program("Kept", "education", 1))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.RunInTx(ctx, func(ctx context.Context, tx *store.Store) error {
		if _, err := tx.DeleteAll(ctx, models.EntityPrograms); err != nil {
			return err
		}
		if _, err := tx.Create(ctx, program("Lost", "health", 1)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	programs, err := s.ListPrograms(ctx, store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "Kept", programs[0].Title)
}

func TestRunInTxCommits(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := s.RunInTx(ctx, func(ctx context.Context, tx *store.Store) error {
		_, err := tx.Create(ctx, program("Committed", "health", 1))
		return err
	})
	require.NoError(t, err)

	n, err := s.Count(ctx, models.EntityPrograms)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
