package content_api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ms-content/internal/content/content_api"
	"ms-content/internal/content/service"
	"ms-content/internal/models"
	"ms-content/internal/schema"
	"ms-content/internal/seed"
	"ms-content/internal/seed/content"
	"ms-content/internal/store"
	"ms-content/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T, seeded bool) (http.Handler, *store.Store) {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(ctx, store.Options{Path: store.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	if seeded {
		seeder := seed.NewSeeder(st, nil)
		plans := append([]seed.Plan{content.ProgramsPlan(), content.LeadershipPlan()}, content.SiteContentPlans()...)
		for _, plan := range plans {
			_, err := seeder.Run(ctx, plan)
			require.NoError(t, err)
		}
	}

	svc := service.NewContentService(st, nil, nil)
	return content_api.NewHandler(svc, nil).Router(), st
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := setupHandler(t, false)

	rec := get(t, h, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestListProgramsReturnsActiveInOrder(t *testing.T) {
	h, st := setupHandler(t, true)

	hidden := content.InitialPrograms()[0]
	hidden.Title = "Retired Program"
	hidden.OrderIndex = intPtr(0)
	hidden.IsActive = boolPtr(false)
	_, err := st.Create(context.Background(), hidden)
	require.NoError(t, err)

	rec := get(t, h, "/api/programs")
	require.Equal(t, http.StatusOK, rec.Code)

	var programs []models.Program
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &programs))
	require.Len(t, programs, 12)
	for i, p := range programs {
		assert.Equal(t, i+1, p.OrderIndex)
		assert.NotEqual(t, "Retired Program", p.Title)
	}
}

func TestProgramCategories(t *testing.T) {
	h, _ := setupHandler(t, true)

	rec := get(t, h, "/api/programs/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var groups []store.GroupCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	sum := 0
	for _, g := range groups {
		sum += g.Count
	}
	assert.Equal(t, 12, sum)
}

func TestSingletonEndpoints(t *testing.T) {
	h, _ := setupHandler(t, true)

	rec := get(t, h, "/api/hero")
	require.Equal(t, http.StatusOK, rec.Code)
	var hero models.HeroContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hero))
	assert.Equal(t, content.Hero().Title, hero.Title)

	for _, path := range []string{"/api/about", "/api/contact", "/api/donation", "/api/leadership"} {
		assert.Equal(t, http.StatusOK, get(t, h, path).Code, path)
	}
}

func TestUnseededSingletonIsNotFound(t *testing.T) {
	h, _ := setupHandler(t, false)

	rec := get(t, h, "/api/hero")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestEmptyListsAreArrays(t *testing.T) {
	h, _ := setupHandler(t, false)

	for _, path := range []string{"/api/programs", "/api/testimonials", "/api/events", "/api/news"} {
		rec := get(t, h, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, "[]", rec.Body.String(), path)
	}
}

func TestListNewsLimit(t *testing.T) {
	h, st := setupHandler(t, false)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		published := base.AddDate(0, 0, i)
		_, err := st.Create(ctx, &schema.NewsInsert{Title: "Update", Content: "Body", Category: "updates", PublishedAt: &published})
		require.NoError(t, err)
	}

	rec := get(t, h, "/api/news?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	var news []models.NewsArticle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &news))
	assert.Len(t, news, 2)

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/news?limit=zero").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/news?limit=500").Code)
}

func TestDonationQR(t *testing.T) {
	h, _ := setupHandler(t, true)

	rec := get(t, h, "/api/donation/qr?amount=1000")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/donation/qr?amount=-4").Code)
}

func TestDonationAmounts(t *testing.T) {
	h, _ := setupHandler(t, true)

	rec := get(t, h, "/api/donation/amounts")
	require.Equal(t, http.StatusOK, rec.Code)
	var amounts []int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &amounts))
	assert.Equal(t, []int{500, 1000, 2500, 5000}, amounts)

	empty, _ := setupHandler(t, false)
	assert.Equal(t, http.StatusNotFound, get(t, empty, "/api/donation/amounts").Code)
}

func TestDonationQRWithoutUPI(t *testing.T) {
	h, st := setupHandler(t, false)

	_, err := st.Create(context.Background(), &schema.DonationConfigInsert{Title: "Give", Description: "Bank transfer only"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/donation/qr").Code)
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestCORSPreflight(t *testing.T) {
	st, err := store.Open(context.Background(), store.Options{Path: store.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	handler := content_api.NewHandler(service.NewContentService(st, nil, nil), nil)
	handler.AllowedOrigins = []string{"https://ashaseva.org"}
	h := handler.Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/programs", nil)
	req.Header.Set("Origin", "https://ashaseva.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://ashaseva.org", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/programs", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
