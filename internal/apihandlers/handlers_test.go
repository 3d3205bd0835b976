package apihandlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/internal/apihandlers"
	"techpulse/internal/app"
	"techpulse/internal/cache"
	"techpulse/internal/models"
	"techpulse/internal/scheduler"
	"techpulse/internal/services"
	"techpulse/internal/store/memory"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	contentStore := memory.NewStore()
	testApp := &app.App{
		Store:     contentStore,
		Cache:     cache.New(5*time.Minute, nil),
		Generator: services.NewGenerationService(services.GenerationDeps{Store: contentStore}),
		Analytics: services.NewAnalyticsService(contentStore),
		Scheduler: scheduler.New("test", "@hourly", func(ctx context.Context) error { return nil }),
	}

	router := gin.New()
	apihandlers.RegisterRoutes(router, &apihandlers.APIHandler{App: testApp})
	return router, contentStore
}

func seedNews(t *testing.T, s *memory.Store) models.AutoContent {
	t.Helper()
	item := models.AutoContent{
		ID:          "auto-1-abc",
		Title:       "t",
		Description: "d",
		Type:        models.ContentTypeNews,
		Source:      "s",
		URL:         "https://example.com/a",
	}
	require.NoError(t, s.SaveContent(context.Background(), []models.AutoContent{item}, models.ContentTypeNews))
	return item
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("")
	} else {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, contentStore := newTestRouter(t)
	seedNews(t, contentStore)

	w := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string                     `json:"status"`
		Counts map[models.ContentType]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 1, body.Counts[models.ContentTypeNews])
}

func TestListContentRequiresType(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/content", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}

func TestListContentRejectsUnknownType(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/content?type=webinars", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContentAcceptsPluralType(t *testing.T) {
	router, contentStore := newTestRouter(t)
	seedNews(t, contentStore)

	w := doRequest(router, http.MethodGet, "/api/v1/content?type=news", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.AutoContent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "auto-1-abc", body.Data[0].ID)

	// "games" resolves to "game".
	w = doRequest(router, http.MethodGet, "/api/v1/content?type=games", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListContentServesCachedResult(t *testing.T) {
	router, contentStore := newTestRouter(t)
	seedNews(t, contentStore)

	w := doRequest(router, http.MethodGet, "/api/v1/content?type=news", "")
	require.Equal(t, http.StatusOK, w.Code)

	// New items become visible only after the cached listing expires.
	require.NoError(t, contentStore.SaveContent(context.Background(), []models.AutoContent{{
		ID: "auto-2-def", Title: "t2", Description: "d", Type: models.ContentTypeNews,
		Source: "s", URL: "https://example.com/b",
	}}, models.ContentTypeNews))

	w = doRequest(router, http.MethodGet, "/api/v1/content?type=news", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.AutoContent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
}

func TestEngagement(t *testing.T) {
	router, contentStore := newTestRouter(t)
	item := seedNews(t, contentStore)

	w := doRequest(router, http.MethodPost, "/api/v1/content/"+item.ID+"/engagement", `{"action": "like"}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := contentStore.GetContent(context.Background(), item.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Analytics)
	assert.Equal(t, 1, stored.Analytics.Likes)
}

func TestEngagementUnknownContent(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(router, http.MethodPost, "/api/v1/content/auto-0-missing/engagement", `{"action": "view"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEngagementUnknownAction(t *testing.T) {
	router, contentStore := newTestRouter(t)
	item := seedNews(t, contentStore)

	w := doRequest(router, http.MethodPost, "/api/v1/content/"+item.ID+"/engagement", `{"action": "boost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedulerStartStop(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPut, "/api/v1/content/generate", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/content/generate", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateWithoutProviderFails(t *testing.T) {
	router, _ := newTestRouter(t)

	// The generation service falls back to the noop provider, so the inline
	// run surfaces as a 500 with the flat error body.
	w := doRequest(router, http.MethodPost, "/api/v1/content/generate", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}
