package sources_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/internal/models"
	"techpulse/internal/sources"
)

func TestHotQuestionsTaggedAsTraining(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions/hot", r.URL.Path)
		assert.Equal(t, "stackoverflow", r.URL.Query().Get("site"))
		assert.Equal(t, "so-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"title": "How do I test handlers?", "body": "<p>Use httptest.</p>", "link": "https://stackoverflow.com/q/1", "score": 55, "answer_count": 3}
			]
		}`))
	}))
	defer srv.Close()

	c := sources.NewStackOverflowClient("so-key")
	c.SetBaseURL(srv.URL)

	questions, err := c.HotQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "How do I test handlers?", questions[0].Title)
	assert.Equal(t, 55, questions[0].Score)
	// The adapter's explicit tag takes precedence over shape classification.
	assert.Equal(t, string(models.ContentTypeTraining), questions[0].Type)
}

func TestTrendingQuestionsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions/featured", r.URL.Path)
		assert.Equal(t, "hot", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		// No key param without an API key.
		assert.False(t, r.URL.Query().Has("key"))
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	c := sources.NewStackOverflowClient("")
	c.SetBaseURL(srv.URL)

	questions, err := c.TrendingQuestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestStackOverflowThrottleError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_name": "throttle_violation"}`))
	}))
	defer srv.Close()

	c := sources.NewStackOverflowClient("so-key")
	c.SetBaseURL(srv.URL)

	_, err := c.SearchQuestions(context.Background(), "generics")
	require.Error(t, err)

	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "stackoverflow", apiErr.Source)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}
