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

func TestTrendingRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("q"), "stars:>1000")
		assert.Equal(t, "stars", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		assert.Equal(t, "token gh-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"name": "framework", "description": "a web framework", "html_url": "https://github.com/x/framework", "stargazers_count": 42000},
				{"name": "toolkit", "description": "a toolkit", "html_url": "https://github.com/x/toolkit", "stargazers_count": 9000}
			]
		}`))
	}))
	defer srv.Close()

	c := sources.NewGitHubClient("gh-token")
	c.SetBaseURL(srv.URL)

	repos, err := c.TrendingRepos(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "framework", repos[0].Name)
	assert.Equal(t, 42000, repos[0].Stars)
	assert.Equal(t, "https://github.com/x/toolkit", repos[1].HTMLURL)
}

func TestGitHubOmitsAuthWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	c := sources.NewGitHubClient("")
	c.SetBaseURL(srv.URL)

	repos, err := c.SearchRepos(context.Background(), "topic:go")
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestGitHubRateLimitError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "API rate limit exceeded"}`))
	}))
	defer srv.Close()

	c := sources.NewGitHubClient("gh-token")
	c.SetBaseURL(srv.URL)

	_, err := c.TrendingRepos(context.Background())
	require.Error(t, err)

	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "github", apiErr.Source)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}
