package sources_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/internal/sources"
)

const redditListingBody = `{
	"data": {
		"children": [
			{"data": {"title": "Post", "selftext": "body", "permalink": "/r/programming/comments/1/post/", "subreddit": "programming", "score": 42}}
		]
	}
}`

func TestHotPostsAcquiresTokenOnce(t *testing.T) {
	var tokenCalls atomic.Int32

	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "id", user)
		assert.Equal(t, "secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Write([]byte(`{"access_token": "tok-1", "expires_in": 3600}`))
	}))
	defer auth.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Write([]byte(redditListingBody))
	}))
	defer api.Close()

	c := sources.NewRedditClient("id", "secret")
	c.SetBaseURL(api.URL, auth.URL)

	posts, err := c.HotPosts(context.Background(), "programming")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Post", posts[0].Data.Title)
	assert.Equal(t, "https://reddit.com/r/programming/comments/1/post/", posts[0].Data.Permalink)

	// Second fetch reuses the cached token.
	_, err = c.HotPosts(context.Background(), "programming")
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestHotPostsReacquiresTokenOn401(t *testing.T) {
	var tokenCalls atomic.Int32
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := tokenCalls.Add(1)
		if n == 1 {
			w.Write([]byte(`{"access_token": "stale", "expires_in": 3600}`))
			return
		}
		w.Write([]byte(`{"access_token": "fresh", "expires_in": 3600}`))
	}))
	defer auth.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer stale" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Unauthorized"}`))
			return
		}
		w.Write([]byte(redditListingBody))
	}))
	defer api.Close()

	c := sources.NewRedditClient("id", "secret")
	c.SetBaseURL(api.URL, auth.URL)

	posts, err := c.HotPosts(context.Background(), "programming")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int32(2), tokenCalls.Load())
}

func TestHotPostsPersistent401Fails(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "tok", "expires_in": 3600}`))
	}))
	defer auth.Close()

	var apiCalls atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthorized"}`))
	}))
	defer api.Close()

	c := sources.NewRedditClient("id", "secret")
	c.SetBaseURL(api.URL, auth.URL)

	_, err := c.HotPosts(context.Background(), "programming")
	require.Error(t, err)
	// Exactly one retry after the first 401.
	assert.Equal(t, int32(2), apiCalls.Load())
}
