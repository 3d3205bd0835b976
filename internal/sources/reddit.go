package sources

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"techpulse/internal/models"
)

const (
	redditAPIBaseURL  = "https://oauth.reddit.com"
	redditAuthURL     = "https://www.reddit.com/api/v1/access_token"
	redditLinkBaseURL = "https://reddit.com"

	// tokenExpiryMargin re-acquires slightly before the reported expiry so a
	// token never goes stale mid-request.
	tokenExpiryMargin = 30 * time.Second
)

// RedditClient fetches posts from the Reddit OAuth API using the
// client-credentials grant. The bearer token is acquired lazily, tracked
// against its expiry, and re-acquired proactively or on a 401 response.
type RedditClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	authURL      string
	httpc        *http.Client
	now          func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewRedditClient(clientID, clientSecret string) *RedditClient {
	return &RedditClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      redditAPIBaseURL,
		authURL:      redditAuthURL,
		httpc:        newHTTPClient(),
		now:          time.Now,
	}
}

// SetBaseURL overrides the API and auth endpoints, used by tests.
func (c *RedditClient) SetBaseURL(api, auth string) {
	c.baseURL = api
	c.authURL = auth
}

type redditTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Selftext  string `json:"selftext"`
				Permalink string `json:"permalink"`
				Subreddit string `json:"subreddit"`
				Score     int    `json:"score"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// accessToken returns a valid bearer token, acquiring a fresh one when none
// is cached or the cached one is at or past its expiry.
func (c *RedditClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry.Add(-tokenExpiryMargin)) {
		return c.token, nil
	}
	return c.acquireTokenLocked(ctx)
}

func (c *RedditClient) acquireTokenLocked(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	creds := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	header := http.Header{}
	header.Set("Authorization", "Basic "+creds)
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tok redditTokenResponse
	err := doJSON(ctx, c.httpc, "reddit", apiRequest{
		method: http.MethodPost,
		url:    c.authURL,
		header: header,
		body:   strings.NewReader(form.Encode()),
	}, &tok)
	if err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", apiError("reddit", 0, "token endpoint returned no access token", nil)
	}

	c.token = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	log.Debugf("reddit: acquired access token, expires in %ds", tok.ExpiresIn)
	return c.token, nil
}

// invalidateToken drops the cached token so the next call re-acquires.
func (c *RedditClient) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// HotPosts returns the current hot posts of the subreddit.
func (c *RedditClient) HotPosts(ctx context.Context, subreddit string) ([]models.RedditPost, error) {
	q := url.Values{}
	q.Set("limit", "25")
	return c.fetchListing(ctx, "/r/"+subreddit+"/hot", q)
}

// TopPosts returns the subreddit's top posts of the day.
func (c *RedditClient) TopPosts(ctx context.Context, subreddit string) ([]models.RedditPost, error) {
	q := url.Values{}
	q.Set("t", "day")
	q.Set("limit", "25")
	return c.fetchListing(ctx, "/r/"+subreddit+"/top", q)
}

func (c *RedditClient) fetchListing(ctx context.Context, path string, q url.Values) ([]models.RedditPost, error) {
	listing, err := c.fetchListingOnce(ctx, path, q)

	// A 401 means the token went stale despite expiry tracking; drop it and
	// retry exactly once with a fresh token.
	var apiErr *models.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		log.Warn("reddit: request unauthorized, re-acquiring access token")
		c.invalidateToken()
		listing, err = c.fetchListingOnce(ctx, path, q)
	}
	if err != nil {
		return nil, err
	}

	posts := make([]models.RedditPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, models.RedditPost{Data: models.RedditPostData{
			Title:     child.Data.Title,
			Selftext:  child.Data.Selftext,
			Permalink: redditLinkBaseURL + child.Data.Permalink,
			Subreddit: child.Data.Subreddit,
			Score:     child.Data.Score,
		}})
	}
	return posts, nil
}

func (c *RedditClient) fetchListingOnce(ctx context.Context, path string, q url.Values) (*redditListing, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	var listing redditListing
	if err := doJSON(ctx, c.httpc, "reddit", apiRequest{url: c.baseURL + path, query: q, header: header}, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}
