package sources

import (
	"context"
	"net/http"
	"net/url"

	"techpulse/internal/models"
)

const (
	twitterAPIBaseURL = "https://api.twitter.com/2"

	trendingTweetQuery = "technology OR programming OR AI"
)

// TwitterClient searches recent tweets on the Twitter v2 API.
type TwitterClient struct {
	bearerToken string
	baseURL     string
	httpc       *http.Client
}

func NewTwitterClient(bearerToken string) *TwitterClient {
	return &TwitterClient{
		bearerToken: bearerToken,
		baseURL:     twitterAPIBaseURL,
		httpc:       newHTTPClient(),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *TwitterClient) SetBaseURL(u string) { c.baseURL = u }

type twitterSearchResponse struct {
	Data []models.Tweet `json:"data"`
}

// TrendingTweets returns recent tweets for the platform's trending query.
func (c *TwitterClient) TrendingTweets(ctx context.Context) ([]models.Tweet, error) {
	return c.search(ctx, trendingTweetQuery)
}

// SearchTweets returns recent tweets matching the query.
func (c *TwitterClient) SearchTweets(ctx context.Context, query string) ([]models.Tweet, error) {
	return c.search(ctx, query)
}

func (c *TwitterClient) search(ctx context.Context, query string) ([]models.Tweet, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("tweet.fields", "public_metrics")
	q.Set("max_results", "100")

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.bearerToken)

	var resp twitterSearchResponse
	if err := doJSON(ctx, c.httpc, "twitter", apiRequest{url: c.baseURL + "/tweets/search/recent", query: q, header: header}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
