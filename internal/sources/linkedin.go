package sources

import (
	"context"
	"net/http"
	"net/url"

	"techpulse/internal/models"
)

const (
	linkedinAPIBaseURL = "https://api.linkedin.com/v2"

	trendingPostQuery = "technology OR programming OR AI"
)

// LinkedInClient fetches UGC posts from the LinkedIn REST API.
type LinkedInClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewLinkedInClient(apiKey string) *LinkedInClient {
	return &LinkedInClient{
		apiKey:  apiKey,
		baseURL: linkedinAPIBaseURL,
		httpc:   newHTTPClient(),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *LinkedInClient) SetBaseURL(u string) { c.baseURL = u }

// linkedinFeedResponse mirrors the deeply nested ugcPosts shape; the adapter
// flattens it into models.LinkedInPost.
type linkedinFeedResponse struct {
	Elements []struct {
		SpecificContent struct {
			ShareContent struct {
				ShareCommentary struct {
					Text string `json:"text"`
				} `json:"shareCommentary"`
			} `json:"com.linkedin.ugc.ShareContent"`
		} `json:"specificContent"`
		LandingPage *struct {
			LandingPageURL string `json:"landingPageUrl"`
		} `json:"landingPage"`
		NumLikes int `json:"numLikes"`
	} `json:"elements"`
}

// TrendingPosts returns posts for the platform's trending query.
func (c *LinkedInClient) TrendingPosts(ctx context.Context) ([]models.LinkedInPost, error) {
	return c.fetch(ctx, trendingPostQuery)
}

// SearchPosts returns posts matching the query.
func (c *LinkedInClient) SearchPosts(ctx context.Context, query string) ([]models.LinkedInPost, error) {
	return c.fetch(ctx, query)
}

func (c *LinkedInClient) fetch(ctx context.Context, query string) ([]models.LinkedInPost, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("count", "100")

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.apiKey)

	var resp linkedinFeedResponse
	if err := doJSON(ctx, c.httpc, "linkedin", apiRequest{url: c.baseURL + "/ugcPosts", query: q, header: header}, &resp); err != nil {
		return nil, err
	}

	posts := make([]models.LinkedInPost, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		post := models.LinkedInPost{
			Text:     el.SpecificContent.ShareContent.ShareCommentary.Text,
			NumLikes: el.NumLikes,
		}
		if el.LandingPage != nil {
			post.LandingPageURL = el.LandingPage.LandingPageURL
		}
		posts = append(posts, post)
	}
	return posts, nil
}
