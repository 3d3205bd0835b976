package sources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"techpulse/internal/models"
)

const newsAPIBaseURL = "https://newsapi.org/v2"

// NewsClient fetches articles from NewsAPI.
type NewsClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewNewsClient(apiKey string) *NewsClient {
	return &NewsClient{
		apiKey:  apiKey,
		baseURL: newsAPIBaseURL,
		httpc:   newHTTPClient(),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *NewsClient) SetBaseURL(u string) { c.baseURL = u }

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string    `json:"author"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Content     string    `json:"content"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// TopHeadlines returns the current US top headlines.
func (c *NewsClient) TopHeadlines(ctx context.Context) ([]models.NewsArticle, error) {
	q := url.Values{}
	q.Set("country", "us")
	q.Set("apiKey", c.apiKey)
	return c.fetch(ctx, c.baseURL+"/top-headlines", q)
}

// Search returns articles matching the free-text query.
func (c *NewsClient) Search(ctx context.Context, query string) ([]models.NewsArticle, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("apiKey", c.apiKey)
	return c.fetch(ctx, c.baseURL+"/everything", q)
}

func (c *NewsClient) fetch(ctx context.Context, endpoint string, q url.Values) ([]models.NewsArticle, error) {
	var resp newsAPIResponse
	if err := doJSON(ctx, c.httpc, "news", apiRequest{url: endpoint, query: q}, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "ok" {
		return nil, apiError("news", 0, "News API returned an error status", nil)
	}

	articles := make([]models.NewsArticle, 0, len(resp.Articles))
	for i, a := range resp.Articles {
		articles = append(articles, models.NewsArticle{
			ID:          "news-" + strconv.Itoa(i),
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
			Author:      a.Author,
		})
	}
	return articles, nil
}
