package sources

import (
	"context"
	"net/http"
	"net/url"

	"techpulse/internal/models"
)

const stackExchangeAPIBaseURL = "https://api.stackexchange.com/2.3"

// StackOverflowClient fetches questions from the StackExchange API.
type StackOverflowClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewStackOverflowClient(apiKey string) *StackOverflowClient {
	return &StackOverflowClient{
		apiKey:  apiKey,
		baseURL: stackExchangeAPIBaseURL,
		httpc:   newHTTPClient(),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *StackOverflowClient) SetBaseURL(u string) { c.baseURL = u }

type stackQuestionsResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Body        string `json:"body"`
		Link        string `json:"link"`
		Score       int    `json:"score"`
		AnswerCount int    `json:"answer_count"`
	} `json:"items"`
}

// HotQuestions returns the site's current hot questions.
func (c *StackOverflowClient) HotQuestions(ctx context.Context) ([]models.StackQuestion, error) {
	q := c.baseParams()
	return c.fetch(ctx, "/questions/hot", q)
}

// TrendingQuestions returns the featured questions sorted by heat.
func (c *StackOverflowClient) TrendingQuestions(ctx context.Context) ([]models.StackQuestion, error) {
	q := c.baseParams()
	q.Set("sort", "hot")
	q.Set("order", "desc")
	return c.fetch(ctx, "/questions/featured", q)
}

// SearchQuestions returns questions matching the query, highest-voted first.
func (c *StackOverflowClient) SearchQuestions(ctx context.Context, query string) ([]models.StackQuestion, error) {
	q := c.baseParams()
	q.Set("q", query)
	q.Set("sort", "votes")
	q.Set("order", "desc")
	q.Set("filter", "withbody")
	return c.fetch(ctx, "/search/advanced", q)
}

func (c *StackOverflowClient) baseParams() url.Values {
	q := url.Values{}
	q.Set("site", "stackoverflow")
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	return q
}

func (c *StackOverflowClient) fetch(ctx context.Context, path string, q url.Values) ([]models.StackQuestion, error) {
	var resp stackQuestionsResponse
	if err := doJSON(ctx, c.httpc, "stackoverflow", apiRequest{url: c.baseURL + path, query: q}, &resp); err != nil {
		return nil, err
	}

	questions := make([]models.StackQuestion, 0, len(resp.Items))
	for _, item := range resp.Items {
		questions = append(questions, models.StackQuestion{
			Title:       item.Title,
			Body:        item.Body,
			Link:        item.Link,
			Score:       item.Score,
			AnswerCount: item.AnswerCount,
			Type:        string(models.ContentTypeTraining),
		})
	}
	return questions, nil
}
