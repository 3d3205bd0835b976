package sources

import (
	"context"
	"net/http"
	"net/url"

	"techpulse/internal/models"
)

const (
	githubAPIBaseURL = "https://api.github.com"

	// trendingRepoQuery approximates "trending" with a star-count search over
	// the frontend languages the platform covers.
	trendingRepoQuery = "stars:>1000 language:typescript language:javascript"
)

// GitHubClient searches repositories on the GitHub REST API.
type GitHubClient struct {
	token   string
	baseURL string
	httpc   *http.Client
}

func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		token:   token,
		baseURL: githubAPIBaseURL,
		httpc:   newHTTPClient(),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *GitHubClient) SetBaseURL(u string) { c.baseURL = u }

type githubSearchResponse struct {
	Items []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		HTMLURL     string `json:"html_url"`
		Stars       int    `json:"stargazers_count"`
	} `json:"items"`
}

// TrendingRepos returns highly-starred repositories, most-starred first.
func (c *GitHubClient) TrendingRepos(ctx context.Context) ([]models.GitHubRepo, error) {
	return c.search(ctx, trendingRepoQuery)
}

// SearchRepos returns repositories matching the query, most-starred first.
func (c *GitHubClient) SearchRepos(ctx context.Context, query string) ([]models.GitHubRepo, error) {
	return c.search(ctx, query)
}

func (c *GitHubClient) search(ctx context.Context, query string) ([]models.GitHubRepo, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("sort", "stars")
	q.Set("order", "desc")
	q.Set("per_page", "25")

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "token "+c.token)
	}

	var resp githubSearchResponse
	if err := doJSON(ctx, c.httpc, "github", apiRequest{url: c.baseURL + "/search/repositories", query: q, header: header}, &resp); err != nil {
		return nil, err
	}

	repos := make([]models.GitHubRepo, 0, len(resp.Items))
	for _, item := range resp.Items {
		repos = append(repos, models.GitHubRepo{
			Name:        item.Name,
			Description: item.Description,
			HTMLURL:     item.HTMLURL,
			Stars:       item.Stars,
		})
	}
	return repos, nil
}
