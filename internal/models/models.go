package models

import (
	"fmt"
	"strings"
	"time"
)

// ContentType routes content to the correct listing.
type ContentType string

const (
	ContentTypeGame     ContentType = "game"
	ContentTypeCourse   ContentType = "course"
	ContentTypeTraining ContentType = "training"
	ContentTypeNews     ContentType = "news"
)

// ContentTypes lists the four valid content types in listing order.
var ContentTypes = []ContentType{ContentTypeGame, ContentTypeCourse, ContentTypeTraining, ContentTypeNews}

// IsValidContentType reports whether s is one of the four enumerated types.
func IsValidContentType(s string) bool {
	switch ContentType(s) {
	case ContentTypeGame, ContentTypeCourse, ContentTypeTraining, ContentTypeNews:
		return true
	}
	return false
}

// ParseContentType accepts both singular ("game") and the plural listing
// form ("games") used by the content endpoint.
func ParseContentType(s string) (ContentType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	// "news" is already a valid type and must not lose its trailing "s",
	// so only exact plurals of the other types are folded.
	if IsValidContentType(s) {
		return ContentType(s), nil
	}
	switch s {
	case "games":
		return ContentTypeGame, nil
	case "courses":
		return ContentTypeCourse, nil
	case "trainings":
		return ContentTypeTraining, nil
	}
	return "", fmt.Errorf("%w: invalid content type %q", ErrValidation, s)
}

// AutoContent is the canonical record produced by the aggregation pipeline.
// The scoring stage attaches RelevanceScore and QualityScore; nothing else
// mutates a record once normalized.
type AutoContent struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Type           ContentType       `json:"type"`
	Source         string            `json:"source"`
	URL            string            `json:"url"`
	AIGenerated    bool              `json:"aiGenerated"`
	Timestamp      time.Time         `json:"timestamp"`
	Popularity     int               `json:"popularity"`
	Tags           []string          `json:"tags"`
	Difficulty     string            `json:"difficulty,omitempty"`
	TargetAudience []string          `json:"targetAudience,omitempty"`
	Analytics      *ContentAnalytics `json:"analytics,omitempty"`

	RelevanceScore float64 `json:"relevanceScore"`
	QualityScore   float64 `json:"qualityScore"`
}

// ContentAnalytics holds engagement counters for a persisted item. Counters
// are best-effort: they are updated under the store lock but no cross-process
// exactness is guaranteed.
type ContentAnalytics struct {
	ContentID      string    `json:"contentId"`
	Views          int       `json:"views"`
	Likes          int       `json:"likes"`
	Shares         int       `json:"shares"`
	Comments       int       `json:"comments"`
	AverageRating  float64   `json:"averageRating"`
	UserEngagement float64   `json:"userEngagement"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// --- Source item variants ---
//
// Each external adapter returns its own native shape. The pipeline's
// normalizer and classifier operate on these via type switch.

// NewsArticle is the NewsAPI article shape.
type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	Author      string    `json:"author"`
}

// RedditPost mirrors Reddit's listing envelope with the post payload nested
// under "data".
type RedditPost struct {
	Data RedditPostData `json:"data"`
}

type RedditPostData struct {
	Title     string `json:"title"`
	Selftext  string `json:"selftext"`
	Permalink string `json:"permalink"`
	Subreddit string `json:"subreddit"`
	Score     int    `json:"score"`
}

// GitHubRepo is a repository returned by the GitHub search API.
type GitHubRepo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Stars       int    `json:"stargazers_count"`
}

// Tweet is a tweet from the Twitter v2 recent search API.
type Tweet struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	PublicMetrics *TweetMetrics `json:"public_metrics,omitempty"`
}

type TweetMetrics struct {
	RetweetCount int `json:"retweet_count"`
}

// LinkedInPost is a LinkedIn UGC post, flattened from the nested share
// commentary shape the API returns.
type LinkedInPost struct {
	Text           string `json:"text"`
	LandingPageURL string `json:"landingPageUrl,omitempty"`
	NumLikes       int    `json:"numLikes"`
}

// StackQuestion is a StackOverflow question. The adapter tags hot and
// featured questions with an explicit type.
type StackQuestion struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	Link        string `json:"link"`
	Score       int    `json:"score"`
	AnswerCount int    `json:"answer_count"`
	Type        string `json:"type,omitempty"`
}

// RawItem is a loosely-shaped item carrying explicit fields: AI-generated
// suggestions and operator-submitted content arrive in this form.
type RawItem struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	URL            string   `json:"url"`
	Source         string   `json:"source"`
	Type           string   `json:"type,omitempty"`
	Popularity     int      `json:"popularity"`
	Tags           []string `json:"tags,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	TargetAudience []string `json:"targetAudience,omitempty"`
}
