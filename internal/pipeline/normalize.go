// Package pipeline converts heterogeneous source items into canonical
// AutoContent records and assigns content-type tags.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"techpulse/internal/models"
	"techpulse/internal/util"
)

// Normalize maps any source item variant into an AutoContent record. It
// never fails: absent fields degrade to defaults instead of raising errors.
// Field priority follows the original extraction rules — a title-like field
// falls back to the item's text, a description-like field to its body, and
// the URL to a "#" placeholder.
func Normalize(item any) models.AutoContent {
	content := models.AutoContent{
		ID:         NewContentID(),
		URL:        "#",
		Source:     "unknown",
		Type:       Classify(item),
		Timestamp:  time.Now(),
		Tags:       []string{},
		Popularity: 0,
	}

	switch v := item.(type) {
	case models.NewsArticle:
		content.Title = v.Title
		content.Description = v.Description
		if v.URL != "" {
			content.URL = v.URL
		}
		if v.Source != "" {
			content.Source = v.Source
		}
	case models.RedditPost:
		content.Title = v.Data.Title
		content.Description = v.Data.Selftext
		if v.Data.Permalink != "" {
			content.URL = v.Data.Permalink
		}
	case models.GitHubRepo:
		content.Title = v.Name
		content.Description = v.Description
		if v.HTMLURL != "" {
			content.URL = v.HTMLURL
		}
	case models.Tweet:
		content.Title = v.Text
	case models.LinkedInPost:
		content.Title = v.Text
		if v.LandingPageURL != "" {
			content.URL = v.LandingPageURL
		}
	case models.StackQuestion:
		content.Title = v.Title
		// Question bodies arrive as HTML.
		content.Description = util.StripHTML(v.Body)
		if v.Link != "" {
			content.URL = v.Link
		}
	case models.RawItem:
		content.Title = v.Title
		content.Description = v.Description
		if v.URL != "" {
			content.URL = v.URL
		}
		if v.Source != "" {
			content.Source = v.Source
		}
		content.Popularity = v.Popularity
		if len(v.Tags) > 0 {
			content.Tags = v.Tags
		}
		content.Difficulty = v.Difficulty
		content.TargetAudience = v.TargetAudience
	}

	content.Title = util.CleanText(content.Title)
	content.Description = util.CleanText(content.Description)
	return content
}

// NewContentID builds a pipeline-unique identifier from the current Unix
// millisecond and a random suffix, so items normalized within the same
// millisecond never collide.
func NewContentID() string {
	return fmt.Sprintf("auto-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
