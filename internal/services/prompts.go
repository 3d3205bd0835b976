package services

import (
	"fmt"
	"strings"

	"techpulse/internal/models"
)

const (
	generationSystemPrompt = "You are a content generation assistant that creates high-quality educational content."
	suggestionSystemPrompt = "You are a content discovery assistant that identifies valuable topics for technology education and entertainment."
)

const suggestionPrompt = `Generate 5 trending topics in technology, AI, and programming that would be valuable for our platform.
For each topic, provide:
1. title
2. description
3. contentType (game/course/training/news)
4. targetAudience
Respond with a JSON array only, no prose.`

// generationPrompt builds the user prompt for a batch of the given type.
// Every prompt demands the same JSON element shape so the response parses
// into a RawItem regardless of type.
func generationPrompt(t models.ContentType, count int) string {
	var subject string
	switch t {
	case models.ContentTypeGame:
		subject = fmt.Sprintf("%d unique and engaging educational games related to technology, programming, and AI", count)
	case models.ContentTypeCourse:
		subject = fmt.Sprintf("%d educational courses on technology and programming (%d free, %d paid)", count, count/2, count-count/2)
	case models.ContentTypeTraining:
		subject = fmt.Sprintf("%d professional training programs for software engineers", count)
	default:
		subject = fmt.Sprintf("%d latest technology news articles", count)
	}

	return fmt.Sprintf(`Generate %s.
For each item, provide:
1. title
2. description
3. tags (list of strings)
4. difficulty (beginner/intermediate/advanced)
5. targetAudience (list of strings)
Respond with a JSON array only, no prose.`, subject)
}

// placeholderURL builds the stand-in link for generated content, derived from
// the title the way the public site slugs its pages.
func placeholderURL(t models.ContentType, title string) string {
	return fmt.Sprintf("https://example.com/%ss/%s", t, slugify(title))
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "untitled"
	}
	return slug
}
