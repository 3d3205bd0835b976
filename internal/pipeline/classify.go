package pipeline

import (
	"strings"

	"techpulse/internal/models"
)

// Classify assigns a content type to a source item. The rules are evaluated
// in order and the first match wins:
//
//  1. an explicit type field is used verbatim
//  2. a source label containing "news" classifies as news
//  3. Q&A and repository shapes classify as training
//  4. tweet and social-post shapes classify as course
//  5. everything else defaults to news
func Classify(item any) models.ContentType {
	if t := explicitType(item); t != "" {
		return models.ContentType(t)
	}
	if src := sourceLabel(item); strings.Contains(strings.ToLower(src), "news") {
		return models.ContentTypeNews
	}
	switch item.(type) {
	case models.StackQuestion, models.GitHubRepo:
		return models.ContentTypeTraining
	case models.Tweet, models.LinkedInPost:
		return models.ContentTypeCourse
	}
	return models.ContentTypeNews
}

func explicitType(item any) string {
	switch v := item.(type) {
	case models.StackQuestion:
		return v.Type
	case models.RawItem:
		return v.Type
	}
	return ""
}

func sourceLabel(item any) string {
	switch v := item.(type) {
	case models.NewsArticle:
		return v.Source
	case models.RawItem:
		return v.Source
	}
	return ""
}
