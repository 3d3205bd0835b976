// Package validation schema-checks normalized AutoContent before it enters
// scoring. Items failing validation are dropped by the orchestrator, never
// repaired.
package validation

import (
	"fmt"
	"net/url"

	"techpulse/internal/models"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxAverageRating  = 5
)

// Validate checks the structural constraints on a normalized record and
// returns a *models.ValidationError listing every failed constraint, or nil.
func Validate(c models.AutoContent) error {
	var failures []string

	if l := len(c.Title); l < 1 || l > maxTitleLen {
		failures = append(failures, fmt.Sprintf("title length must be in [1,%d], got %d", maxTitleLen, l))
	}
	if l := len(c.Description); l < 1 || l > maxDescriptionLen {
		failures = append(failures, fmt.Sprintf("description length must be in [1,%d], got %d", maxDescriptionLen, l))
	}
	if !isAbsoluteURL(c.URL) {
		failures = append(failures, fmt.Sprintf("url %q is not a valid absolute URL", c.URL))
	}
	if !models.IsValidContentType(string(c.Type)) {
		failures = append(failures, fmt.Sprintf("content type %q is not one of the four enumerated values", c.Type))
	}
	if c.Popularity < 0 {
		failures = append(failures, fmt.Sprintf("popularity must be >= 0, got %d", c.Popularity))
	}
	if c.Analytics != nil {
		failures = append(failures, validateAnalytics(c.Analytics)...)
	}

	if len(failures) > 0 {
		return &models.ValidationError{ContentID: c.ID, Failures: failures}
	}
	return nil
}

func validateAnalytics(a *models.ContentAnalytics) []string {
	var failures []string
	counters := []struct {
		name  string
		value int
	}{
		{"views", a.Views},
		{"likes", a.Likes},
		{"shares", a.Shares},
		{"comments", a.Comments},
	}
	for _, c := range counters {
		if c.value < 0 {
			failures = append(failures, fmt.Sprintf("analytics %s must be >= 0, got %d", c.name, c.value))
		}
	}
	if a.AverageRating < 0 || a.AverageRating > maxAverageRating {
		failures = append(failures, fmt.Sprintf("average rating must be in [0,%d], got %g", maxAverageRating, a.AverageRating))
	}
	if a.UserEngagement < 0 {
		failures = append(failures, fmt.Sprintf("user engagement must be >= 0, got %g", a.UserEngagement))
	}
	return failures
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
