package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/internal/models"
	"techpulse/internal/validation"
)

func validContent() models.AutoContent {
	return models.AutoContent{
		ID:          "auto-1-abc",
		Title:       "A title",
		Description: "A description",
		Type:        models.ContentTypeNews,
		Source:      "src",
		URL:         "https://example.com/a",
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, validation.Validate(validContent()))
}

func TestValidateDescriptionLengthBounds(t *testing.T) {
	c := validContent()
	c.Description = ""
	assert.Error(t, validation.Validate(c))

	c.Description = strings.Repeat("x", 1001)
	assert.Error(t, validation.Validate(c))

	c.Description = strings.Repeat("x", 1000)
	assert.NoError(t, validation.Validate(c))
}

func TestValidateTitleLengthBounds(t *testing.T) {
	c := validContent()
	c.Title = ""
	assert.Error(t, validation.Validate(c))

	c.Title = strings.Repeat("x", 201)
	assert.Error(t, validation.Validate(c))
}

func TestValidateURL(t *testing.T) {
	c := validContent()

	for _, bad := range []string{"#", "not a url", "/relative/path", "example.com/no-scheme"} {
		c.URL = bad
		assert.Error(t, validation.Validate(c), "url %q should be rejected", bad)
	}
	for _, good := range []string{"https://example.com", "http://example.com/a?b=c"} {
		c.URL = good
		assert.NoError(t, validation.Validate(c), "url %q should be accepted", good)
	}
}

func TestValidateContentType(t *testing.T) {
	c := validContent()
	c.Type = "webinar"
	assert.Error(t, validation.Validate(c))
}

func TestValidateCollectsAllFailures(t *testing.T) {
	c := validContent()
	c.Title = ""
	c.URL = "#"
	c.Popularity = -1

	err := validation.Validate(c)
	require.Error(t, err)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Failures, 3)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestValidateAnalytics(t *testing.T) {
	c := validContent()
	c.Analytics = &models.ContentAnalytics{Views: -1, AverageRating: 5.5}

	err := validation.Validate(c)
	require.Error(t, err)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Failures, 2)

	c.Analytics = &models.ContentAnalytics{Views: 3, AverageRating: 4.5}
	assert.NoError(t, validation.Validate(c))
}
