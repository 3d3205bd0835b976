package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/internal/models"
	"techpulse/internal/store/memory"
)

func item(id string, contentType models.ContentType) models.AutoContent {
	return models.AutoContent{
		ID:          id,
		Title:       "t",
		Description: "d",
		Type:        contentType,
		Source:      "s",
		URL:         "https://example.com/" + id,
	}
}

func TestSaveAndListByType(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, s.SaveContent(ctx, []models.AutoContent{item("a", models.ContentTypeGame)}, models.ContentTypeGame))
	require.NoError(t, s.SaveContent(ctx, []models.AutoContent{item("b", models.ContentTypeNews)}, models.ContentTypeNews))

	games, err := s.ListContent(ctx, models.ContentTypeGame)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "a", games[0].ID)

	news, err := s.ListContent(ctx, models.ContentTypeNews)
	require.NoError(t, err)
	require.Len(t, news, 1)
}

func TestSaveRejectsInvalidType(t *testing.T) {
	s := memory.NewStore()
	err := s.SaveContent(context.Background(), nil, "webinar")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPersistence)
}

func TestListReturnsCopy(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.SaveContent(ctx, []models.AutoContent{item("a", models.ContentTypeGame)}, models.ContentTypeGame))

	first, err := s.ListContent(ctx, models.ContentTypeGame)
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := s.ListContent(ctx, models.ContentTypeGame)
	require.NoError(t, err)
	assert.Equal(t, "t", second[0].Title)
}

func TestGetContentAcrossTypes(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.SaveContent(ctx, []models.AutoContent{item("x", models.ContentTypeCourse)}, models.ContentTypeCourse))

	got, err := s.GetContent(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, models.ContentTypeCourse, got.Type)

	_, err = s.GetContent(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateAnalyticsCreatesBlock(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.SaveContent(ctx, []models.AutoContent{item("x", models.ContentTypeNews)}, models.ContentTypeNews))

	require.NoError(t, s.UpdateAnalytics(ctx, "x", func(a *models.ContentAnalytics) { a.Views++ }))
	require.NoError(t, s.UpdateAnalytics(ctx, "x", func(a *models.ContentAnalytics) { a.Views++ }))

	got, err := s.GetContent(ctx, "x")
	require.NoError(t, err)
	require.NotNil(t, got.Analytics)
	assert.Equal(t, 2, got.Analytics.Views)
	assert.Equal(t, "x", got.Analytics.ContentID)

	err = s.UpdateAnalytics(ctx, "missing", func(a *models.ContentAnalytics) {})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCountContent(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.SaveContent(ctx, []models.AutoContent{item("a", models.ContentTypeGame), item("b", models.ContentTypeGame)}, models.ContentTypeGame))

	counts := s.CountContent(ctx)
	assert.Equal(t, 2, counts[models.ContentTypeGame])
	assert.Zero(t, counts[models.ContentTypeNews])
}
