package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogify-backend/database"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
)

func TestGetHome(t *testing.T) {
	openTestDB(t)

	author := models.User{Username: "writer", Email: "writer@example.com", Password: "x", Role: models.RoleBlogger}
	require.NoError(t, database.DB.Create(&author).Error)

	quiet := models.Category{Name: "Art", Slug: "art"}
	busy := models.Category{Name: "Tech", Slug: "tech"}
	require.NoError(t, database.DB.Create(&quiet).Error)
	require.NoError(t, database.DB.Create(&busy).Error)

	published := []models.Blog{
		{Title: "First", Slug: "first", Status: models.BlogPublished, CategoryID: busy.ID, UserID: author.ID},
		{Title: "Second", Slug: "second", Status: models.BlogPublished, CategoryID: busy.ID, UserID: author.ID},
		{Title: "Third", Slug: "third", Status: models.BlogPublished, CategoryID: quiet.ID, UserID: author.ID},
	}
	for i := range published {
		require.NoError(t, database.DB.Create(&published[i]).Error)
	}
	pending := models.Blog{Title: "Hidden", Slug: "hidden", Status: models.BlogPending, CategoryID: busy.ID, UserID: author.ID}
	require.NoError(t, database.DB.Create(&pending).Error)

	svc := NewPageService()
	page, err := svc.GetHome(true)
	require.NoError(t, err)

	assert.Len(t, page.Blogs, 3)
	for _, blog := range page.Blogs {
		assert.Equal(t, models.BlogPublished, blog.Status)
	}

	require.Len(t, page.Categories, 2)
	assert.Equal(t, "Tech", page.Categories[0].Name)
	assert.Equal(t, int64(2), page.Categories[0].BlogCount)
	assert.Equal(t, "Art", page.Categories[1].Name)
	assert.Equal(t, int64(1), page.Categories[1].BlogCount)
}

func TestGetHomeServesCachedPayload(t *testing.T) {
	openTestDB(t)

	svc := NewPageService()
	first, err := svc.GetHome(false)
	require.NoError(t, err)

	// A cached read must not rebuild within the TTL.
	again, err := svc.GetHome(false)
	require.NoError(t, err)
	assert.Equal(t, first.GeneratedAt, again.GeneratedAt)

	fresh, err := svc.GetHome(true)
	require.NoError(t, err)
	assert.False(t, fresh.GeneratedAt.Before(first.GeneratedAt))
}

func TestSortCategoriesByBlogCount(t *testing.T) {
	categories := []dto.CategoryWithCount{
		{Name: "Art", BlogCount: 1},
		{Name: "Tech", BlogCount: 5},
		{Name: "Food", BlogCount: 5},
	}
	sortCategoriesByBlogCount(categories)

	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Tech", categories[1].Name)
	assert.Equal(t, "Art", categories[2].Name)
}
