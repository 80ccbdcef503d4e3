package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blogify-backend/database"
	"github.com/blogify-backend/models"
)

// openTestDB points the global connection at an in-memory store for the
// duration of one test.
func openTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Blog{},
		&models.BlogLike{}, &models.BlogBookmark{},
	))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
}

func seedBlog(t *testing.T, status models.BlogStatus) (models.Blog, models.User) {
	t.Helper()

	user := models.User{Username: "writer", Email: "writer@example.com", Password: "x", Role: models.RoleBlogger}
	require.NoError(t, database.DB.Create(&user).Error)

	category := models.Category{Name: "Engineering", Slug: "engineering"}
	require.NoError(t, database.DB.Create(&category).Error)

	blog := models.Blog{
		Title:      "Go in production",
		Slug:       "go-in-production",
		Status:     status,
		CategoryID: category.ID,
		UserID:     user.ID,
	}
	require.NoError(t, database.DB.Create(&blog).Error)
	return blog, user
}

func TestToggleLikeRoundTrip(t *testing.T) {
	openTestDB(t)
	repo := NewBlogRepository()
	blog, user := seedBlog(t, models.BlogPublished)

	likes, liked, err := repo.ToggleLike(blog.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.True(t, liked)

	likes, liked, err = repo.ToggleLike(blog.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.False(t, liked)

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Likes)
}

func TestToggleLikeCounterTracksMembership(t *testing.T) {
	openTestDB(t)
	repo := NewBlogRepository()
	blog, first := seedBlog(t, models.BlogPublished)

	second := models.User{Username: "reader", Email: "reader@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, database.DB.Create(&second).Error)

	_, _, err := repo.ToggleLike(blog.ID, first.ID)
	require.NoError(t, err)
	likes, liked, err := repo.ToggleLike(blog.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), likes)
	assert.True(t, liked)

	// Removing one like leaves the other user's like counted.
	likes, liked, err = repo.ToggleLike(blog.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.False(t, liked)

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Likes)
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	openTestDB(t)
	repo := NewBlogRepository()
	blog, user := seedBlog(t, models.BlogPublished)

	bookmarks, bookmarked, err := repo.ToggleBookmark(blog.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bookmarks)
	assert.True(t, bookmarked)

	bookmarks, bookmarked, err = repo.ToggleBookmark(blog.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bookmarks)
	assert.False(t, bookmarked)

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Bookmarks)
}
