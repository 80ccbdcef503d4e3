package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blogify-backend/database"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/utils"
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

func TestToggleLikeRejectsUnpublished(t *testing.T) {
	openTestDB(t)
	svc := NewBlogService()
	blog, owner := seedBlog(t, models.BlogPending)

	_, err := svc.ToggleLike(blog.ID, owner)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))

	stored, err := svc.blogRepo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Likes)
}

func TestToggleBookmarkRejectsUnpublished(t *testing.T) {
	openTestDB(t)
	svc := NewBlogService()
	blog, owner := seedBlog(t, models.BlogRejected)

	_, err := svc.ToggleBookmark(blog.ID, owner)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))

	stored, err := svc.blogRepo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Bookmarks)
}

func TestToggleLikePublished(t *testing.T) {
	openTestDB(t)
	svc := NewBlogService()
	blog, owner := seedBlog(t, models.BlogPublished)

	resp, err := svc.ToggleLike(blog.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Likes)
	assert.True(t, resp.IsLiked)
}

func TestModerationRequiresAdmin(t *testing.T) {
	openTestDB(t)
	svc := NewBlogService()
	blog, owner := seedBlog(t, models.BlogPending)

	_, err := svc.ApproveBlog(blog.ID, dto.ApproveBlogRequest{}, owner)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, utils.StatusOf(err))

	_, err = svc.RejectBlog(blog.ID, dto.RejectBlogRequest{RejectionReason: "off topic"}, owner)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, utils.StatusOf(err))

	stored, err := svc.blogRepo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BlogPending, stored.Status)
}

func TestSitemapStale(t *testing.T) {
	tests := []struct {
		name         string
		wasPublished bool
		isPublished  bool
		oldSlug      string
		newSlug      string
		want         bool
	}{
		{"blog published", false, true, "a", "a", true},
		{"blog unpublished", true, false, "a", "a", true},
		{"published slug changed", true, true, "a", "b", true},
		{"published untouched", true, true, "a", "a", false},
		{"unpublished slug changed", false, false, "a", "b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sitemapStale(tt.wasPublished, tt.isPublished, tt.oldSlug, tt.newSlug))
		})
	}
}
