package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/blogify-backend/database"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
)

// BlogRepository handles database operations for blogs
type BlogRepository struct{}

// NewBlogRepository creates a new blog repository instance
func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

func withRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Category").Preload("User")
}

// FindByID retrieves a non-deleted blog with its references
func (r *BlogRepository) FindByID(id string) (models.Blog, error) {
	var blog models.Blog
	result := withRefs(database.DB).First(&blog, "id = ? AND is_deleted = ?", id, false)
	return blog, result.Error
}

// FindByIDAny retrieves a blog even when soft-deleted; used by admin
// hard delete, the one operation allowed to see deleted blogs.
func (r *BlogRepository) FindByIDAny(id string) (models.Blog, error) {
	var blog models.Blog
	result := withRefs(database.DB).First(&blog, "id = ?", id)
	return blog, result.Error
}

// FindBySlug retrieves a non-deleted blog by slug with its references
func (r *BlogRepository) FindBySlug(slug string) (models.Blog, error) {
	var blog models.Blog
	result := withRefs(database.DB).First(&blog, "slug = ? AND is_deleted = ?", slug, false)
	return blog, result.Error
}

// Create inserts a new blog. Title and slug uniqueness is enforced by the
// database indexes; a duplicate comes back as gorm.ErrDuplicatedKey.
func (r *BlogRepository) Create(blog *models.Blog) error {
	return database.DB.Create(blog).Error
}

// Save persists all fields of an existing blog
func (r *BlogRepository) Save(blog *models.Blog) error {
	return database.DB.Save(blog).Error
}

// SoftDelete marks a blog deleted without removing the row
func (r *BlogRepository) SoftDelete(id string) error {
	return database.DB.Model(&models.Blog{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

// HardDelete removes a blog and its engagement rows permanently
func (r *BlogRepository) HardDelete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BlogLike{}, "blog_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.BlogBookmark{}, "blog_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, "id = ?", id).Error
	})
}

// IncrementViews bumps the view counter without touching updated_at
func (r *BlogRepository) IncrementViews(id string) error {
	return database.DB.Model(&models.Blog{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// FindWithPagination retrieves blogs with filtering, visibility scoping,
// sorting and pagination. Non-admin actors only see their own blogs plus
// published ones; anonymous actors only published ones.
func (r *BlogRepository) FindWithPagination(filter dto.BlogFilter) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	db := database.DB.Model(&models.Blog{}).Where("is_deleted = ?", false)

	if !filter.ActorIsAdmin {
		if filter.ActorID != "" {
			db = db.Where("(user_id = ? OR status = ?)", filter.ActorID, models.BlogPublished)
		} else {
			db = db.Where("status = ?", models.BlogPublished)
		}
	}

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		db = db.Where("category_id = ?", filter.CategoryID)
	}
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Featured != nil {
		db = db.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Hot != nil {
		db = db.Where("is_hot = ?", *filter.Hot)
	}
	if filter.Popular != nil {
		db = db.Where("is_popular = ?", *filter.Popular)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ? OR excerpt ILIKE ?)",
			pattern, pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	order := filter.SortBy + " " + filter.SortOrder
	if err := withRefs(db).Order(order).Limit(filter.Limit).Offset(offset).Find(&blogs).Error; err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// StatusCounts buckets non-deleted blogs by state, optionally scoped to one
// owner.
func (r *BlogRepository) StatusCounts(userID string) (dto.BlogStatusCounts, error) {
	var rows []struct {
		Status models.BlogStatus
		Count  int64
	}

	db := database.DB.Model(&models.Blog{}).Where("is_deleted = ?", false)
	if userID != "" {
		db = db.Where("user_id = ?", userID)
	}
	if err := db.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return dto.BlogStatusCounts{}, err
	}

	var counts dto.BlogStatusCounts
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case models.BlogDraft:
			counts.Draft = row.Count
		case models.BlogPending:
			counts.Pending = row.Count
		case models.BlogPublished:
			counts.Published = row.Count
		case models.BlogRejected:
			counts.Rejected = row.Count
		}
	}
	return counts, nil
}

// CountByCategoryID counts non-deleted blogs referencing a category; this
// is the guard consulted before a category delete.
func (r *BlogRepository) CountByCategoryID(categoryID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Blog{}).
		Where("category_id = ? AND is_deleted = ?", categoryID, false).
		Count(&count)
	return count, result.Error
}

// CountCreatedSince counts non-deleted blogs created at or after t
func (r *BlogRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Blog{}).
		Where("created_at >= ? AND is_deleted = ?", t, false).
		Count(&count)
	return count, result.Error
}

// SumCounter totals an engagement counter column over non-deleted blogs
func (r *BlogRepository) SumCounter(column string) (int64, error) {
	var total int64
	err := database.DB.Model(&models.Blog{}).
		Where("is_deleted = ?", false).
		Select("COALESCE(SUM(" + column + "), 0)").
		Scan(&total).Error
	return total, err
}

// ToggleLike flips userID's like of blogID inside one transaction and keeps
// the counter equal to the membership size. Returns the new count and
// whether the blog ends up liked.
func (r *BlogRepository) ToggleLike(blogID, userID string) (int64, bool, error) {
	var likes int64
	var liked bool

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.BlogLike{}).
			Where("blog_id = ? AND user_id = ?", blogID, userID).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Delete(&models.BlogLike{}, "blog_id = ? AND user_id = ?", blogID, userID).Error; err != nil {
				return err
			}
			liked = false
		} else {
			if err := tx.Create(&models.BlogLike{BlogID: blogID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
		}

		if err := tx.Model(&models.BlogLike{}).Where("blog_id = ?", blogID).Count(&likes).Error; err != nil {
			return err
		}
		return tx.Model(&models.Blog{}).Where("id = ?", blogID).
			UpdateColumn("likes", likes).Error
	})

	return likes, liked, err
}

// ToggleBookmark flips userID's bookmark of blogID, mirroring ToggleLike.
func (r *BlogRepository) ToggleBookmark(blogID, userID string) (int64, bool, error) {
	var bookmarks int64
	var bookmarked bool

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.BlogBookmark{}).
			Where("blog_id = ? AND user_id = ?", blogID, userID).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Delete(&models.BlogBookmark{}, "blog_id = ? AND user_id = ?", blogID, userID).Error; err != nil {
				return err
			}
			bookmarked = false
		} else {
			if err := tx.Create(&models.BlogBookmark{BlogID: blogID, UserID: userID}).Error; err != nil {
				return err
			}
			bookmarked = true
		}

		if err := tx.Model(&models.BlogBookmark{}).Where("blog_id = ?", blogID).Count(&bookmarks).Error; err != nil {
			return err
		}
		return tx.Model(&models.Blog{}).Where("id = ?", blogID).
			UpdateColumn("bookmarks", bookmarks).Error
	})

	return bookmarks, bookmarked, err
}

// FindBookmarkedBy retrieves the published blogs a user has bookmarked
func (r *BlogRepository) FindBookmarkedBy(userID string) ([]models.Blog, error) {
	var blogs []models.Blog
	err := withRefs(database.DB).
		Joins("JOIN blog_bookmarks ON blog_bookmarks.blog_id = blogs.id").
		Where("blog_bookmarks.user_id = ? AND blogs.is_deleted = ? AND blogs.status = ?",
			userID, false, models.BlogPublished).
		Order("blogs.created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// FindRelated retrieves the most viewed published blogs sharing a category
func (r *BlogRepository) FindRelated(categoryID, excludeID string, limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := withRefs(database.DB).
		Where("category_id = ? AND id <> ? AND status = ? AND is_deleted = ?",
			categoryID, excludeID, models.BlogPublished, false).
		Order("views DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// FindTrending retrieves recently created published blogs
func (r *BlogRepository) FindTrending(since time.Time, limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := withRefs(database.DB).
		Where("created_at >= ? AND status = ? AND is_deleted = ?",
			since, models.BlogPublished, false).
		Order("views DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// FindTop retrieves the most viewed non-deleted blogs
func (r *BlogRepository) FindTop(limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := withRefs(database.DB).
		Where("is_deleted = ?", false).
		Order("views DESC, likes DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// FindRecent retrieves the newest non-deleted blogs
func (r *BlogRepository) FindRecent(limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := withRefs(database.DB).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// FindPending retrieves the newest pending blogs for the review queue
func (r *BlogRepository) FindPending(limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := withRefs(database.DB).
		Where("status = ? AND is_deleted = ?", models.BlogPending, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// PublishedSlugs lists slug and update time of every published blog; feeds
// the sitemap generator.
func (r *BlogRepository) PublishedSlugs() ([]SlugEntry, error) {
	var entries []SlugEntry
	err := database.DB.Model(&models.Blog{}).
		Select("slug, updated_at").
		Where("status = ? AND is_deleted = ?", models.BlogPublished, false).
		Order("updated_at DESC").
		Scan(&entries).Error
	return entries, err
}

// MonthlyStatusCounts counts blog submissions per month and state
func (r *BlogRepository) MonthlyStatusCounts(since time.Time) ([]MonthStatusBucket, error) {
	var buckets []MonthStatusBucket
	err := database.DB.Model(&models.Blog{}).
		Select("date_trunc('month', created_at) AS month, status, COUNT(*) AS count").
		Where("created_at >= ? AND is_deleted = ?", since, false).
		Group("month, status").
		Order("month").
		Scan(&buckets).Error
	return buckets, err
}

// DailyStats aggregates blog creation and engagement per day in a period
func (r *BlogRepository) DailyStats(start, end time.Time) ([]DayStatBucket, error) {
	var buckets []DayStatBucket
	err := database.DB.Model(&models.Blog{}).
		Select(`to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS count,
			COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(likes), 0) AS total_likes`).
		Where("created_at BETWEEN ? AND ? AND is_deleted = ?", start, end, false).
		Group("day").
		Order("day").
		Scan(&buckets).Error
	return buckets, err
}

// CategoryDistribution counts non-deleted blogs per enabled category
func (r *BlogRepository) CategoryDistribution(limit int) ([]CategoryBucket, error) {
	var buckets []CategoryBucket
	err := database.DB.Model(&models.Category{}).
		Select("categories.name, COUNT(blogs.id) AS count").
		Joins("LEFT JOIN blogs ON blogs.category_id = categories.id AND blogs.is_deleted = ?", false).
		Where("categories.status = ?", true).
		Group("categories.name").
		Order("count DESC").
		Limit(limit).
		Scan(&buckets).Error
	return buckets, err
}

// CategoryAnalytics aggregates per-category engagement over a period
func (r *BlogRepository) CategoryAnalytics(start, end time.Time) ([]CategoryStatBucket, error) {
	var buckets []CategoryStatBucket
	err := database.DB.Model(&models.Blog{}).
		Select(`categories.name AS category, COUNT(blogs.id) AS count,
			COALESCE(AVG(blogs.views), 0) AS avg_views, COALESCE(AVG(blogs.likes), 0) AS avg_likes`).
		Joins("JOIN categories ON categories.id = blogs.category_id").
		Where("blogs.created_at BETWEEN ? AND ? AND blogs.is_deleted = ?", start, end, false).
		Group("categories.name").
		Order("count DESC").
		Scan(&buckets).Error
	return buckets, err
}

// DB returns the database instance
func (r *BlogRepository) DB() *gorm.DB {
	return database.DB
}

// SlugEntry is one sitemap row.
type SlugEntry struct {
	Slug      string
	UpdatedAt time.Time
}

// MonthStatusBucket is a month/state grouped aggregation row.
type MonthStatusBucket struct {
	Month  time.Time
	Status models.BlogStatus
	Count  int64
}

// DayStatBucket is a day-grouped engagement aggregation row.
type DayStatBucket struct {
	Day        string
	Count      int64
	TotalViews int64
	TotalLikes int64
}

// CategoryBucket is a per-category count row.
type CategoryBucket struct {
	Name  string
	Count int64
}

// CategoryStatBucket is a per-category engagement row.
type CategoryStatBucket struct {
	Category string
	Count    int64
	AvgViews float64
	AvgLikes float64
}
