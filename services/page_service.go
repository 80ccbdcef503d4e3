package services

import (
	"sort"
	"sync"
	"time"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/repositories"
)

const homePageTTL = 5 * time.Minute

const homePageBlogCount = 30

// PageService assembles the aggregated payloads behind the public pages
type PageService struct {
	blogRepo     *repositories.BlogRepository
	categoryRepo *repositories.CategoryRepository

	mu       sync.Mutex
	cached   *dto.HomePage
	cachedAt time.Time
}

// NewPageService creates a new page service instance
func NewPageService() *PageService {
	return &PageService{
		blogRepo:     repositories.NewBlogRepository(),
		categoryRepo: repositories.NewCategoryRepository(),
	}
}

// GetHome returns the home payload: the newest published blogs plus the
// enabled categories ordered by how many published blogs each holds. The
// payload is cached briefly; fresh forces a rebuild.
func (s *PageService) GetHome(fresh bool) (dto.HomePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fresh && s.cached != nil && time.Since(s.cachedAt) < homePageTTL {
		return *s.cached, nil
	}

	blogs, _, err := s.blogRepo.FindWithPagination(dto.BlogFilter{
		Status:    string(models.BlogPublished),
		SortBy:    "created_at",
		SortOrder: "desc",
		Page:      1,
		Limit:     homePageBlogCount,
	})
	if err != nil {
		return dto.HomePage{}, err
	}

	categories, err := s.categoryRepo.FindEnabledWithCount()
	if err != nil {
		return dto.HomePage{}, err
	}
	sortCategoriesByBlogCount(categories)

	page := dto.HomePage{
		Blogs:       dto.NewBlogViews(blogs, false),
		Categories:  categories,
		GeneratedAt: time.Now(),
	}
	s.cached = &page
	s.cachedAt = page.GeneratedAt
	return page, nil
}

// sortCategoriesByBlogCount orders the busiest categories first, name as the
// tie-breaker so equal counts keep a stable order
func sortCategoriesByBlogCount(categories []dto.CategoryWithCount) {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].BlogCount != categories[j].BlogCount {
			return categories[i].BlogCount > categories[j].BlogCount
		}
		return categories[i].Name < categories[j].Name
	})
}
