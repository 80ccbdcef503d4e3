package services

import (
	"log"
	"time"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/policy"
	"github.com/blogify-backend/repositories"
	"github.com/blogify-backend/utils"
)

// BlogService handles business logic for the blog lifecycle
type BlogService struct {
	blogRepo     *repositories.BlogRepository
	categoryRepo *repositories.CategoryRepository
	userRepo     *repositories.UserRepository
	mailService  *MailService
	sitemap      *SitemapService
}

// NewBlogService creates a new blog service instance
func NewBlogService() *BlogService {
	return &BlogService{
		blogRepo:     repositories.NewBlogRepository(),
		categoryRepo: repositories.NewCategoryRepository(),
		userRepo:     repositories.NewUserRepository(),
		mailService:  NewMailService(),
		sitemap:      NewSitemapService(),
	}
}

// CreateBlog creates a blog. Admin-created blogs are published immediately;
// everyone else's start pending. Promotion flags and a backdated createdAt
// are honored only for admins.
func (s *BlogService) CreateBlog(req dto.CreateBlogRequest, actor models.User) (dto.BlogView, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err, "Category not found", "")
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	blog := models.Blog{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		UserID:      actor.ID,
		Tags:        req.Tags,
		Keywords:    req.Keywords,
		ReadTime:    utils.CalculateReadTime(req.Description),
		Status:      models.BlogPending,
	}

	if actor.IsAdmin() {
		if err := blog.Approve(actor.ID, models.PromoFlags{
			Featured: req.IsFeatured,
			Hot:      req.IsHot,
			Popular:  req.IsPopular,
		}); err != nil {
			return dto.BlogView{}, err
		}
		if req.CreatedAt != nil {
			blog.CreatedAt = *req.CreatedAt
		}
	}

	if err := s.blogRepo.Create(&blog); err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err,
			"Blog not found", "A blog with this title or slug already exists")
	}

	if blog.Status == models.BlogPublished {
		s.regenerateSitemap()
	}

	created, err := s.blogRepo.FindByID(blog.ID)
	if err != nil {
		return dto.BlogView{}, err
	}
	return dto.NewBlogView(created, actor.IsAdmin()), nil
}

// ListBlogs retrieves blogs with filtering, sorting and pagination. The
// filter's actor fields decide visibility: anonymous and non-admin callers
// never see other people's unpublished blogs.
func (s *BlogService) ListBlogs(filter dto.BlogFilter) ([]dto.BlogView, utils.Pagination, error) {
	normalizeBlogFilter(&filter)

	blogs, total, err := s.blogRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}

	views := dto.NewBlogViews(blogs, filter.ActorIsAdmin)
	return views, utils.NewPagination(filter.Page, filter.Limit, total), nil
}

// GetBlogByID retrieves one blog. Blogs the actor may not view come back as
// not found so their existence is not leaked.
func (s *BlogService) GetBlogByID(id string, actor *models.User) (dto.BlogView, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err, "Blog not found", "")
	}

	if !policy.CanView(actor, &blog) {
		return dto.BlogView{}, utils.NewNotFoundError("Blog not found")
	}

	return dto.NewBlogView(blog, actor != nil && actor.IsAdmin()), nil
}

// GetBlogBySlug retrieves one blog by slug for the public reading page,
// together with related blogs from the same category. Published reads count
// as a view.
func (s *BlogService) GetBlogBySlug(slug string, actor *models.User) (dto.BlogView, []dto.BlogView, error) {
	blog, err := s.blogRepo.FindBySlug(slug)
	if err != nil {
		return dto.BlogView{}, nil, utils.TranslateDBError(err, "Blog not found", "")
	}

	if !policy.CanView(actor, &blog) {
		return dto.BlogView{}, nil, utils.NewNotFoundError("Blog not found")
	}

	if blog.Status == models.BlogPublished {
		if err := s.blogRepo.IncrementViews(blog.ID); err != nil {
			log.Printf("Warning: failed to count view for blog %s: %v", blog.ID, err)
		} else {
			blog.Views++
		}
	}

	related, err := s.blogRepo.FindRelated(blog.CategoryID, blog.ID, 3)
	if err != nil {
		return dto.BlogView{}, nil, err
	}

	forAdmin := actor != nil && actor.IsAdmin()
	return dto.NewBlogView(blog, forAdmin), dto.NewBlogViews(related, false), nil
}

// GetTrending retrieves the most viewed blogs published in the last 30 days
func (s *BlogService) GetTrending(limit int) ([]dto.BlogView, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	blogs, err := s.blogRepo.FindTrending(time.Now().AddDate(0, 0, -30), limit)
	if err != nil {
		return nil, err
	}
	return dto.NewBlogViews(blogs, false), nil
}

// UpdateBlog applies a content edit. Non-admin edits knock the blog back to
// pending and clear any earlier moderation decision.
func (s *BlogService) UpdateBlog(id string, req dto.UpdateBlogRequest, actor models.User) (dto.BlogView, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err, "Blog not found", "")
	}

	if !policy.CanView(&actor, &blog) {
		return dto.BlogView{}, utils.NewNotFoundError("Blog not found")
	}
	if !policy.CanEdit(&actor, &blog) {
		return dto.BlogView{}, utils.NewAuthorizationError("You cannot edit a published blog")
	}

	wasPublished := blog.Status == models.BlogPublished
	oldSlug := blog.Slug
	s.applyContentUpdate(&blog, req)

	if !actor.IsAdmin() {
		blog.ApplyOwnerEdit()
	}

	if err := s.blogRepo.Save(&blog); err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err,
			"Blog not found", "A blog with this title or slug already exists")
	}

	if sitemapStale(wasPublished, blog.Status == models.BlogPublished, oldSlug, blog.Slug) {
		s.regenerateSitemap()
	}

	return s.GetBlogByID(id, &actor)
}

// AdminUpdateBlog applies an admin edit, optionally forcing an explicit
// moderation state and promotion flags in the same request.
func (s *BlogService) AdminUpdateBlog(id string, req dto.AdminUpdateBlogRequest, actor models.User) (dto.BlogView, error) {
	if !policy.CanChangeStatusDirectly(&actor) {
		return dto.BlogView{}, utils.NewAuthorizationError("Admin access required")
	}

	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err, "Blog not found", "")
	}

	wasPublished := blog.Status == models.BlogPublished
	oldSlug := blog.Slug
	s.applyContentUpdate(&blog, req.UpdateBlogRequest)

	if req.Status != nil {
		if err := blog.ApplyAdminStatus(actor.ID, models.BlogStatus(*req.Status), req.RejectionReason); err != nil {
			return dto.BlogView{}, err
		}
	}
	if req.IsFeatured != nil {
		blog.IsFeatured = *req.IsFeatured
	}
	if req.IsHot != nil {
		blog.IsHot = *req.IsHot
	}
	if req.IsPopular != nil {
		blog.IsPopular = *req.IsPopular
	}
	if req.CreatedAt != nil {
		blog.CreatedAt = *req.CreatedAt
	}

	if err := s.blogRepo.Save(&blog); err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err,
			"Blog not found", "A blog with this title or slug already exists")
	}

	if sitemapStale(wasPublished, blog.Status == models.BlogPublished, oldSlug, blog.Slug) {
		s.regenerateSitemap()
	}

	return s.GetBlogByID(id, &actor)
}

// ApproveBlog publishes a pending, draft or rejected blog
func (s *BlogService) ApproveBlog(id string, req dto.ApproveBlogRequest, actor models.User) (dto.BlogView, error) {
	if !policy.CanChangeStatusDirectly(&actor) {
		return dto.BlogView{}, utils.NewAuthorizationError("Admin access required")
	}

	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err, "Blog not found", "")
	}

	if err := blog.Approve(actor.ID, models.PromoFlags{
		Featured: req.IsFeatured,
		Hot:      req.IsHot,
		Popular:  req.IsPopular,
	}); err != nil {
		return dto.BlogView{}, err
	}

	if err := s.blogRepo.Save(&blog); err != nil {
		return dto.BlogView{}, err
	}

	s.notifyDecision(blog)
	s.regenerateSitemap()

	return s.GetBlogByID(id, &actor)
}

// RejectBlog moves a non-published blog to rejected with a reason the owner
// will see
func (s *BlogService) RejectBlog(id string, req dto.RejectBlogRequest, actor models.User) (dto.BlogView, error) {
	if !policy.CanChangeStatusDirectly(&actor) {
		return dto.BlogView{}, utils.NewAuthorizationError("Admin access required")
	}

	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err, "Blog not found", "")
	}

	if err := blog.Reject(actor.ID, req.RejectionReason); err != nil {
		return dto.BlogView{}, err
	}

	if err := s.blogRepo.Save(&blog); err != nil {
		return dto.BlogView{}, err
	}

	s.notifyDecision(blog)

	return s.GetBlogByID(id, &actor)
}

// SubmitForReview is the owner's resubmission of a rejected blog
func (s *BlogService) SubmitForReview(id string, actor models.User) (dto.BlogView, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.BlogView{}, utils.TranslateDBError(err, "Blog not found", "")
	}

	if !policy.CanView(&actor, &blog) {
		return dto.BlogView{}, utils.NewNotFoundError("Blog not found")
	}
	if !actor.IsAdmin() && blog.UserID != actor.ID {
		return dto.BlogView{}, utils.NewAuthorizationError("You can only resubmit your own blogs")
	}

	if err := blog.SubmitForReview(); err != nil {
		return dto.BlogView{}, err
	}

	if err := s.blogRepo.Save(&blog); err != nil {
		return dto.BlogView{}, err
	}

	return s.GetBlogByID(id, &actor)
}

// DeleteBlog removes a blog. Owners soft-delete their pending or rejected
// blogs; admins hard-delete any blog together with its engagement rows.
func (s *BlogService) DeleteBlog(id string, actor models.User) error {
	blog, err := s.blogRepo.FindByIDAny(id)
	if err != nil {
		return utils.TranslateDBError(err, "Blog not found", "")
	}
	if blog.IsDeleted && !actor.IsAdmin() {
		return utils.NewNotFoundError("Blog not found")
	}

	if !policy.CanView(&actor, &blog) {
		return utils.NewNotFoundError("Blog not found")
	}
	if !policy.CanDelete(&actor, &blog) {
		return utils.NewAuthorizationError("Published blogs can only be deleted by an admin")
	}

	wasPublished := blog.Status == models.BlogPublished

	if actor.IsAdmin() {
		err = s.blogRepo.HardDelete(id)
	} else {
		err = s.blogRepo.SoftDelete(id)
	}
	if err != nil {
		return err
	}

	if wasPublished {
		s.regenerateSitemap()
	}
	return nil
}

// ToggleLike flips the actor's like on a published blog
func (s *BlogService) ToggleLike(id string, actor models.User) (dto.LikeResponse, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.LikeResponse{}, utils.TranslateDBError(err, "Blog not found", "")
	}
	if !policy.CanView(&actor, &blog) {
		return dto.LikeResponse{}, utils.NewNotFoundError("Blog not found")
	}
	if !policy.CanEngage(&actor, &blog) {
		return dto.LikeResponse{}, utils.NewValidationError("Only published blogs can be liked")
	}

	likes, liked, err := s.blogRepo.ToggleLike(id, actor.ID)
	if err != nil {
		return dto.LikeResponse{}, err
	}
	return dto.LikeResponse{Likes: likes, IsLiked: liked}, nil
}

// ToggleBookmark flips the actor's bookmark on a published blog
func (s *BlogService) ToggleBookmark(id string, actor models.User) (dto.BookmarkResponse, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return dto.BookmarkResponse{}, utils.TranslateDBError(err, "Blog not found", "")
	}
	if !policy.CanView(&actor, &blog) {
		return dto.BookmarkResponse{}, utils.NewNotFoundError("Blog not found")
	}
	if !policy.CanEngage(&actor, &blog) {
		return dto.BookmarkResponse{}, utils.NewValidationError("Only published blogs can be bookmarked")
	}

	bookmarks, bookmarked, err := s.blogRepo.ToggleBookmark(id, actor.ID)
	if err != nil {
		return dto.BookmarkResponse{}, err
	}
	return dto.BookmarkResponse{Bookmarks: bookmarks, IsBookmarked: bookmarked}, nil
}

// GetMyBookmarks retrieves the published blogs the actor has bookmarked
func (s *BlogService) GetMyBookmarks(actor models.User) ([]dto.BlogView, error) {
	blogs, err := s.blogRepo.FindBookmarkedBy(actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewBlogViews(blogs, false), nil
}

// GetMyStats buckets the actor's blogs by moderation state
func (s *BlogService) GetMyStats(actor models.User) (dto.BlogStatusCounts, error) {
	return s.blogRepo.StatusCounts(actor.ID)
}

// GetStatusCounts buckets all blogs by moderation state; admin dashboards
func (s *BlogService) GetStatusCounts() (dto.BlogStatusCounts, error) {
	return s.blogRepo.StatusCounts("")
}

func (s *BlogService) applyContentUpdate(blog *models.Blog, req dto.UpdateBlogRequest) {
	if req.Title != nil {
		blog.Title = *req.Title
		if req.Slug == nil {
			blog.Slug = utils.Slugify(*req.Title)
		}
	}
	if req.Slug != nil && *req.Slug != "" {
		blog.Slug = *req.Slug
	}
	if req.Description != nil {
		blog.Description = *req.Description
		blog.ReadTime = utils.CalculateReadTime(*req.Description)
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.CategoryID != nil {
		blog.CategoryID = *req.CategoryID
	}
	if req.ImageURL != nil {
		blog.ImageURL = *req.ImageURL
	}
	if req.Tags != nil {
		blog.Tags = *req.Tags
	}
	if req.Keywords != nil {
		blog.Keywords = *req.Keywords
	}
}

// notifyDecision emails the author about a moderation decision without
// blocking the request.
func (s *BlogService) notifyDecision(blog models.Blog) {
	author, err := s.userRepo.FindByID(blog.UserID)
	if err != nil {
		log.Printf("Warning: decision email skipped, author %s not found: %v", blog.UserID, err)
		return
	}
	go func() {
		if err := s.mailService.SendBlogDecisionEmail(author, blog); err != nil {
			log.Printf("Warning: failed to send decision email for blog %s: %v", blog.ID, err)
		}
	}()
}

// sitemapStale reports whether an edit changed what the sitemap lists: a
// blog entering or leaving the published set, or a published blog changing
// its slug (the old URL must stop being advertised).
func sitemapStale(wasPublished, isPublished bool, oldSlug, newSlug string) bool {
	if wasPublished != isPublished {
		return true
	}
	return isPublished && oldSlug != newSlug
}

// regenerateSitemap refreshes the sitemap after the published set changed,
// without blocking the request.
func (s *BlogService) regenerateSitemap() {
	go func() {
		if err := s.sitemap.Regenerate(); err != nil {
			log.Printf("Warning: sitemap regeneration failed: %v", err)
		}
	}()
}

func normalizeBlogFilter(filter *dto.BlogFilter) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"views":      true,
		"likes":      true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}
}
