package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", middleware.OptionalAuthMiddleware(), Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Public blog reads. Optional auth lets owners and admins see their
	// unpublished blogs through the same routes.
	blogGroup := router.Group("/blogs")
	blogGroup.Use(middleware.OptionalAuthMiddleware())
	{
		blogGroup.GET("", ListBlogs)
		blogGroup.GET("/published", ListPublishedBlogs)
		blogGroup.GET("/trending", GetTrendingBlogs)
		blogGroup.GET("/slug/:slug", GetBlogBySlug)
		blogGroup.GET("/:id", GetBlog)
	}

	// Authenticated blog writes
	blogAuthGroup := router.Group("/blogs")
	blogAuthGroup.Use(middleware.AuthMiddleware())
	{
		blogAuthGroup.POST("", CreateBlog)
		blogAuthGroup.PUT("/:id", UpdateBlog)
		blogAuthGroup.DELETE("/:id", DeleteBlog)
		blogAuthGroup.PUT("/:id/like", LikeBlog)
		blogAuthGroup.PUT("/:id/bookmark", BookmarkBlog)
		blogAuthGroup.POST("/:id/submit", SubmitBlogForReview)
	}

	// Blog moderation, admin only
	blogAdminGroup := router.Group("/blogs")
	blogAdminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		blogAdminGroup.PUT("/approve/:id", ApproveBlog)
		blogAdminGroup.PUT("/reject/:id", RejectBlog)
		blogAdminGroup.PUT("/admin/:id", AdminUpdateBlog)
		blogAdminGroup.DELETE("/admin/:id", DeleteBlog)
	}

	// The caller's own content
	meGroup := router.Group("/me")
	meGroup.Use(middleware.AuthMiddleware())
	{
		meGroup.GET("/blogs", GetMyBlogs)
		meGroup.GET("/bookmarks", GetMyBookmarks)
		meGroup.GET("/blog-stats", GetMyBlogStats)
	}

	// Aggregated public pages
	pagesGroup := router.Group("/pages")
	{
		pagesGroup.GET("/home", GetHomePage)
		pagesGroup.GET("/home/fresh", GetHomePageFresh)
	}

	// Public category reads
	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", ListCategories)
		categoryGroup.GET("/with-counts", ListCategoriesWithCounts)
		categoryGroup.GET("/slug/:slug", GetCategoryBySlug)
	}

	// Newsletter endpoints
	newsletterGroup := router.Group("/newsletter")
	{
		newsletterGroup.POST("/subscribe", Subscribe)
		newsletterGroup.POST("/unsubscribe", Unsubscribe)
		newsletterGroup.GET("/count", GetSubscriberCount)
	}

	// Contact endpoints
	contactGroup := router.Group("/contact")
	{
		contactGroup.POST("", SendContactMessage)
		contactGroup.GET("/info", GetContactInfo)
	}

	// Sitemap
	router.GET("/sitemap.xml", GetSitemap)

	// Admin endpoints
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/users", ListUsers)
		adminGroup.POST("/users", CreateUser)
		adminGroup.GET("/users/stats", GetUserStats)
		adminGroup.GET("/users/:id", GetUser)
		adminGroup.PUT("/users/:id", UpdateUser)
		adminGroup.DELETE("/users/:id", DeleteUser)
		adminGroup.PATCH("/users/:id/verification", ToggleUserVerification)
		adminGroup.PATCH("/users/:id/approval", ToggleUserApproval)

		adminGroup.GET("/blogs", ListBlogs)
		adminGroup.GET("/blogs/stats", GetBlogStatusCounts)
		adminGroup.GET("/blogs/pending", ListPendingBlogs)

		adminGroup.POST("/categories", CreateCategory)
		adminGroup.GET("/categories/:id", GetCategory)
		adminGroup.PUT("/categories/:id", UpdateCategory)
		adminGroup.DELETE("/categories/:id", DeleteCategory)

		adminGroup.GET("/subscribers", ListSubscribers)

		adminGroup.GET("/dashboard/stats", GetDashboardStats)
		adminGroup.GET("/dashboard/overview", GetDashboardOverview)
		adminGroup.GET("/dashboard/analytics", GetAnalytics)

		adminGroup.POST("/sitemap/regenerate", RegenerateSitemap)
	}
}
