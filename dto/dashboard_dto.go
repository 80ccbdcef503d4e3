package dto

import (
	"time"

	"github.com/blogify-backend/models"
)

// DashboardCounts are the headline numbers on the admin dashboard.
type DashboardCounts struct {
	TotalUsers     int64 `json:"totalUsers"`
	ActiveUsers    int64 `json:"activeUsers"`
	TotalBlogs     int64 `json:"totalBlogs"`
	PublishedBlogs int64 `json:"publishedBlogs"`
	PendingBlogs   int64 `json:"pendingBlogs"`
	RejectedBlogs  int64 `json:"rejectedBlogs"`
	TotalViews     int64 `json:"totalViews"`
	TotalLikes     int64 `json:"totalLikes"`
	TodayUsers     int64 `json:"todayUsers"`
	TodayBlogs     int64 `json:"todayBlogs"`
}

// UserGrowthPoint is one month of registrations.
type UserGrowthPoint struct {
	Name  string `json:"name"`
	Users int64  `json:"users"`
}

// BlogStatusPoint is one month of blog submissions split by state.
type BlogStatusPoint struct {
	Name      string `json:"name"`
	Published int64  `json:"published"`
	Pending   int64  `json:"pending"`
	Rejected  int64  `json:"rejected"`
}

// CategorySlice is one slice of the category distribution chart.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// TopBlog is one row of the most-viewed blog leaderboard.
type TopBlog struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Views     int64  `json:"views"`
	Likes     int64  `json:"likes"`
	Bookmarks int64  `json:"bookmarks"`
	Category  string `json:"category"`
	Author    string `json:"author"`
}

// Activity is one row of the recent-activity feed.
type Activity struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Action string `json:"action"`
	Type   string `json:"type"`
	Time   string `json:"time"`
}

// PendingReview is one blog awaiting moderation.
type PendingReview struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Submitted string `json:"submitted"`
}

// DashboardCharts groups the chart series.
type DashboardCharts struct {
	UserGrowth           []UserGrowthPoint `json:"userGrowth"`
	BlogStats            []BlogStatusPoint `json:"blogStats"`
	CategoryDistribution []CategorySlice   `json:"categoryDistribution"`
}

// DashboardStats is the full admin dashboard payload.
type DashboardStats struct {
	Stats            DashboardCounts `json:"stats"`
	Charts           DashboardCharts `json:"charts"`
	TopBlogs         []TopBlog       `json:"topBlogs"`
	RecentActivities []Activity      `json:"recentActivities"`
	PendingReviews   []PendingReview `json:"pendingReviews"`
}

// DashboardOverview is the lighter dashboard payload.
type DashboardOverview struct {
	Stats       DashboardCounts `json:"stats"`
	RecentUsers []models.User   `json:"recentUsers"`
	RecentBlogs []BlogView      `json:"recentBlogs"`
}

// DailyBlogPoint is one day of blog activity within an analytics period.
type DailyBlogPoint struct {
	Date       string `json:"date"`
	Count      int64  `json:"count"`
	TotalViews int64  `json:"totalViews"`
	TotalLikes int64  `json:"totalLikes"`
}

// DailyCount is one day of registrations within an analytics period.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// CategoryAnalytics is per-category engagement within an analytics period.
type CategoryAnalytics struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	AvgViews float64 `json:"avgViews"`
	AvgLikes float64 `json:"avgLikes"`
}

// AnalyticsResponse is the detailed analytics payload.
type AnalyticsResponse struct {
	Period            string              `json:"period"`
	StartDate         time.Time           `json:"startDate"`
	EndDate           time.Time           `json:"endDate"`
	BlogAnalytics     []DailyBlogPoint    `json:"blogAnalytics"`
	UserAnalytics     []DailyCount        `json:"userAnalytics"`
	CategoryAnalytics []CategoryAnalytics `json:"categoryAnalytics"`
}
