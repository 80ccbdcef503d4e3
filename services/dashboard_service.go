package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/repositories"
)

var chartColors = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#06b6d4", "#f97316", "#84cc16",
}

// DashboardService aggregates the admin dashboard and analytics payloads
type DashboardService struct {
	userRepo *repositories.UserRepository
	blogRepo *repositories.BlogRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		userRepo: repositories.NewUserRepository(),
		blogRepo: repositories.NewBlogRepository(),
	}
}

// GetStats assembles the full dashboard payload: headline counters, six
// months of chart series, the leaderboard, the activity feed and the
// pending-review queue.
func (s *DashboardService) GetStats() (dto.DashboardStats, error) {
	var stats dto.DashboardStats

	counts, err := s.counts()
	if err != nil {
		return stats, err
	}
	stats.Stats = counts

	charts, err := s.charts()
	if err != nil {
		return stats, err
	}
	stats.Charts = charts

	topBlogs, err := s.blogRepo.FindTop(5)
	if err != nil {
		return stats, err
	}
	stats.TopBlogs = make([]dto.TopBlog, 0, len(topBlogs))
	for _, blog := range topBlogs {
		stats.TopBlogs = append(stats.TopBlogs, dto.TopBlog{
			ID:        blog.ID,
			Title:     blog.Title,
			Views:     blog.Views,
			Likes:     blog.Likes,
			Bookmarks: blog.Bookmarks,
			Category:  blog.Category.Name,
			Author:    blog.User.DisplayName(),
		})
	}

	activities, err := s.recentActivities()
	if err != nil {
		return stats, err
	}
	stats.RecentActivities = activities

	pending, err := s.blogRepo.FindPending(5)
	if err != nil {
		return stats, err
	}
	stats.PendingReviews = make([]dto.PendingReview, 0, len(pending))
	for _, blog := range pending {
		stats.PendingReviews = append(stats.PendingReviews, dto.PendingReview{
			ID:        blog.ID,
			Title:     blog.Title,
			Author:    blog.User.DisplayName(),
			Category:  blog.Category.Name,
			Submitted: relativeTime(blog.CreatedAt),
		})
	}

	return stats, nil
}

// GetAnalytics assembles the daily analytics series for a named period
// (7d, 30d, 90d or 1y).
func (s *DashboardService) GetAnalytics(period string) (dto.AnalyticsResponse, error) {
	days := periodDays(period)
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	response := dto.AnalyticsResponse{
		Period:    period,
		StartDate: start,
		EndDate:   end,
	}

	blogDays, err := s.blogRepo.DailyStats(start, end)
	if err != nil {
		return response, err
	}
	response.BlogAnalytics = make([]dto.DailyBlogPoint, 0, len(blogDays))
	for _, day := range blogDays {
		response.BlogAnalytics = append(response.BlogAnalytics, dto.DailyBlogPoint{
			Date:       day.Day,
			Count:      day.Count,
			TotalViews: day.TotalViews,
			TotalLikes: day.TotalLikes,
		})
	}

	userDays, err := s.userRepo.DailyRegistrations(start, end)
	if err != nil {
		return response, err
	}
	response.UserAnalytics = make([]dto.DailyCount, 0, len(userDays))
	for _, day := range userDays {
		response.UserAnalytics = append(response.UserAnalytics, dto.DailyCount{
			Date:  day.Day,
			Count: day.Count,
		})
	}

	categories, err := s.blogRepo.CategoryAnalytics(start, end)
	if err != nil {
		return response, err
	}
	response.CategoryAnalytics = make([]dto.CategoryAnalytics, 0, len(categories))
	for _, category := range categories {
		response.CategoryAnalytics = append(response.CategoryAnalytics, dto.CategoryAnalytics{
			Category: category.Category,
			Count:    category.Count,
			AvgViews: category.AvgViews,
			AvgLikes: category.AvgLikes,
		})
	}

	return response, nil
}

// GetOverview is the lighter dashboard payload: headline counters plus the
// newest accounts and blogs.
func (s *DashboardService) GetOverview() (dto.DashboardOverview, error) {
	var overview dto.DashboardOverview

	counts, err := s.counts()
	if err != nil {
		return overview, err
	}
	overview.Stats = counts

	users, err := s.userRepo.FindRecent(5)
	if err != nil {
		return overview, err
	}
	overview.RecentUsers = users

	blogs, err := s.blogRepo.FindRecent(5)
	if err != nil {
		return overview, err
	}
	overview.RecentBlogs = dto.NewBlogViews(blogs, true)

	return overview, nil
}

func (s *DashboardService) counts() (dto.DashboardCounts, error) {
	var counts dto.DashboardCounts
	var err error

	if counts.TotalUsers, err = s.userRepo.Count(); err != nil {
		return counts, err
	}
	if counts.ActiveUsers, err = s.userRepo.CountByStatus(models.UserActive); err != nil {
		return counts, err
	}

	statusCounts, err := s.blogRepo.StatusCounts("")
	if err != nil {
		return counts, err
	}
	counts.TotalBlogs = statusCounts.Total
	counts.PublishedBlogs = statusCounts.Published
	counts.PendingBlogs = statusCounts.Pending
	counts.RejectedBlogs = statusCounts.Rejected

	if counts.TotalViews, err = s.blogRepo.SumCounter("views"); err != nil {
		return counts, err
	}
	if counts.TotalLikes, err = s.blogRepo.SumCounter("likes"); err != nil {
		return counts, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	if counts.TodayUsers, err = s.userRepo.CountCreatedSince(today); err != nil {
		return counts, err
	}
	if counts.TodayBlogs, err = s.blogRepo.CountCreatedSince(today); err != nil {
		return counts, err
	}

	return counts, nil
}

func (s *DashboardService) charts() (dto.DashboardCharts, error) {
	var charts dto.DashboardCharts
	since := monthStart(time.Now()).AddDate(0, -5, 0)

	registrations, err := s.userRepo.MonthlyRegistrations(since)
	if err != nil {
		return charts, err
	}
	growthByMonth := make(map[string]int64, len(registrations))
	for _, bucket := range registrations {
		growthByMonth[bucket.Month.Format("Jan")] = bucket.Count
	}

	blogMonths, err := s.blogRepo.MonthlyStatusCounts(since)
	if err != nil {
		return charts, err
	}
	blogByMonth := make(map[string]*dto.BlogStatusPoint, 6)
	for _, bucket := range blogMonths {
		name := bucket.Month.Format("Jan")
		point, ok := blogByMonth[name]
		if !ok {
			point = &dto.BlogStatusPoint{Name: name}
			blogByMonth[name] = point
		}
		switch bucket.Status {
		case models.BlogPublished:
			point.Published = bucket.Count
		case models.BlogPending:
			point.Pending = bucket.Count
		case models.BlogRejected:
			point.Rejected = bucket.Count
		}
	}

	// Emit all six months in order, zero-filling the quiet ones.
	for i := 5; i >= 0; i-- {
		name := monthStart(time.Now()).AddDate(0, -i, 0).Format("Jan")
		charts.UserGrowth = append(charts.UserGrowth, dto.UserGrowthPoint{
			Name:  name,
			Users: growthByMonth[name],
		})
		if point, ok := blogByMonth[name]; ok {
			charts.BlogStats = append(charts.BlogStats, *point)
		} else {
			charts.BlogStats = append(charts.BlogStats, dto.BlogStatusPoint{Name: name})
		}
	}

	distribution, err := s.blogRepo.CategoryDistribution(len(chartColors))
	if err != nil {
		return charts, err
	}
	charts.CategoryDistribution = make([]dto.CategorySlice, 0, len(distribution))
	for i, bucket := range distribution {
		charts.CategoryDistribution = append(charts.CategoryDistribution, dto.CategorySlice{
			Name:  bucket.Name,
			Value: bucket.Count,
			Color: chartColors[i%len(chartColors)],
		})
	}

	return charts, nil
}

// recentActivities interleaves the newest registrations and blog
// submissions into one feed.
func (s *DashboardService) recentActivities() ([]dto.Activity, error) {
	users, err := s.userRepo.FindRecent(5)
	if err != nil {
		return nil, err
	}
	blogs, err := s.blogRepo.FindRecent(5)
	if err != nil {
		return nil, err
	}

	activities := make([]dto.Activity, 0, len(users)+len(blogs))
	for _, user := range users {
		activities = append(activities, dto.Activity{
			ID:     user.ID,
			User:   user.DisplayName(),
			Action: "registered an account",
			Type:   "user",
			Time:   relativeTime(user.CreatedAt),
		})
	}
	for _, blog := range blogs {
		action := "submitted a blog"
		if blog.Status == models.BlogPublished {
			action = "published a blog"
		}
		activities = append(activities, dto.Activity{
			ID:     blog.ID,
			User:   blog.User.DisplayName(),
			Action: action,
			Type:   "blog",
			Time:   relativeTime(blog.CreatedAt),
		})
	}
	return activities, nil
}

func periodDays(period string) int {
	switch strings.ToLower(period) {
	case "7d":
		return 7
	case "90d":
		return 90
	case "1y":
		return 365
	default:
		return 30
	}
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + " minutes ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + " hours ago"
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
