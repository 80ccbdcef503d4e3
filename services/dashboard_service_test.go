package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 7, periodDays("7d"))
	assert.Equal(t, 30, periodDays("30d"))
	assert.Equal(t, 90, periodDays("90d"))
	assert.Equal(t, 365, periodDays("1y"))
	assert.Equal(t, 30, periodDays("nonsense"))
	assert.Equal(t, 7, periodDays("7D"))
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", relativeTime(now.Add(-30*time.Second)))
	assert.Equal(t, "5 minutes ago", relativeTime(now.Add(-5*time.Minute)))
	assert.Equal(t, "3 hours ago", relativeTime(now.Add(-3*time.Hour)))
	assert.Equal(t, "2 days ago", relativeTime(now.Add(-49*time.Hour)))
}

func TestMonthStart(t *testing.T) {
	ts := time.Date(2025, time.March, 17, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), monthStart(ts))
}
