package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogify-backend/dto"
)

func TestNormalizeBlogFilterDefaults(t *testing.T) {
	filter := dto.BlogFilter{}
	normalizeBlogFilter(&filter)

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, "created_at", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
}

func TestNormalizeBlogFilterWhitelistsSortColumn(t *testing.T) {
	filter := dto.BlogFilter{SortBy: "password; DROP TABLE blogs", SortOrder: "up"}
	normalizeBlogFilter(&filter)

	assert.Equal(t, "created_at", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)

	filter = dto.BlogFilter{SortBy: "views", SortOrder: "asc", Page: 3, Limit: 25}
	normalizeBlogFilter(&filter)
	assert.Equal(t, "views", filter.SortBy)
	assert.Equal(t, "asc", filter.SortOrder)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 25, filter.Limit)
}

func TestNormalizeBlogFilterCapsLimit(t *testing.T) {
	filter := dto.BlogFilter{Limit: 5000}
	normalizeBlogFilter(&filter)
	assert.Equal(t, 10, filter.Limit)
}
