package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination is attached to every list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for a result set.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// RespondSuccess writes the standard success envelope.
func RespondSuccess(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// RespondList writes a success envelope with pagination.
func RespondList(c *gin.Context, data interface{}, pagination Pagination, extra gin.H) {
	body := gin.H{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// RespondError maps an error onto the envelope. Unclassified errors come out
// as opaque 500s so internals never leak to the client.
func RespondError(c *gin.Context, err error) {
	status := StatusOf(err)
	message := "Server error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"error":   message,
	})
}
