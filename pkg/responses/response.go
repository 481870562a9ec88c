package responses

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination holds pagination information for list responses.
type Pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// Error sends the standard error body: { "error": <message> }.
func Error(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}

// NotFound sends a 404 for a missing (or not owned) resource.
func NotFound(c *gin.Context, resourceName string) {
	Error(c, http.StatusNotFound, resourceName+" not found")
}

// OK sends a success body of the form { "message": ..., <key>: <data> }.
// Message and key are both optional.
func OK(c *gin.Context, message, key string, data interface{}) {
	send(c, http.StatusOK, message, key, data)
}

// Created is OK with a 201 status.
func Created(c *gin.Context, message, key string, data interface{}) {
	send(c, http.StatusCreated, message, key, data)
}

func send(c *gin.Context, statusCode int, message, key string, data interface{}) {
	payload := gin.H{}
	if message != "" {
		payload["message"] = message
	}
	if key != "" {
		payload[key] = data
	}
	c.JSON(statusCode, payload)
}

// Paginated sends a list payload with pagination details under the given key.
func Paginated(c *gin.Context, key string, data interface{}, totalItems int64, currentPage, pageSize int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if totalPages == 0 && totalItems > 0 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, gin.H{
		key: data,
		"pagination": Pagination{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: currentPage,
			PageSize:    pageSize,
			HasNextPage: currentPage < totalPages,
			HasPrevPage: currentPage > 1,
		},
	})
}
