package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset is the number of rows to skip for this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ValidatePagination normalizes page and pageSize: values below 1 fall back
// to the defaults and pageSize is capped at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParsePagination reads the page and per_page query parameters. Without
// either parameter the result has a zero PageSize, which lists every row.
func ParsePagination(c *gin.Context) Pagination {
	if c.Query("page") == "" && c.Query("per_page") == "" {
		return Pagination{Page: constants.DefaultPage}
	}
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "per_page", constants.DefaultPageSize),
	)
}

// ParseLimit reads a positive limit query parameter capped at max.
func ParseLimit(c *gin.Context, key string, def, max int) int {
	n := parseQueryInt(c, key, def)
	if n > max {
		return max
	}
	return n
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
