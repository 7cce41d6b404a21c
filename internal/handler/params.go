package handler

import (
	"strconv"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// pagination parses the page and limit query parameters with their
// defaults. Non-numeric values fail BadRequest here; range checks and
// clamping happen in the service layer.
func pagination(c *gin.Context) (page, limit int, err error) {
	page, limit = defaultPage, defaultLimit

	if s := c.Query("page"); s != "" {
		page, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperr.BadRequest("Invalid page parameter")
		}
	}
	if s := c.Query("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperr.BadRequest("Invalid limit parameter")
		}
	}

	return page, limit, nil
}
