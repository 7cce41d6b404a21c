package service

import "github.com/foodexpress/foodexpress-api/internal/apperr"

// maxPageSize is the server-enforced cap on requested page sizes.
// Oversized limits are clamped silently rather than rejected.
const maxPageSize = 100

// pageWindow validates a 1-based page and limit pair and returns the
// offset/limit to hand to the repository. Invalid values fail before
// any datastore call.
func pageWindow(page, limit int) (offset, clamped int, err error) {
	if page < 1 {
		return 0, 0, apperr.BadRequest("Invalid page parameter")
	}
	if limit < 1 {
		return 0, 0, apperr.BadRequest("Invalid limit parameter")
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return (page - 1) * limit, limit, nil
}
