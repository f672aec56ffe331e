package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/ticket-tracker-api/internal/constants"
)

// PaginationParams holds optional pagination parameters. A zero Limit means
// the endpoint returns all matches, which is the default behavior.
type PaginationParams struct {
	Page  int
	Limit int
}

// GetPaginationParams extracts and clamps pagination parameters from the
// request query string.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	if limit <= 0 {
		return PaginationParams{}
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	if page < constants.MinPage {
		page = constants.MinPage
	}

	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}
