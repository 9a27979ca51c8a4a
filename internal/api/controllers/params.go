package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

const maxPageSize = 100

// pageParams reads page and pageSize, answering 400 itself when they are bad.
func pageParams(c *gin.Context, defaultSize int) (page, pageSize int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultSize)))
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}

func dayNumberParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("dayNumber"))
	if err != nil || n < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return 0, false
	}
	return n, true
}

func currentUser(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
