package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetCatalog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Moods().Catalog().Moods(), nil)
	}
}

func GetCalendarMonth(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		year, err := strconv.Atoi(c.Param("year"))
		if err != nil || year < 1 {
			HandleError(c, app.Logger(), errors.New(c.Param("year")), 400, "Invalid year")
			return
		}
		month, err := strconv.Atoi(c.Param("month"))
		if err != nil || month < 1 || month > 12 {
			HandleError(c, app.Logger(), errors.New(c.Param("month")), 400, "Invalid month")
			return
		}

		grid, err := app.Moods().CalendarMonth(c.Request.Context(), user, year, month)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build calendar")
			return
		}

		HandleSuccess(c, app.Logger(), grid, nil)
	}
}
