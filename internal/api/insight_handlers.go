package api

import (
	"github.com/gin-gonic/gin"
)

func GetFrequency(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		records, err := app.Moods().Frequency(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute mood frequency")
			return
		}

		HandleSuccess(c, app.Logger(), records, nil)
	}
}

func GetWeekdayPattern(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		pattern, err := app.Moods().WeekdayPattern(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute weekday pattern")
			return
		}

		HandleSuccess(c, app.Logger(), pattern, nil)
	}
}

func GetTimeOfDayPattern(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		pattern, err := app.Moods().TimeOfDayPattern(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute time of day pattern")
			return
		}

		HandleSuccess(c, app.Logger(), pattern, nil)
	}
}

func GetRunInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		insights, err := app.Moods().RunInsights(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute mood runs")
			return
		}

		HandleSuccess(c, app.Logger(), insights, nil)
	}
}

func GetSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		summary, err := app.Moods().Summary(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute mood summary")
			return
		}

		HandleSuccess(c, app.Logger(), summary, nil)
	}
}
