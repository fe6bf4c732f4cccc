package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/service"
)

func currentUser(c *gin.Context) *internal.User {
	return c.MustGet("user").(*internal.User)
}

func PostMood(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.LogMoodRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateLogMoodRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, streaks, err := app.Moods().LogMood(c.Request.Context(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to log mood")
			return
		}

		// An unknown mood id is silently rejected; entry is nil and the
		// log is untouched.
		HandleSuccess(c, app.Logger(), entry, map[string]any{"streaks": streaks})
	}
}

func GetMoodEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		date := c.Param("date")

		entry, err := app.Moods().GetEntry(c.Request.Context(), user, date)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entry")
			return
		}
		if entry == nil {
			HandleError(c, app.Logger(), errors.New(date), 404, "No entry for date")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func DeleteMoodEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		date := c.Param("date")

		streaks, err := app.Moods().DeleteEntry(c.Request.Context(), user, date)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete entry")
			return
		}

		HandleSuccess(c, app.Logger(), nil, map[string]any{"streaks": streaks})
	}
}

func GetMoodLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		log, err := app.Moods().GetLog(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch mood log")
			return
		}

		HandleSuccess(c, app.Logger(), log, nil)
	}
}

func GetStreaks(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		streaks, err := app.Moods().Streaks(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute streaks")
			return
		}

		HandleSuccess(c, app.Logger(), streaks, nil)
	}
}
