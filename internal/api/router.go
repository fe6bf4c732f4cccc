package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gobinda22/moodtracker/internal/auth"
	"github.com/gobinda22/moodtracker/internal/config"
)

// RegisterRoutes wires all handlers onto the engine. Everything except
// the health check sits behind bearer-token auth.
func RegisterRoutes(r *gin.Engine, app App, provider auth.Provider, cfg *config.Config) {
	r.Use(RequestIDMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware(provider, cfg))

	protected.GET("/catalog", GetCatalog(app))

	protected.POST("/moods", PostMood(app))
	protected.GET("/moods", GetMoodLog(app))
	protected.GET("/moods/streaks", GetStreaks(app))
	protected.GET("/moods/frequency", GetFrequency(app))
	protected.GET("/moods/patterns/weekday", GetWeekdayPattern(app))
	protected.GET("/moods/patterns/timeofday", GetTimeOfDayPattern(app))
	protected.GET("/moods/insights", GetRunInsights(app))
	protected.GET("/moods/summary", GetSummary(app))
	protected.GET("/moods/:date", GetMoodEntry(app))
	protected.DELETE("/moods/:date", DeleteMoodEntry(app))

	protected.GET("/calendar/:year/:month", GetCalendarMonth(app))
}
