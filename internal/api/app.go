package api

import (
	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/service"
)

type App interface {
	Logger() internal.Logger
	Moods() *service.MoodService
}
