package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobinda22/moodtracker/internal"
)

// Aggregate is the whole-log mood summary: the dominant mood, the top
// moods by share, a narrative description, and achievement badges.
type Aggregate struct {
	AverageMood *internal.Mood   `json:"average_mood"`
	TopMoods    []internal.Mood  `json:"top_moods"`
	Description string           `json:"description"`
	Badges      []internal.Badge `json:"badges"`
}

// Badge triggers, checked independently and reported in this order.
const (
	trackerBadgeDays    = 7
	diversityBadgeMoods = 4
	positiveBadgeShare  = 0.6
)

// ComputeAggregate combines frequency, diversity, and positivity into the
// dominant-mood summary. The empty log maps to the explicit no-data value.
func ComputeAggregate(log internal.MoodLog, catalog *internal.Catalog) Aggregate {
	if len(log) == 0 {
		return Aggregate{TopMoods: []internal.Mood{}, Badges: []internal.Badge{}}
	}

	frequency := ComputeFrequency(log, catalog)
	sorted := make([]FrequencyRecord, len(frequency))
	copy(sorted, frequency)
	// Stable keeps catalog order on equal shares.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})

	dominant := sorted[0].Mood
	topMoods := []internal.Mood{}
	for _, record := range sorted {
		if record.Count > 0 && len(topMoods) < 3 {
			topMoods = append(topMoods, record.Mood)
		}
	}

	description := ""
	switch {
	case sorted[0].Percentage > 50:
		description = fmt.Sprintf("You've been predominantly %s lately.", strings.ToLower(dominant.Label))
	case sorted[0].Percentage > 30:
		description = fmt.Sprintf("You've been mostly %s, with some variation.", strings.ToLower(dominant.Label))
	default:
		description = "Your moods have been varied lately."
	}

	return Aggregate{
		AverageMood: &dominant,
		TopMoods:    topMoods,
		Description: description,
		Badges:      computeBadges(log),
	}
}

func computeBadges(log internal.MoodLog) []internal.Badge {
	badges := []internal.Badge{}

	if len(log) >= trackerBadgeDays {
		badges = append(badges, internal.Badge{Label: "Consistent Tracker", Color: "#8BC34A"})
	}

	distinct := make(map[string]bool)
	positive := 0
	for _, entry := range log {
		distinct[entry.MoodID] = true
		if positiveMoodIDs[entry.MoodID] {
			positive++
		}
	}

	if len(distinct) >= diversityBadgeMoods {
		badges = append(badges, internal.Badge{Label: "Emotionally Aware", Color: "#9C27B0"})
	}
	if float64(positive) > float64(len(log))*positiveBadgeShare {
		badges = append(badges, internal.Badge{Label: "Positive Outlook", Color: "#4CAF50"})
	}
	return badges
}
