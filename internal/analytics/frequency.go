package analytics

import (
	"github.com/gobinda22/moodtracker/internal"
)

// FrequencyRecord reports how often one catalog mood was logged.
type FrequencyRecord struct {
	Mood       internal.Mood `json:"mood"`
	Count      int           `json:"count"`
	Percentage float64       `json:"percentage"`
}

// ComputeFrequency counts mood occurrences across the full log. The result
// has one record per catalog mood in catalog order, including zero-count
// moods. Sorting by frequency is a presentation concern layered on top.
func ComputeFrequency(log internal.MoodLog, catalog *internal.Catalog) []FrequencyRecord {
	counts := make(map[string]int)
	total := 0
	for _, entry := range log {
		counts[entry.MoodID]++
		total++
	}

	records := make([]FrequencyRecord, 0, catalog.Len())
	for _, mood := range catalog.Moods() {
		count := counts[mood.ID]
		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100
		}
		records = append(records, FrequencyRecord{
			Mood:       mood,
			Count:      count,
			Percentage: percentage,
		})
	}
	return records
}
