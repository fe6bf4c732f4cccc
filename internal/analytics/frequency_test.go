package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobinda22/moodtracker/internal"
)

func dayKey(t *testing.T, year, month, day int) string {
	t.Helper()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func TestComputeFrequencyEmptyLog(t *testing.T) {
	catalog := internal.DefaultCatalog()
	records := ComputeFrequency(internal.MoodLog{}, catalog)

	assert.Len(t, records, catalog.Len())
	for _, r := range records {
		assert.Equal(t, 0, r.Count)
		assert.Equal(t, 0.0, r.Percentage)
	}
}

func TestComputeFrequencyDistribution(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := internal.MoodLog{}
	for i := 1; i <= 6; i++ {
		log[dayKey(t, 2024, 1, i)] = internal.MoodEntry{MoodID: "happy"}
	}
	for i := 7; i <= 10; i++ {
		log[dayKey(t, 2024, 1, i)] = internal.MoodEntry{MoodID: "sad"}
	}

	records := ComputeFrequency(log, catalog)
	assert.Len(t, records, 7)

	byID := map[string]FrequencyRecord{}
	for _, r := range records {
		byID[r.Mood.ID] = r
	}
	assert.Equal(t, 6, byID["happy"].Count)
	assert.InDelta(t, 60.0, byID["happy"].Percentage, 1e-9)
	assert.Equal(t, 4, byID["sad"].Count)
	assert.InDelta(t, 40.0, byID["sad"].Percentage, 1e-9)
	for _, id := range []string{"excited", "calm", "neutral", "stressed", "angry"} {
		assert.Equal(t, 0, byID[id].Count, id)
		assert.Equal(t, 0.0, byID[id].Percentage, id)
	}
}

func TestComputeFrequencyCatalogOrderPreserved(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf("2024-01-01", "angry", "2024-01-02", "angry", "2024-01-03", "happy")

	records := ComputeFrequency(log, catalog)
	for i, mood := range catalog.Moods() {
		assert.Equal(t, mood.ID, records[i].Mood.ID)
	}
	// Not sorted by frequency: angry (2 hits) stays last.
	assert.Equal(t, "angry", records[len(records)-1].Mood.ID)
}

func TestComputeFrequencySumsToHundred(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "sad",
		"2024-01-03", "calm",
		"2024-01-05", "happy",
		"2024-01-09", "neutral",
		"2024-01-11", "stressed",
		"2024-01-12", "excited",
	)

	total := 0.0
	for _, r := range ComputeFrequency(log, catalog) {
		total += r.Percentage
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}
