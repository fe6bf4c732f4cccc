package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobinda22/moodtracker/internal"
)

func TestComputeRunsTooFewEntries(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf("2024-01-01", "happy", "2024-01-02", "happy")
	assert.Empty(t, ComputeRuns(log, catalog))
}

func TestComputeRunsLengthTwoNeverQualifies(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "happy",
		"2024-01-04", "sad",
	)
	assert.Empty(t, ComputeRuns(log, catalog))
}

func TestComputeRunsOngoingRun(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "happy",
		"2024-01-03", "happy",
	)

	insights := ComputeRuns(log, catalog)
	assert.Len(t, insights, 1)
	assert.Equal(t,
		"You've been feeling happy for 3 consecutive days since January 1, 2024.",
		insights[0])
}

func TestComputeRunsClosedRun(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "sad",
		"2024-01-02", "sad",
		"2024-01-03", "sad",
		"2024-01-05", "happy",
	)

	insights := ComputeRuns(log, catalog)
	assert.Len(t, insights, 1)
	assert.Equal(t,
		"You felt sad for 3 consecutive days from January 1, 2024 to January 3, 2024.",
		insights[0])
}

func TestComputeRunsMoodChangeBreaksRun(t *testing.T) {
	catalog := internal.DefaultCatalog()
	// Five consecutive days, but the mood flips midway: no run reaches 3.
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "happy",
		"2024-01-03", "sad",
		"2024-01-04", "sad",
		"2024-01-05", "happy",
	)
	assert.Empty(t, ComputeRuns(log, catalog))
}

func TestComputeRunsMultipleRunsChronological(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "calm",
		"2024-01-02", "calm",
		"2024-01-03", "calm",
		// gap
		"2024-02-01", "angry",
		"2024-02-02", "angry",
		"2024-02-03", "angry",
		"2024-02-04", "angry",
	)

	insights := ComputeRuns(log, catalog)
	assert.Len(t, insights, 2)
	assert.Equal(t,
		"You felt calm for 3 consecutive days from January 1, 2024 to January 3, 2024.",
		insights[0])
	assert.Equal(t,
		"You've been feeling angry for 4 consecutive days since February 1, 2024.",
		insights[1])
}

func TestComputeRunsUnknownMoodSkipped(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "bogus",
		"2024-01-02", "bogus",
		"2024-01-03", "bogus",
	)
	assert.Empty(t, ComputeRuns(log, catalog))
}

func TestComputeRunsEmptyLog(t *testing.T) {
	insights := ComputeRuns(internal.MoodLog{}, internal.DefaultCatalog())
	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}
