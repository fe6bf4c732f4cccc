package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobinda22/moodtracker/internal"
)

func TestComputeAggregateEmptyLog(t *testing.T) {
	agg := ComputeAggregate(internal.MoodLog{}, internal.DefaultCatalog())
	assert.Nil(t, agg.AverageMood)
	assert.Empty(t, agg.TopMoods)
	assert.Equal(t, "", agg.Description)
	assert.Empty(t, agg.Badges)
}

func TestComputeAggregatePredominant(t *testing.T) {
	catalog := internal.DefaultCatalog()
	// 3 of 4 happy: 75% > 50%.
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "happy",
		"2024-01-03", "happy",
		"2024-01-04", "sad",
	)

	agg := ComputeAggregate(log, catalog)
	assert.Equal(t, "happy", agg.AverageMood.ID)
	assert.Equal(t, "You've been predominantly happy lately.", agg.Description)
	assert.Equal(t, []string{"happy", "sad"}, moodIDs(agg.TopMoods))
}

func TestComputeAggregateMostlyWithVariation(t *testing.T) {
	catalog := internal.DefaultCatalog()
	// 2 of 5 happy: 40%, between 30% and 50%.
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "happy",
		"2024-01-03", "sad",
		"2024-01-04", "calm",
		"2024-01-05", "angry",
	)

	agg := ComputeAggregate(log, catalog)
	assert.Equal(t, "You've been mostly happy, with some variation.", agg.Description)
}

func TestComputeAggregateVaried(t *testing.T) {
	catalog := internal.DefaultCatalog()
	// Four moods at 25% each.
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "sad",
		"2024-01-03", "calm",
		"2024-01-04", "angry",
	)

	agg := ComputeAggregate(log, catalog)
	assert.Equal(t, "Your moods have been varied lately.", agg.Description)
}

func TestComputeAggregateTopMoodsCappedAtThree(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "happy",
		"2024-01-03", "sad",
		"2024-01-04", "calm",
		"2024-01-05", "angry",
		"2024-01-06", "neutral",
	)

	agg := ComputeAggregate(log, catalog)
	assert.Len(t, agg.TopMoods, 3)
	assert.Equal(t, "happy", agg.TopMoods[0].ID)
}

func TestComputeAggregateConsistentTrackerBadge(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := internal.MoodLog{}
	for i := 1; i <= 7; i++ {
		log[dayKey(t, 2024, 1, i)] = internal.MoodEntry{MoodID: "neutral"}
	}

	agg := ComputeAggregate(log, catalog)
	assert.Equal(t, []internal.Badge{{Label: "Consistent Tracker", Color: "#8BC34A"}}, agg.Badges)
}

func TestComputeAggregateEmotionallyAwareBadge(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "sad",
		"2024-01-03", "calm",
		"2024-01-04", "angry",
	)

	agg := ComputeAggregate(log, catalog)
	assert.Equal(t, []internal.Badge{{Label: "Emotionally Aware", Color: "#9C27B0"}}, agg.Badges)
}

func TestComputeAggregatePositiveOutlookBadge(t *testing.T) {
	catalog := internal.DefaultCatalog()
	// 2 of 3 positive: 66.7% > 60%.
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "calm",
		"2024-01-03", "sad",
	)

	agg := ComputeAggregate(log, catalog)
	assert.Equal(t, []internal.Badge{{Label: "Positive Outlook", Color: "#4CAF50"}}, agg.Badges)
}

func TestComputeAggregatePositiveOutlookNeedsStrictMajority(t *testing.T) {
	catalog := internal.DefaultCatalog()
	// Exactly 60% positive does not trigger the badge.
	log := logOf(
		"2024-01-01", "happy",
		"2024-01-02", "happy",
		"2024-01-03", "excited",
		"2024-01-04", "sad",
		"2024-01-05", "angry",
	)

	agg := ComputeAggregate(log, catalog)
	for _, badge := range agg.Badges {
		assert.NotEqual(t, "Positive Outlook", badge.Label)
	}
}

func TestComputeAggregateAllBadges(t *testing.T) {
	catalog := internal.DefaultCatalog()
	log := internal.MoodLog{}
	positives := []string{"happy", "excited", "calm", "happy", "excited", "calm"}
	for i, id := range positives {
		log[dayKey(t, 2024, 2, i+1)] = internal.MoodEntry{MoodID: id}
	}
	log[dayKey(t, 2024, 2, 7)] = internal.MoodEntry{MoodID: "neutral"}

	agg := ComputeAggregate(log, catalog)
	labels := make([]string, 0, len(agg.Badges))
	for _, b := range agg.Badges {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Consistent Tracker", "Emotionally Aware", "Positive Outlook"}, labels)
}

func moodIDs(moods []internal.Mood) []string {
	ids := make([]string, 0, len(moods))
	for _, m := range moods {
		ids = append(ids, m.ID)
	}
	return ids
}
