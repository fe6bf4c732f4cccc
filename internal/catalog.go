package internal

import (
	"encoding/json"
	"errors"
	"os"
)

// Catalog is the fixed, ordered list of available mood choices. Order
// matters: frequency results are reported in catalog order, and catalog
// order breaks ties when selecting a dominant mood.
type Catalog struct {
	moods []Mood
	byID  map[string]Mood
}

func NewCatalog(moods []Mood) *Catalog {
	byID := make(map[string]Mood, len(moods))
	for _, m := range moods {
		byID[m.ID] = m
	}
	return &Catalog{moods: moods, byID: byID}
}

// DefaultCatalog returns the built-in seven-mood catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Mood{
		{ID: "happy", Emoji: "😀", Color: "#4CAF50", Label: "Happy"},
		{ID: "excited", Emoji: "🤩", Color: "#8BC34A", Label: "Excited"},
		{ID: "calm", Emoji: "😌", Color: "#03A9F4", Label: "Calm"},
		{ID: "neutral", Emoji: "😐", Color: "#9E9E9E", Label: "Neutral"},
		{ID: "stressed", Emoji: "😰", Color: "#FFC107", Label: "Stressed"},
		{ID: "sad", Emoji: "😢", Color: "#2196F3", Label: "Sad"},
		{ID: "angry", Emoji: "😡", Color: "#F44336", Label: "Angry"},
	})
}

// LoadCatalog reads a catalog from a JSON file ([]Mood). A missing path or
// an unreadable file falls back to the default catalog so a bad deployment
// never takes the whole service down.
func LoadCatalog(path string, logger Logger) *Catalog {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("catalog: cannot read %s, using default: %v", path, err)
		return DefaultCatalog()
	}
	var moods []Mood
	if err := json.Unmarshal(data, &moods); err != nil || len(moods) == 0 {
		logger.Warnf("catalog: malformed %s, using default", path)
		return DefaultCatalog()
	}
	if err := validateMoods(moods); err != nil {
		logger.Warnf("catalog: invalid %s (%v), using default", path, err)
		return DefaultCatalog()
	}
	return NewCatalog(moods)
}

func validateMoods(moods []Mood) error {
	seen := make(map[string]bool, len(moods))
	for _, m := range moods {
		if m.ID == "" || m.Label == "" {
			return errors.New("mood id and label are required")
		}
		if seen[m.ID] {
			return errors.New("duplicate mood id: " + m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

// Moods returns the catalog entries in their fixed order.
func (c *Catalog) Moods() []Mood {
	return c.moods
}

func (c *Catalog) ByID(id string) (Mood, bool) {
	m, ok := c.byID[id]
	return m, ok
}

func (c *Catalog) Len() int {
	return len(c.moods)
}
