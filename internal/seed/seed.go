// Package seed provides the optional starter data applied on first init.
// It replaces ambient sample-data state with an explicit bootstrap step the
// caller injects into the store.
package seed

import (
	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/constants"
	"github.com/kirastone/trackly/internal/models"
	"github.com/kirastone/trackly/internal/storage"
)

// Apply inserts the starter categories and trackers. It refuses to touch a
// store that already holds categories, so re-running init is harmless.
func Apply(store storage.Provider) error {
	categories, err := store.GetCategories()
	if err != nil {
		return err
	}
	if len(categories) > 0 {
		return nil
	}

	type starter struct {
		category string
		tracker  models.Tracker
	}

	starters := []starter{
		{
			category: constants.SeedCategoryHome,
			tracker: models.Tracker{
				ID:       uuid.New(),
				Name:     "Water the plants",
				Color:    "#33CF69",
				Emoji:    "❤️",
				Schedule: []models.WeekDay{models.Monday, models.Saturday},
				Type:     models.TrackerHabit,
			},
		},
		{
			category: constants.SeedCategoryJoy,
			tracker: models.Tracker{
				ID:       uuid.New(),
				Name:     "Cat blocked the camera on a call",
				Color:    "#FF881E",
				Emoji:    "😻",
				Schedule: []models.WeekDay{models.Tuesday, models.Friday},
				Type:     models.TrackerHabit,
			},
		},
		{
			category: constants.SeedCategoryJoy,
			tracker: models.Tracker{
				ID:    uuid.New(),
				Name:  "April dates",
				Color: "#FD4C49",
				Emoji: "🌺",
				Type:  models.TrackerIrregularEvent,
			},
		},
	}

	for _, st := range starters {
		if err := store.AddCategory(st.category); err != nil {
			return err
		}
		if err := store.AddTracker(st.tracker, st.category); err != nil {
			return err
		}
	}

	return nil
}
