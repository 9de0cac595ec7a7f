package storage

import "github.com/kirastone/trackly/internal/models"

// IndexPath addresses a row within a section of the grouped tracker layout.
type IndexPath struct {
	Section int
	Row     int
}

// TrackerUpdate describes the structural change caused by a tracker insert,
// batched over one mutation: the observer applies the section and row inserts
// atomically. Only insert granularity is reported.
type TrackerUpdate struct {
	InsertedSections   []int
	InsertedIndexPaths []IndexPath
}

// CategoryUpdate describes inserts and deletes in the flat, name-sorted
// category list.
type CategoryUpdate struct {
	InsertedIndexPaths []IndexPath
	DeletedIndexPaths  []IndexPath
}

// DiffTrackerInsert computes the TrackerUpdate for a single tracker insert by
// comparing grouped snapshots taken before and after the mutation. Sections
// are the name-sorted categories holding at least one tracker; rows follow
// insertion order within a category.
func DiffTrackerInsert(before, after []models.TrackerCategory) TrackerUpdate {
	var update TrackerUpdate

	known := make(map[string]bool, len(before))
	for _, c := range before {
		if len(c.Trackers) > 0 {
			known[c.Heading] = true
		}
	}
	seen := make(map[string]map[string]bool, len(before))
	for _, c := range before {
		rows := make(map[string]bool, len(c.Trackers))
		for _, t := range c.Trackers {
			rows[t.ID.String()] = true
		}
		seen[c.Heading] = rows
	}

	section := 0
	for _, c := range after {
		if len(c.Trackers) == 0 {
			continue
		}
		if !known[c.Heading] {
			update.InsertedSections = append(update.InsertedSections, section)
		}
		for row, t := range c.Trackers {
			if rows, ok := seen[c.Heading]; ok && rows[t.ID.String()] {
				continue
			}
			update.InsertedIndexPaths = append(update.InsertedIndexPaths, IndexPath{Section: section, Row: row})
		}
		section++
	}

	return update
}

// DiffCategoryLists computes the CategoryUpdate between two name-sorted
// category lists.
func DiffCategoryLists(before, after []models.TrackerCategory) CategoryUpdate {
	var update CategoryUpdate

	old := make(map[string]bool, len(before))
	for _, c := range before {
		old[c.Heading] = true
	}
	cur := make(map[string]bool, len(after))
	for _, c := range after {
		cur[c.Heading] = true
	}

	for i, c := range after {
		if !old[c.Heading] {
			update.InsertedIndexPaths = append(update.InsertedIndexPaths, IndexPath{Section: 0, Row: i})
		}
	}
	for i, c := range before {
		if !cur[c.Heading] {
			update.DeletedIndexPaths = append(update.DeletedIndexPaths, IndexPath{Section: 0, Row: i})
		}
	}

	return update
}

// Observers is the callback registry embedded by the storage backends.
// Registration is not safe for concurrent use; subscribe during setup.
type Observers struct {
	trackerFns  []func(TrackerUpdate)
	categoryFns []func(CategoryUpdate)
}

func (o *Observers) SubscribeTrackers(fn func(TrackerUpdate)) {
	o.trackerFns = append(o.trackerFns, fn)
}

func (o *Observers) SubscribeCategories(fn func(CategoryUpdate)) {
	o.categoryFns = append(o.categoryFns, fn)
}

// NotifyTrackers delivers a non-empty tracker update to all subscribers.
func (o *Observers) NotifyTrackers(update TrackerUpdate) {
	if len(update.InsertedSections) == 0 && len(update.InsertedIndexPaths) == 0 {
		return
	}
	for _, fn := range o.trackerFns {
		fn(update)
	}
}

// NotifyCategories delivers a non-empty category update to all subscribers.
func (o *Observers) NotifyCategories(update CategoryUpdate) {
	if len(update.InsertedIndexPaths) == 0 && len(update.DeletedIndexPaths) == 0 {
		return
	}
	for _, fn := range o.categoryFns {
		fn(update)
	}
}
