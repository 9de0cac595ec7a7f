package models

// TrackerCategory is a named grouping of trackers. The heading is the natural
// key: two categories with the same heading are the same category.
type TrackerCategory struct {
	Heading  string    `json:"heading"`
	Trackers []Tracker `json:"trackers"`
}

// Equal compares categories by heading only.
func (c TrackerCategory) Equal(other TrackerCategory) bool {
	return c.Heading == other.Heading
}
