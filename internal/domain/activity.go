package domain

// Hour budget constants for a single week.
const (
	WeekHours  = 168.0
	DaysInWeek = 7.0
)

// Activity is a single named node in the weekly hours hierarchy.
// A leaf carries its own time cost (both HoursPerDay and DaysPerWeek set);
// an aggregator carries neither and derives its hours from its children.
type Activity struct {
	ID          string // stable internal identifier; never shown to the user
	Name        string // unique display name, also the store key
	HoursPerDay *float64
	DaysPerWeek *float64
	Parent      string // parent activity name; "" means root
}

// IsLeaf reports whether the activity carries its own hours.
// HoursPerDay and DaysPerWeek are set or unset together, never mixed.
func (a *Activity) IsLeaf() bool {
	return a.HoursPerDay != nil && a.DaysPerWeek != nil
}

// OwnHoursPerWeek returns HoursPerDay * DaysPerWeek for a leaf, 0 for an
// aggregator. Aggregator totals are derived from descendants, never stored.
func (a *Activity) OwnHoursPerWeek() float64 {
	if !a.IsLeaf() {
		return 0
	}
	return *a.HoursPerDay * *a.DaysPerWeek
}

// Demote clears the activity's own hours, turning it into an aggregator.
// Idempotent.
func (a *Activity) Demote() {
	a.HoursPerDay = nil
	a.DaysPerWeek = nil
}
