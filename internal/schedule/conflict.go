package schedule

// Overlaps reports whether the half-open intervals of a and b intersect.
// It is symmetric; touching endpoints (a.End == b.Start) do not overlap.
func Overlaps(a, b Task) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// noExclusion is passed to findConflict when no stored task is skipped.
// IDGenerator never hands out zero.
const noExclusion = 0

// findConflict returns the first task in tasks, other than excludeID, that
// overlaps candidate.
func findConflict(tasks []Task, candidate Task, excludeID int) (Task, bool) {
	for _, existing := range tasks {
		if existing.ID == excludeID {
			continue
		}
		if Overlaps(candidate, existing) {
			return existing, true
		}
	}
	return Task{}, false
}
