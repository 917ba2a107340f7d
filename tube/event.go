package tube

import (
	"cmp"
	"slices"
)

// Event is a parameter change at a sample offset within one Process call.
type Event struct {
	Offset int
	ID     ParamID
	Value  float64
}

// ParamChange returns an Event setting id to value at offset.
func ParamChange(offset int, id ParamID, value float64) Event {
	return Event{Offset: offset, ID: id, Value: value}
}

// sortEvents orders events by offset in place, keeping the relative order of
// events at the same offset.
func sortEvents(events []Event) {
	if slices.IsSortedFunc(events, compareOffset) {
		return
	}

	slices.SortStableFunc(events, compareOffset)
}

func compareOffset(a, b Event) int {
	return cmp.Compare(a.Offset, b.Offset)
}

// clampOffset maps an offset into [0, n].
func clampOffset(offset, n int) int {
	return max(0, min(offset, n))
}
