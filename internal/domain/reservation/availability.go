package reservation

import "time"

var (
	sentinelStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	sentinelEnd   = time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// BlockedEverything is reported as the only unavailable range while a property is switched off.
func BlockedEverything() DateRange {
	return DateRange{start: sentinelStart, end: sentinelEnd}
}

// IsAvailable reports whether requested fits between the active ranges of a property.
// A property switched off by its operator is never available.
func IsAvailable(propertyEnabled bool, active []DateRange, requested DateRange) bool {
	if !propertyEnabled {
		return false
	}
	for _, r := range active {
		if r.Overlaps(requested) {
			return false
		}
	}
	return true
}

// UnavailableRanges returns the active ranges verbatim, or the single BlockedEverything
// range when the property is switched off. Callers of IsAvailable get a boolean for the
// same situation, so the two answers differ in granularity.
func UnavailableRanges(propertyEnabled bool, active []DateRange) []DateRange {
	if !propertyEnabled {
		return []DateRange{BlockedEverything()}
	}
	out := make([]DateRange, len(active))
	copy(out, active)
	return out
}
