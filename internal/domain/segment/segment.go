// Package segment defines the behavioral archetypes that drive generation.
// A segment fixes three ranges: how many sessions a user opens per day, how
// long a session lasts, and how many pages a session visits.
package segment

import (
	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/draw"
)

// Segment names.
const (
	Power   = "power"
	Regular = "regular"
	Casual  = "casual"
)

// Profile holds the per-segment generation ranges. All ranges are inclusive.
type Profile struct {
	SessionsPerDay  draw.Range
	SessionMinutes  draw.Range
	PagesPerSession draw.Range
}

// profiles is the static archetype table. Every segment maps to three
// non-empty ranges with Lo <= Hi.
var profiles = map[string]Profile{
	Power: {
		SessionsPerDay:  draw.Range{Lo: 3, Hi: 8},
		SessionMinutes:  draw.Range{Lo: 15, Hi: 45},
		PagesPerSession: draw.Range{Lo: 10, Hi: 30},
	},
	Regular: {
		SessionsPerDay:  draw.Range{Lo: 1, Hi: 3},
		SessionMinutes:  draw.Range{Lo: 5, Hi: 20},
		PagesPerSession: draw.Range{Lo: 3, Hi: 10},
	},
	Casual: {
		SessionsPerDay:  draw.Range{Lo: 0, Hi: 2},
		SessionMinutes:  draw.Range{Lo: 2, Hi: 10},
		PagesPerSession: draw.Range{Lo: 1, Hi: 5},
	},
}

// Assignment is the categorical draw used to assign users to segments.
var Assignment = draw.MustCategorical(
	[]string{Power, Regular, Casual},
	[]float64{0.10, 0.60, 0.30},
)

// ByName returns the profile for a segment name.
func ByName(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Names returns all segment names in assignment order.
func Names() []string {
	return Assignment.Values()
}
