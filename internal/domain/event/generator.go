// Package event generates the nested behavioral event stream: for each user,
// for each day in the window, a burst of sessions; for each session, page
// views and an occasional conversion.
package event

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/draw"
	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/model"
	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/segment"
)

// Generation constants.
const (
	conversionRate   = 0.10
	pageVariants     = 10
	minRevenue       = 10.0
	maxRevenue       = 500.0
	fallbackReferrer = "direct"
)

// Time-on-page is uniform in [10, 300] seconds.
var timeOnPage = draw.Range{Lo: 10, Hi: 300}

// Session start times are uniform within the day.
var (
	startHour   = draw.Range{Lo: 0, Hi: 23}
	startMinute = draw.Range{Lo: 0, Hi: 59}
)

// pageCategories is segment-conditioned: power users lean on product and
// search and rarely need support; everyone else shares one distribution.
var (
	powerPages = draw.MustCategorical(
		[]string{"product", "search", "account", "checkout", "support"},
		[]float64{0.30, 0.30, 0.20, 0.15, 0.05},
	)
	defaultPages = draw.MustCategorical(
		[]string{"product", "search", "account", "checkout", "support"},
		[]float64{0.40, 0.30, 0.10, 0.10, 0.10},
	)
	referrers = draw.MustCategorical(
		[]string{"google", "facebook", "direct", "email", "other"},
		[]float64{0.30, 0.20, 0.30, 0.10, 0.10},
	)
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithReferenceTime anchors the trailing day window to a fixed instant
// instead of the wall clock.
func WithReferenceTime(t time.Time) Option {
	return func(g *Generator) {
		if !t.IsZero() {
			g.now = t
		}
	}
}

// Generator produces the full ordered event sequence for a population.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates an event generator bound to rng.
func NewGenerator(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng: rng,
		now: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate emits events for every user over the trailing window of days
// calendar days ending at the reference time. Events are appended in
// generation order (user-major, day, session, page); timestamps within a
// session are drawn independently and are NOT sorted.
func (g *Generator) Generate(_ context.Context, users []model.UserProfile, days int) ([]model.Event, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: day count %d", ErrInvalidCount, days)
	}

	events := make([]model.Event, 0, len(users)*days*4)
	lastReferrer := ""

	midnight := time.Date(g.now.Year(), g.now.Month(), g.now.Day(), 0, 0, 0, 0, g.now.Location())

	for _, user := range users {
		prof, ok := segment.ByName(user.Segment)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSegment, user.Segment)
		}

		for day := 0; day < days; day++ {
			date := midnight.AddDate(0, 0, day-days)
			numSessions := prof.SessionsPerDay.Draw(g.rng)

			for s := 0; s < numSessions; s++ {
				key := model.SessionKey{UserID: user.UserID, Date: date, Index: s}
				start := date.
					Add(time.Duration(startHour.Draw(g.rng)) * time.Hour).
					Add(time.Duration(startMinute.Draw(g.rng)) * time.Minute)
				durationMin := prof.SessionMinutes.Draw(g.rng)
				numPages := prof.PagesPerSession.Draw(g.rng)

				for p := 0; p < numPages; p++ {
					ts := start.Add(time.Duration(g.rng.Intn(durationMin+1)) * time.Minute)

					category := defaultPages.Draw(g.rng)
					if user.Segment == segment.Power {
						category = powerPages.Draw(g.rng)
					}

					e := model.Event{
						EventID:      key.EventID(p),
						UserID:       user.UserID,
						SessionID:    key.String(),
						Timestamp:    ts,
						EventType:    model.EventTypePageView,
						PageCategory: category,
						PageName:     fmt.Sprintf("%s_page_%d", category, 1+g.rng.Intn(pageVariants)),
						TimeOnPage:   int64(timeOnPage.Draw(g.rng)),
						Bounce:       p == 0 && numPages == 1,
						DeviceType:   user.DeviceType,
						Country:      user.Country,
						Referrer:     referrers.Draw(g.rng),
						UserSegment:  user.Segment,
					}
					fillCalendar(&e)
					events = append(events, e)
					lastReferrer = e.Referrer
				}

				if g.rng.Float64() < conversionRate {
					referrer := lastReferrer
					if len(events) == 0 {
						// Unreachable while generation stays sequential; kept so a
						// conversion can never carry an empty referrer.
						referrer = fallbackReferrer
					}
					revenue := roundCents(minRevenue + g.rng.Float64()*(maxRevenue-minRevenue))

					e := model.Event{
						EventID:      key.ConversionEventID(),
						UserID:       user.UserID,
						SessionID:    key.String(),
						Timestamp:    start.Add(time.Duration(durationMin) * time.Minute),
						EventType:    model.EventTypeConversion,
						PageCategory: "checkout",
						PageName:     "order_complete",
						TimeOnPage:   0,
						Bounce:       false,
						DeviceType:   user.DeviceType,
						Country:      user.Country,
						Referrer:     referrer,
						UserSegment:  user.Segment,
						Revenue:      &revenue,
					}
					fillCalendar(&e)
					events = append(events, e)
					lastReferrer = e.Referrer
				}
			}
		}
	}

	return events, nil
}

// fillCalendar derives the calendar columns from the event timestamp.
func fillCalendar(e *model.Event) {
	wd := e.Timestamp.Weekday()
	e.Date = e.Timestamp.Format("2006-01-02")
	e.Hour = int32(e.Timestamp.Hour())
	e.DayOfWeek = wd.String()
	e.IsWeekend = wd == time.Saturday || wd == time.Sunday
}

// roundCents rounds to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
