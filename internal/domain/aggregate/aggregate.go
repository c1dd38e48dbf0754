// Package aggregate rolls the flat event sequence back up into the two
// derived tables: daily per-user metrics and per-session metrics. This stage
// consumes no randomness; given the same event sequence its output is exactly
// reproducible, with rows emitted in first-seen key order.
package aggregate

import (
	"context"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/model"
)

type dailyKey struct {
	date   string
	userID string
}

type dailyAccum struct {
	sessions  map[string]struct{}
	pageViews int64
	totalTime int64
}

// Daily groups events by (calendar date, user) and counts distinct sessions,
// events and total time-on-page. One row per (date, user) pair with at least
// one event.
func Daily(_ context.Context, events []model.Event) []model.DailyUserMetric {
	order := make([]dailyKey, 0)
	groups := make(map[dailyKey]*dailyAccum)

	for _, e := range events {
		k := dailyKey{date: e.Date, userID: e.UserID}
		acc, ok := groups[k]
		if !ok {
			acc = &dailyAccum{sessions: make(map[string]struct{})}
			groups[k] = acc
			order = append(order, k)
		}
		acc.sessions[e.SessionID] = struct{}{}
		acc.pageViews++
		acc.totalTime += e.TimeOnPage
	}

	rows := make([]model.DailyUserMetric, 0, len(order))
	for _, k := range order {
		acc := groups[k]
		rows = append(rows, model.DailyUserMetric{
			Date:      k.date,
			UserID:    k.userID,
			Sessions:  int64(len(acc.sessions)),
			PageViews: acc.pageViews,
			TotalTime: acc.totalTime,
		})
	}
	return rows
}

type sessionAccum struct {
	row model.SessionMetric
}

// Sessions groups events by session id. First-event attributes (user, device,
// country, referrer) are taken in original sequence order, not time order;
// start and end are the min and max timestamps in the group.
func Sessions(_ context.Context, events []model.Event) []model.SessionMetric {
	order := make([]string, 0)
	groups := make(map[string]*sessionAccum)

	for _, e := range events {
		acc, ok := groups[e.SessionID]
		if !ok {
			acc = &sessionAccum{row: model.SessionMetric{
				SessionID:    e.SessionID,
				UserID:       e.UserID,
				SessionStart: e.Timestamp,
				SessionEnd:   e.Timestamp,
				DeviceType:   e.DeviceType,
				Country:      e.Country,
				Referrer:     e.Referrer,
			}}
			groups[e.SessionID] = acc
			order = append(order, e.SessionID)
		}
		if e.Timestamp.Before(acc.row.SessionStart) {
			acc.row.SessionStart = e.Timestamp
		}
		if e.Timestamp.After(acc.row.SessionEnd) {
			acc.row.SessionEnd = e.Timestamp
		}
		acc.row.PageViews++
		acc.row.Bounced = acc.row.Bounced || e.Bounce
	}

	rows := make([]model.SessionMetric, 0, len(order))
	for _, id := range order {
		row := groups[id].row
		row.SessionDuration = row.SessionEnd.Sub(row.SessionStart).Minutes()
		rows = append(rows, row)
	}
	return rows
}
