// Package model contains domain models passed between pipeline stages.
package model

import (
	"fmt"
	"time"
)

// Event type values for Event.EventType.
const (
	EventTypePageView   = "page_view"
	EventTypeConversion = "conversion"
)

// UserProfile describes one synthetic user. Profiles are immutable once
// created; events reference them but never mutate them.
type UserProfile struct {
	UserID          string
	Segment         string
	AcquisitionDate time.Time
	Country         string
	DeviceType      string
}

// SessionKey is the composite identity of a session: one user, one calendar
// day, one ordinal within that day. It is only flattened to a string at the
// serialization boundary.
type SessionKey struct {
	UserID string
	Date   time.Time
	Index  int
}

// String returns the flat wire form, e.g. "user_0007_20260901_2".
func (k SessionKey) String() string {
	return fmt.Sprintf("%s_%s_%d", k.UserID, k.Date.Format("20060102"), k.Index)
}

// EventID derives the globally unique id of the nth event of the session.
func (k SessionKey) EventID(n int) string {
	return fmt.Sprintf("%s_%d", k.String(), n)
}

// ConversionEventID derives the id of the session's conversion event.
func (k SessionKey) ConversionEventID() string {
	return k.String() + "_conversion"
}

// Event is one row of the events table. Parquet column names follow the
// published schema; Revenue is set on conversion events only.
type Event struct {
	EventID      string    `parquet:"event_id"`
	UserID       string    `parquet:"user_id"`
	SessionID    string    `parquet:"session_id"`
	Timestamp    time.Time `parquet:"timestamp"`
	EventType    string    `parquet:"event_type"`
	PageCategory string    `parquet:"page_category"`
	PageName     string    `parquet:"page_name"`
	TimeOnPage   int64     `parquet:"time_on_page"`
	Bounce       bool      `parquet:"bounce"`
	DeviceType   string    `parquet:"device_type"`
	Country      string    `parquet:"country"`
	Referrer     string    `parquet:"referrer"`
	UserSegment  string    `parquet:"user_segment"`
	Revenue      *float64  `parquet:"revenue,optional"`

	// Calendar columns derived from Timestamp at generation time.
	Date      string `parquet:"date"`
	Hour      int32  `parquet:"hour"`
	DayOfWeek string `parquet:"day_of_week"`
	IsWeekend bool   `parquet:"is_weekend"`
}

// DailyUserMetric is one row of the daily_user_metrics table, keyed by
// (date, user_id).
type DailyUserMetric struct {
	Date      string `parquet:"date"`
	UserID    string `parquet:"user_id"`
	Sessions  int64  `parquet:"sessions"`
	PageViews int64  `parquet:"page_views"`
	TotalTime int64  `parquet:"total_time"`
}

// SessionMetric is one row of the session_metrics table, keyed by session_id.
// SessionDuration is in minutes and may be zero for single-event sessions.
type SessionMetric struct {
	SessionID       string    `parquet:"session_id"`
	UserID          string    `parquet:"user_id"`
	SessionStart    time.Time `parquet:"session_start"`
	SessionEnd      time.Time `parquet:"session_end"`
	PageViews       int64     `parquet:"page_views"`
	Bounced         bool      `parquet:"bounced"`
	DeviceType      string    `parquet:"device_type"`
	Country         string    `parquet:"country"`
	Referrer        string    `parquet:"referrer"`
	SessionDuration float64   `parquet:"session_duration"`
}
