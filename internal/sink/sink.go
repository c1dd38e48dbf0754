// Package sink defines the persistence contract the pipeline depends on.
// The core only needs "write these rows with this schema"; everything else
// (file format, database) lives behind this interface.
package sink

import (
	"context"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/model"
)

// Logical table names, shared by every sink implementation.
const (
	EventsTable   = "analytics_events"
	DailyTable    = "daily_user_metrics"
	SessionsTable = "session_metrics"
)

// Tables bundles the three logical tables of one run.
type Tables struct {
	Events   []model.Event
	Daily    []model.DailyUserMetric
	Sessions []model.SessionMetric
}

// Writer persists all three tables of a run. Implementations must write
// schema-complete output even for empty slices, and surface any failure
// unmodified; the pipeline treats sink errors as fatal.
type Writer interface {
	WriteAll(ctx context.Context, tables Tables) error
}
