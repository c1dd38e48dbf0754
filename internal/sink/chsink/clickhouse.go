// Package chsink batch-inserts the three run tables into ClickHouse. It is an
// optional second sink next to the parquet files, for feeding the dataset
// straight into a warehouse.
package chsink

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/scthornton/analytics-data-gen-parquet/internal/sink"
)

const dialTimeout = 5 * time.Second

// Options configures the ClickHouse connection.
type Options struct {
	Addr     string
	Database string
	Username string
	Password string
}

// Store implements sink.Writer against a ClickHouse database.
type Store struct {
	conn clickhouse.Conn
}

// New opens and pings a ClickHouse connection.
func New(ctx context.Context, opts Options) (*Store, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{opts.Addr},
		Auth: clickhouse.Auth{
			Database: opts.Database,
			Username: opts.Username,
			Password: opts.Password,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// EnsureSchema creates the three tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, ddl := range []string{eventsDDL, dailyDDL, sessionsDDL} {
		if err := s.conn.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// WriteAll batch-inserts the three tables. Empty tables are a no-op per
// table; any ClickHouse error is surfaced unmodified to the caller.
func (s *Store) WriteAll(ctx context.Context, tables sink.Tables) error {
	if err := s.writeEvents(ctx, tables); err != nil {
		return err
	}
	if err := s.writeDaily(ctx, tables); err != nil {
		return err
	}
	return s.writeSessions(ctx, tables)
}

func (s *Store) writeEvents(ctx context.Context, tables sink.Tables) error {
	if len(tables.Events) == 0 {
		return nil
	}
	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO `+sink.EventsTable+` (
			event_id, user_id, session_id, timestamp, event_type, page_category,
			page_name, time_on_page, bounce, device_type, country, referrer,
			user_segment, revenue, date, hour, day_of_week, is_weekend
		)`)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}
	for _, e := range tables.Events {
		if err := batch.Append(
			e.EventID, e.UserID, e.SessionID, e.Timestamp, e.EventType,
			e.PageCategory, e.PageName, e.TimeOnPage, e.Bounce, e.DeviceType,
			e.Country, e.Referrer, e.UserSegment, e.Revenue, e.Date, e.Hour,
			e.DayOfWeek, e.IsWeekend,
		); err != nil {
			return fmt.Errorf("append event %s: %w", e.EventID, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send events batch: %w", err)
	}
	return nil
}

func (s *Store) writeDaily(ctx context.Context, tables sink.Tables) error {
	if len(tables.Daily) == 0 {
		return nil
	}
	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO `+sink.DailyTable+` (
			date, user_id, sessions, page_views, total_time
		)`)
	if err != nil {
		return fmt.Errorf("prepare daily batch: %w", err)
	}
	for _, m := range tables.Daily {
		if err := batch.Append(m.Date, m.UserID, m.Sessions, m.PageViews, m.TotalTime); err != nil {
			return fmt.Errorf("append daily metric %s/%s: %w", m.Date, m.UserID, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send daily batch: %w", err)
	}
	return nil
}

func (s *Store) writeSessions(ctx context.Context, tables sink.Tables) error {
	if len(tables.Sessions) == 0 {
		return nil
	}
	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO `+sink.SessionsTable+` (
			session_id, user_id, session_start, session_end, page_views,
			bounced, device_type, country, referrer, session_duration
		)`)
	if err != nil {
		return fmt.Errorf("prepare sessions batch: %w", err)
	}
	for _, m := range tables.Sessions {
		if err := batch.Append(
			m.SessionID, m.UserID, m.SessionStart, m.SessionEnd, m.PageViews,
			m.Bounced, m.DeviceType, m.Country, m.Referrer, m.SessionDuration,
		); err != nil {
			return fmt.Errorf("append session metric %s: %w", m.SessionID, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send sessions batch: %w", err)
	}
	return nil
}
