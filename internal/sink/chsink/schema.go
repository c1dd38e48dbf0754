package chsink

import "github.com/scthornton/analytics-data-gen-parquet/internal/sink"

const eventsDDL = `
	CREATE TABLE IF NOT EXISTS ` + sink.EventsTable + ` (
		event_id      String,
		user_id       String,
		session_id    String,
		timestamp     DateTime64(3),
		event_type    LowCardinality(String),
		page_category LowCardinality(String),
		page_name     String,
		time_on_page  Int64,
		bounce        Bool,
		device_type   LowCardinality(String),
		country       LowCardinality(String),
		referrer      LowCardinality(String),
		user_segment  LowCardinality(String),
		revenue       Nullable(Float64),
		date          String,
		hour          Int32,
		day_of_week   LowCardinality(String),
		is_weekend    Bool
	) ENGINE = MergeTree()
	ORDER BY (date, user_id, event_id)
`

const dailyDDL = `
	CREATE TABLE IF NOT EXISTS ` + sink.DailyTable + ` (
		date       String,
		user_id    String,
		sessions   Int64,
		page_views Int64,
		total_time Int64
	) ENGINE = MergeTree()
	ORDER BY (date, user_id)
`

const sessionsDDL = `
	CREATE TABLE IF NOT EXISTS ` + sink.SessionsTable + ` (
		session_id       String,
		user_id          String,
		session_start    DateTime64(3),
		session_end      DateTime64(3),
		page_views       Int64,
		bounced          Bool,
		device_type      LowCardinality(String),
		country          LowCardinality(String),
		referrer         LowCardinality(String),
		session_duration Float64
	) ENGINE = MergeTree()
	ORDER BY session_id
`
