// Package app wires the generation stages into a one-shot pipeline:
// profiles -> events -> aggregates -> sinks -> summary.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/aggregate"
	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/event"
	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/profile"
	"github.com/scthornton/analytics-data-gen-parquet/internal/report"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink"
	"github.com/scthornton/analytics-data-gen-parquet/pkg/logger"
)

// Default pipeline parameters.
const (
	defaultSeed     = 42
	defaultUsers    = 1000
	defaultDays     = 30
	defaultTopPages = 10
)

// Pipeline is a single batch run. It owns the seeded random stream and passes
// it through the generators in a fixed order, so a given (seed, users, days,
// reference time) reproduces byte-identical tables.
type Pipeline struct {
	seed     int64
	users    int
	days     int
	refTime  time.Time
	topPages int
	writers  []sink.Writer
	logger   logger.Logger
}

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(p *Pipeline) {
		p.seed = seed
	}
}

// WithUsers sets the number of users to generate.
func WithUsers(n int) Option {
	return func(p *Pipeline) {
		p.users = n
	}
}

// WithDays sets the length of the trailing day window.
func WithDays(n int) Option {
	return func(p *Pipeline) {
		p.days = n
	}
}

// WithReferenceTime anchors the run to a fixed instant instead of the wall
// clock. Used by tests that need cross-run determinism.
func WithReferenceTime(t time.Time) Option {
	return func(p *Pipeline) {
		if !t.IsZero() {
			p.refTime = t
		}
	}
}

// WithTopPages caps the top-pages section of the summary.
func WithTopPages(n int) Option {
	return func(p *Pipeline) {
		if n >= 0 {
			p.topPages = n
		}
	}
}

// WithWriter appends a sink the run tables are written to. With no writers
// the pipeline only generates and summarizes.
func WithWriter(w sink.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.writers = append(p.writers, w)
		}
	}
}

// WithLogger sets the logger used for stage progress.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Pipeline with defaults, then applies options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		seed:     defaultSeed,
		users:    defaultUsers,
		days:     defaultDays,
		refTime:  time.Now().UTC(),
		topPages: defaultTopPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the whole batch: generate, aggregate, persist, summarize.
// Negative counts fail before any work; zero counts flow through as empty,
// schema-valid tables. Sink failures are fatal and returned unmodified.
func (p *Pipeline) Run(ctx context.Context) (*report.Summary, error) {
	if p.users < 0 {
		return nil, fmt.Errorf("%w: users %d", ErrInvalidRun, p.users)
	}
	if p.days < 0 {
		return nil, fmt.Errorf("%w: days %d", ErrInvalidRun, p.days)
	}

	runID := uuid.New().String()
	rng := rand.New(rand.NewSource(p.seed)) //nolint:gosec // seeded stream is the whole point
	start := time.Now()

	p.logInfo(ctx, "starting generation run",
		logger.String("run_id", runID),
		logger.Int64("seed", p.seed),
		logger.Int("users", p.users),
		logger.Int("days", p.days),
	)

	profiles, err := profile.NewGenerator(rng, profile.WithReferenceTime(p.refTime)).Generate(ctx, p.users)
	if err != nil {
		return nil, fmt.Errorf("generate profiles: %w", err)
	}
	p.logInfo(ctx, "generated user profiles", logger.Int("count", len(profiles)))

	events, err := event.NewGenerator(rng, event.WithReferenceTime(p.refTime)).Generate(ctx, profiles, p.days)
	if err != nil {
		return nil, fmt.Errorf("generate events: %w", err)
	}
	p.logInfo(ctx, "generated events", logger.Int("count", len(events)))

	tables := sink.Tables{
		Events:   events,
		Daily:    aggregate.Daily(ctx, events),
		Sessions: aggregate.Sessions(ctx, events),
	}
	p.logInfo(ctx, "aggregated metrics",
		logger.Int("daily_rows", len(tables.Daily)),
		logger.Int("session_rows", len(tables.Sessions)),
	)

	for _, w := range p.writers {
		if err := w.WriteAll(ctx, tables); err != nil {
			return nil, fmt.Errorf("write tables: %w", err)
		}
	}

	summary := report.Build(tables, p.topPages)
	summary.RunID = runID

	p.logInfo(ctx, "run complete", logger.Duration("elapsed", time.Since(start)))
	return summary, nil
}

func (p *Pipeline) logInfo(ctx context.Context, msg string, fields ...logger.Field) {
	if p.logger != nil {
		p.logger.Info(ctx, msg, fields...)
	}
}
