package parquetsink_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/aggregate"
	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/event"
	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/profile"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink/parquetsink"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParquetRoundTrip(t *testing.T) {
	dir := t.TempDir()

	Convey("Given a generated dataset and a parquet store", t, func() {
		ctx := context.Background()
		ref := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
		rng := rand.New(rand.NewSource(42))

		profiles, err := profile.NewGenerator(rng, profile.WithReferenceTime(ref)).Generate(ctx, 5)
		So(err, ShouldBeNil)
		events, err := event.NewGenerator(rng, event.WithReferenceTime(ref)).Generate(ctx, profiles, 3)
		So(err, ShouldBeNil)
		So(events, ShouldNotBeEmpty)

		tables := sink.Tables{
			Events:   events,
			Daily:    aggregate.Daily(ctx, events),
			Sessions: aggregate.Sessions(ctx, events),
		}
		store := parquetsink.New(dir)

		Convey("When writing and reading the three tables back", func() {
			So(store.WriteAll(ctx, tables), ShouldBeNil)

			gotEvents, err := parquetsink.ReadEvents(store.EventsPath())
			So(err, ShouldBeNil)
			gotDaily, err := parquetsink.ReadDaily(store.DailyPath())
			So(err, ShouldBeNil)
			gotSessions, err := parquetsink.ReadSessions(store.SessionsPath())
			So(err, ShouldBeNil)

			Convey("Then row counts should survive the round trip", func() {
				So(gotEvents, ShouldHaveLength, len(tables.Events))
				So(gotDaily, ShouldHaveLength, len(tables.Daily))
				So(gotSessions, ShouldHaveLength, len(tables.Sessions))
			})

			Convey("And event rows should come back field for field", func() {
				for i, got := range gotEvents {
					want := tables.Events[i]
					So(got.EventID, ShouldEqual, want.EventID)
					So(got.UserID, ShouldEqual, want.UserID)
					So(got.SessionID, ShouldEqual, want.SessionID)
					So(got.Timestamp.Equal(want.Timestamp), ShouldBeTrue)
					So(got.EventType, ShouldEqual, want.EventType)
					So(got.PageCategory, ShouldEqual, want.PageCategory)
					So(got.PageName, ShouldEqual, want.PageName)
					So(got.TimeOnPage, ShouldEqual, want.TimeOnPage)
					So(got.Bounce, ShouldEqual, want.Bounce)
					So(got.DeviceType, ShouldEqual, want.DeviceType)
					So(got.Country, ShouldEqual, want.Country)
					So(got.Referrer, ShouldEqual, want.Referrer)
					So(got.UserSegment, ShouldEqual, want.UserSegment)
					So(got.Date, ShouldEqual, want.Date)
					So(got.Hour, ShouldEqual, want.Hour)
					So(got.DayOfWeek, ShouldEqual, want.DayOfWeek)
					So(got.IsWeekend, ShouldEqual, want.IsWeekend)
				}
			})

			Convey("And revenue should stay nullable: set on conversions only", func() {
				for i, got := range gotEvents {
					want := tables.Events[i]
					if want.Revenue == nil {
						So(got.Revenue, ShouldBeNil)
					} else {
						So(got.Revenue, ShouldNotBeNil)
						So(*got.Revenue, ShouldAlmostEqual, *want.Revenue, 1e-9)
					}
				}
			})

			Convey("And aggregate rows should come back losslessly", func() {
				So(gotDaily, ShouldResemble, tables.Daily)
				for i, got := range gotSessions {
					want := tables.Sessions[i]
					So(got.SessionID, ShouldEqual, want.SessionID)
					So(got.SessionStart.Equal(want.SessionStart), ShouldBeTrue)
					So(got.SessionEnd.Equal(want.SessionEnd), ShouldBeTrue)
					So(got.PageViews, ShouldEqual, want.PageViews)
					So(got.Bounced, ShouldEqual, want.Bounced)
					So(got.SessionDuration, ShouldAlmostEqual, want.SessionDuration, 1e-9)
				}
			})
		})
	})
}

func TestParquetEmptyTables(t *testing.T) {
	dir := t.TempDir()

	Convey("Given an empty run", t, func() {
		ctx := context.Background()
		store := parquetsink.New(dir)

		Convey("When writing empty tables", func() {
			So(store.WriteAll(ctx, sink.Tables{}), ShouldBeNil)

			Convey("Then all three files should exist and read back as empty", func() {
				events, err := parquetsink.ReadEvents(store.EventsPath())
				So(err, ShouldBeNil)
				So(events, ShouldBeEmpty)

				daily, err := parquetsink.ReadDaily(store.DailyPath())
				So(err, ShouldBeNil)
				So(daily, ShouldBeEmpty)

				sessions, err := parquetsink.ReadSessions(store.SessionsPath())
				So(err, ShouldBeNil)
				So(sessions, ShouldBeEmpty)
			})
		})
	})
}
