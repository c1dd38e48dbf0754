package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/model"
	"github.com/scthornton/analytics-data-gen-parquet/internal/report"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink"
	. "github.com/smartystreets/goconvey/convey"
)

func revenue(v float64) *float64 { return &v }

func fixtureTables() sink.Tables {
	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return sink.Tables{Events: []model.Event{
		{
			EventID: "e0", UserID: "user_0000", SessionID: "s0", Timestamp: ts,
			EventType: model.EventTypePageView, PageName: "product_page_1",
			TimeOnPage: 100, DeviceType: "mobile", UserSegment: "regular", Date: "2026-03-10",
		},
		{
			EventID: "e1", UserID: "user_0000", SessionID: "s0", Timestamp: ts,
			EventType: model.EventTypePageView, PageName: "product_page_1",
			TimeOnPage: 200, DeviceType: "mobile", UserSegment: "regular", Date: "2026-03-10",
		},
		{
			EventID: "e2", UserID: "user_0001", SessionID: "s1", Timestamp: ts,
			EventType: model.EventTypePageView, PageName: "search_page_3",
			TimeOnPage: 50, DeviceType: "desktop", UserSegment: "power", Date: "2026-03-11",
		},
		{
			EventID: "e3", UserID: "user_0001", SessionID: "s1", Timestamp: ts,
			EventType: model.EventTypeConversion, PageName: "order_complete",
			DeviceType: "desktop", UserSegment: "power", Revenue: revenue(99.50), Date: "2026-03-11",
		},
	}}
}

func TestBuild(t *testing.T) {
	Convey("Given a small fixed dataset", t, func() {
		tables := fixtureTables()

		Convey("When building the summary", func() {
			s := report.Build(tables, 10)

			Convey("Then totals should match the event table", func() {
				So(s.TotalEvents, ShouldEqual, 4)
				So(s.UniqueUsers, ShouldEqual, 2)
				So(s.UniqueSessions, ShouldEqual, 2)
				So(s.Conversions, ShouldEqual, 1)
				So(s.TotalRevenue, ShouldAlmostEqual, 99.50, 1e-9)
				So(s.DateMin, ShouldEqual, "2026-03-10")
				So(s.DateMax, ShouldEqual, "2026-03-11")
			})

			Convey("And breakdowns should count users and events per label", func() {
				So(s.SegmentUsers, ShouldResemble, []report.Count{
					{Label: "power", N: 1}, {Label: "regular", N: 1},
				})
				So(s.DeviceEvents, ShouldResemble, []report.Count{
					{Label: "desktop", N: 2}, {Label: "mobile", N: 2},
				})
			})

			Convey("And top pages should exclude conversions and sort by views", func() {
				So(s.TopPages, ShouldResemble, []report.Count{
					{Label: "product_page_1", N: 2}, {Label: "search_page_3", N: 1},
				})
			})

			Convey("And time-on-page percentiles should stay within the recorded range", func() {
				So(s.TimeOnPageP50, ShouldBeBetweenOrEqual, 50, 300)
				So(s.TimeOnPageP99, ShouldBeGreaterThanOrEqualTo, s.TimeOnPageP50)
			})
		})

		Convey("When capping the top-pages section", func() {
			s := report.Build(tables, 1)

			Convey("Then only the most viewed page should remain", func() {
				So(s.TopPages, ShouldHaveLength, 1)
				So(s.TopPages[0].Label, ShouldEqual, "product_page_1")
			})
		})

		Convey("When building from an empty run", func() {
			s := report.Build(sink.Tables{}, 10)

			Convey("Then the summary should be zero-valued but printable", func() {
				So(s.TotalEvents, ShouldEqual, 0)
				So(s.TimeOnPageP50, ShouldEqual, 0)

				var buf bytes.Buffer
				s.Print(&buf)
				So(buf.String(), ShouldContainSubstring, "Total events:      0")
			})
		})
	})
}

func TestPrint(t *testing.T) {
	Convey("Given a built summary", t, func() {
		s := report.Build(fixtureTables(), 10)
		s.RunID = "test-run"

		Convey("When printing it", func() {
			var buf bytes.Buffer
			s.Print(&buf)
			out := buf.String()

			Convey("Then all sections should appear", func() {
				So(out, ShouldContainSubstring, "=== Data Summary ===")
				So(out, ShouldContainSubstring, "Run:               test-run")
				So(out, ShouldContainSubstring, "=== User Segment Distribution ===")
				So(out, ShouldContainSubstring, "=== Device Type Distribution ===")
				So(out, ShouldContainSubstring, "=== Top Pages ===")
				So(out, ShouldContainSubstring, "=== Time on Page (seconds) ===")
				So(out, ShouldContainSubstring, "$99.50")
			})
		})
	})
}
