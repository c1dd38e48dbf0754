package segment_test

import (
	"testing"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/segment"
	. "github.com/smartystreets/goconvey/convey"
)

func TestArchetypeTable(t *testing.T) {
	Convey("Given the segment archetype table", t, func() {
		Convey("Then every segment should map to three well-formed ranges", func() {
			for _, name := range segment.Names() {
				p, ok := segment.ByName(name)
				So(ok, ShouldBeTrue)
				So(p.SessionsPerDay.Valid(), ShouldBeTrue)
				So(p.SessionMinutes.Valid(), ShouldBeTrue)
				So(p.PagesPerSession.Valid(), ShouldBeTrue)
				// Sessions may legitimately be zero for a day; a created
				// session always visits at least one page.
				So(p.SessionsPerDay.Lo, ShouldBeGreaterThanOrEqualTo, 0)
				So(p.PagesPerSession.Lo, ShouldBeGreaterThanOrEqualTo, 1)
				So(p.SessionMinutes.Lo, ShouldBeGreaterThanOrEqualTo, 1)
			}
		})

		Convey("And power users should be the heaviest archetype", func() {
			power, _ := segment.ByName(segment.Power)
			casual, _ := segment.ByName(segment.Casual)
			So(power.SessionsPerDay.Hi, ShouldBeGreaterThan, casual.SessionsPerDay.Hi)
			So(power.PagesPerSession.Hi, ShouldBeGreaterThan, casual.PagesPerSession.Hi)
		})

		Convey("And unknown names should not resolve", func() {
			_, ok := segment.ByName("vip")
			So(ok, ShouldBeFalse)
		})
	})
}
