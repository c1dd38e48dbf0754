// Package report builds and prints the human-facing summary of a generated
// dataset: totals, distributions and time-on-page percentiles.
package report

import (
	"fmt"
	"io"
	"sort"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/fatih/color"

	"github.com/scthornton/analytics-data-gen-parquet/internal/domain/model"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink"
)

// Histogram bounds for time-on-page, in seconds. Values are clamped by the
// generator to [10, 300]; three significant figures is plenty for a report.
const (
	histogramMin     = 1
	histogramMax     = 600
	histogramSigFigs = 3
)

// Count is a labeled tally, used for segment, device and page breakdowns.
type Count struct {
	Label string
	N     int64
}

// Summary is the aggregate view of one run.
type Summary struct {
	RunID          string
	TotalEvents    int
	UniqueUsers    int
	UniqueSessions int
	Conversions    int
	TotalRevenue   float64
	DateMin        string
	DateMax        string

	SegmentUsers []Count
	DeviceEvents []Count
	TopPages     []Count

	TimeOnPageP50 int64
	TimeOnPageP95 int64
	TimeOnPageP99 int64
}

// Build computes a Summary from the run tables. topPages caps the page
// breakdown; zero disables it.
func Build(tables sink.Tables, topPages int) *Summary {
	s := &Summary{TotalEvents: len(tables.Events)}

	users := make(map[string]struct{})
	sessions := make(map[string]struct{})
	segmentUsers := make(map[string]map[string]struct{})
	deviceEvents := make(map[string]int64)
	pages := make(map[string]int64)
	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)

	for _, e := range tables.Events {
		users[e.UserID] = struct{}{}
		sessions[e.SessionID] = struct{}{}
		deviceEvents[e.DeviceType]++

		if _, ok := segmentUsers[e.UserSegment]; !ok {
			segmentUsers[e.UserSegment] = make(map[string]struct{})
		}
		segmentUsers[e.UserSegment][e.UserID] = struct{}{}

		if e.EventType == model.EventTypeConversion {
			s.Conversions++
			if e.Revenue != nil {
				s.TotalRevenue += *e.Revenue
			}
		} else {
			pages[e.PageName]++
			_ = hist.RecordValue(e.TimeOnPage)
		}

		if s.DateMin == "" || e.Date < s.DateMin {
			s.DateMin = e.Date
		}
		if e.Date > s.DateMax {
			s.DateMax = e.Date
		}
	}

	s.UniqueUsers = len(users)
	s.UniqueSessions = len(sessions)

	for seg, ids := range segmentUsers {
		s.SegmentUsers = append(s.SegmentUsers, Count{Label: seg, N: int64(len(ids))})
	}
	sortCounts(s.SegmentUsers)

	for dev, n := range deviceEvents {
		s.DeviceEvents = append(s.DeviceEvents, Count{Label: dev, N: n})
	}
	sortCounts(s.DeviceEvents)

	for page, n := range pages {
		s.TopPages = append(s.TopPages, Count{Label: page, N: n})
	}
	sortCounts(s.TopPages)
	if topPages >= 0 && len(s.TopPages) > topPages {
		s.TopPages = s.TopPages[:topPages]
	}

	if hist.TotalCount() > 0 {
		s.TimeOnPageP50 = hist.ValueAtQuantile(50)
		s.TimeOnPageP95 = hist.ValueAtQuantile(95)
		s.TimeOnPageP99 = hist.ValueAtQuantile(99)
	}

	return s
}

// sortCounts orders by count descending, label ascending on ties, so output
// is stable across runs.
func sortCounts(counts []Count) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Label < counts[j].Label
	})
}

// Print writes the summary in sections. Color is applied when the writer is a
// terminal; fatih/color handles the detection.
func (s *Summary) Print(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	header.Fprintln(w, "=== Data Summary ===")
	fmt.Fprintf(w, "Run:               %s\n", s.RunID)
	fmt.Fprintf(w, "Total events:      %d\n", s.TotalEvents)
	fmt.Fprintf(w, "Unique users:      %d\n", s.UniqueUsers)
	fmt.Fprintf(w, "Unique sessions:   %d\n", s.UniqueSessions)
	fmt.Fprintf(w, "Conversion events: %d\n", s.Conversions)
	fmt.Fprintf(w, "Total revenue:     $%.2f\n", s.TotalRevenue)
	if s.DateMin != "" {
		fmt.Fprintf(w, "Date range:        %s to %s\n", s.DateMin, s.DateMax)
	}

	if len(s.SegmentUsers) > 0 {
		header.Fprintln(w, "\n=== User Segment Distribution ===")
		for _, c := range s.SegmentUsers {
			label.Fprintf(w, "%-10s", c.Label)
			fmt.Fprintf(w, " %d users\n", c.N)
		}
	}

	if len(s.DeviceEvents) > 0 {
		header.Fprintln(w, "\n=== Device Type Distribution ===")
		for _, c := range s.DeviceEvents {
			label.Fprintf(w, "%-10s", c.Label)
			fmt.Fprintf(w, " %d events\n", c.N)
		}
	}

	if len(s.TopPages) > 0 {
		header.Fprintln(w, "\n=== Top Pages ===")
		for _, c := range s.TopPages {
			label.Fprintf(w, "%-20s", c.Label)
			fmt.Fprintf(w, " %d views\n", c.N)
		}
	}

	if s.TimeOnPageP50 > 0 {
		header.Fprintln(w, "\n=== Time on Page (seconds) ===")
		fmt.Fprintf(w, "p50 %d   p95 %d   p99 %d\n", s.TimeOnPageP50, s.TimeOnPageP95, s.TimeOnPageP99)
	}
}
