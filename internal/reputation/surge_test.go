package reputation

import (
	"testing"
	"time"
)

func surgeReports(now time.Time, daysAgo ...int) []Report {
	rs := make([]Report, len(daysAgo))
	for i, d := range daysAgo {
		rs[i] = Report{Date: now.AddDate(0, 0, -d).Format("2006-01-02")}
	}
	return rs
}

func TestDetectSurge(t *testing.T) {
	now := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		daysAgo []int
		recent  int
		prior   int
		isSurge bool
	}{
		{"three out of nowhere", []int{1, 2, 3}, 3, 0, true},
		{"two out of nowhere", []int{1, 2}, 2, 0, false},
		{"doubling over prior", []int{1, 2, 10}, 2, 1, true},
		{"steady state", []int{1, 2, 9, 10}, 2, 2, false},
		{"all old", []int{20, 30, 40}, 0, 0, false},
		{"none", nil, 0, 0, false},
	}
	for _, c := range cases {
		got := DetectSurge(surgeReports(now, c.daysAgo...), now)
		if got.Recent != c.recent || got.Prior != c.prior || got.IsSurge != c.isSurge {
			t.Errorf("%s: %+v, want recent=%d prior=%d surge=%v", c.name, got, c.recent, c.prior, c.isSurge)
		}
	}
}

func TestDetectSurgeSkipsBadDates(t *testing.T) {
	now := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	reports := []Report{{Date: "not-a-date"}, {Date: ""}, {Date: "2026-02-27"}}
	got := DetectSurge(reports, now)
	if got.Recent != 1 || got.Prior != 0 {
		t.Fatalf("got %+v, want recent=1 prior=0", got)
	}
}
