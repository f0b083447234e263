package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWeekly(t *testing.T) {
	now := time.Date(2026, time.October, 14, 15, 0, 0, 0, time.UTC) // Wednesday

	rr, err := ResolveTimeRange(model.RangeWeekly, now)
	if err != nil {
		t.Fatalf("ResolveTimeRange() error = %v", err)
	}
	if rr.Granularity != model.GranularityDay {
		t.Errorf("Granularity = %s, want day", rr.Granularity)
	}
	if !rr.Start.Equal(date(2026, time.October, 12)) || !rr.End.Equal(date(2026, time.October, 19)) {
		t.Errorf("range = [%v, %v), want Mon 12 Oct to Mon 19 Oct", rr.Start, rr.End)
	}

	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if len(rr.Buckets) != len(want) {
		t.Fatalf("len(Buckets) = %d, want 7", len(rr.Buckets))
	}
	for i, b := range rr.Buckets {
		if b.Label != want[i] {
			t.Errorf("Buckets[%d].Label = %q, want %q", i, b.Label, want[i])
		}
		if b.End.Sub(b.Start) != 24*time.Hour {
			t.Errorf("Buckets[%d] spans %v, want 24h", i, b.End.Sub(b.Start))
		}
	}
}

func TestResolveWeeklyOnSunday(t *testing.T) {
	now := time.Date(2026, time.March, 29, 23, 30, 0, 0, time.UTC) // Sunday

	rr, err := ResolveTimeRange(model.RangeWeekly, now)
	if err != nil {
		t.Fatalf("ResolveTimeRange() error = %v", err)
	}
	if !rr.Start.Equal(date(2026, time.March, 23)) {
		t.Errorf("Start = %v, want Monday 23 Mar", rr.Start)
	}
	if rr.Locate(now) != 6 {
		t.Errorf("Locate(Sunday) = %d, want 6", rr.Locate(now))
	}
}

func TestResolveMonthly(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		wantBuckets int
		wantFirst   [2]int // first bucket start/end day of month (end exclusive)
	}{
		{"month starting thursday", time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC), 5, [2]int{1, 5}},
		{"february starting monday", time.Date(2021, time.February, 10, 9, 0, 0, 0, time.UTC), 4, [2]int{1, 8}},
		{"february starting sunday", time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC), 5, [2]int{1, 2}},
		{"month spanning six weeks", time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC), 6, [2]int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, err := ResolveTimeRange(model.RangeMonthly, tt.now)
			if err != nil {
				t.Fatalf("ResolveTimeRange() error = %v", err)
			}
			if rr.Granularity != model.GranularityWeek {
				t.Errorf("Granularity = %s, want week", rr.Granularity)
			}
			if len(rr.Buckets) != tt.wantBuckets {
				t.Fatalf("len(Buckets) = %d, want %d", len(rr.Buckets), tt.wantBuckets)
			}

			first := rr.Buckets[0]
			if first.Start.Day() != tt.wantFirst[0] || first.End.Day() != tt.wantFirst[1] {
				t.Errorf("first bucket = [%d, %d), want [%d, %d)", first.Start.Day(), first.End.Day(), tt.wantFirst[0], tt.wantFirst[1])
			}

			// 分桶首尾相接且覆盖整月
			if !rr.Buckets[0].Start.Equal(rr.Start) || !rr.Buckets[len(rr.Buckets)-1].End.Equal(rr.End) {
				t.Errorf("buckets do not cover [%v, %v)", rr.Start, rr.End)
			}
			for i := 1; i < len(rr.Buckets); i++ {
				if !rr.Buckets[i].Start.Equal(rr.Buckets[i-1].End) {
					t.Errorf("bucket %d does not start where bucket %d ends", i, i-1)
				}
				if rr.Buckets[i].Start.Weekday() != time.Monday {
					t.Errorf("bucket %d starts on %s, want Monday", i, rr.Buckets[i].Start.Weekday())
				}
			}
			if rr.Buckets[0].Label != "Week 1" {
				t.Errorf("first label = %q, want Week 1", rr.Buckets[0].Label)
			}
		})
	}
}

func TestResolveYearly(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

	rr, err := ResolveTimeRange(model.RangeYearly, now)
	if err != nil {
		t.Fatalf("ResolveTimeRange() error = %v", err)
	}
	if rr.Granularity != model.GranularityMonth {
		t.Errorf("Granularity = %s, want month", rr.Granularity)
	}
	if len(rr.Buckets) != 12 {
		t.Fatalf("len(Buckets) = %d, want 12", len(rr.Buckets))
	}
	if rr.Buckets[0].Label != "Jan" || rr.Buckets[11].Label != "Dec" {
		t.Errorf("labels = %q..%q, want Jan..Dec", rr.Buckets[0].Label, rr.Buckets[11].Label)
	}
	if !rr.End.Equal(date(2027, time.January, 1)) {
		t.Errorf("End = %v, want 2027-01-01", rr.End)
	}
}

func TestResolveInvalidRange(t *testing.T) {
	for _, tag := range []model.TimeRange{"", "daily", "WEEKLY"} {
		_, err := ResolveTimeRange(tag, time.Now())
		if !errors.Is(err, util.ErrInvalidRange) {
			t.Errorf("ResolveTimeRange(%q) error = %v, want ErrInvalidRange", tag, err)
		}
	}
}

func TestResolveUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 周日 UTC 20:00 在 UTC+9 已是周一
	now := time.Date(2026, time.October, 18, 20, 0, 0, 0, time.UTC).In(loc)

	rr, err := ResolveTimeRange(model.RangeWeekly, now)
	if err != nil {
		t.Fatalf("ResolveTimeRange() error = %v", err)
	}
	want := time.Date(2026, time.October, 19, 0, 0, 0, 0, loc)
	if !rr.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", rr.Start, want)
	}
}

func TestLocate(t *testing.T) {
	rr, err := ResolveTimeRange(model.RangeWeekly, time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ResolveTimeRange() error = %v", err)
	}

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"range start", date(2026, time.October, 12), 0},
		{"last nanosecond of monday", date(2026, time.October, 13).Add(-time.Nanosecond), 0},
		{"tuesday midnight", date(2026, time.October, 13), 1},
		{"sunday evening", time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC), 6},
		{"range end is exclusive", date(2026, time.October, 19), -1},
		{"before range", date(2026, time.October, 11), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rr.Locate(tt.at); got != tt.want {
				t.Errorf("Locate(%v) = %d, want %d", tt.at, got, tt.want)
			}
		})
	}
}
