package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"fmt"
	"sort"
	"time"
)

// BucketSpan 一个分桶的半开区间 [Start, End)
type BucketSpan struct {
	Label string
	Start time.Time
	End   time.Time
}

// ResolvedRange 时间范围解析结果
type ResolvedRange struct {
	Range       model.TimeRange
	Granularity model.Granularity
	Start       time.Time
	End         time.Time
	Buckets     []BucketSpan
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek 周一为一周开始
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

// ResolveTimeRange computes the calendar boundaries and buckets of tag
// around now, in now's location.
func ResolveTimeRange(tag model.TimeRange, now time.Time) (*ResolvedRange, error) {
	switch tag {
	case model.RangeWeekly:
		start := startOfWeek(now)
		rr := &ResolvedRange{Range: tag, Granularity: model.GranularityDay, Start: start, End: start.AddDate(0, 0, 7)}
		for i := 0; i < 7; i++ {
			day := start.AddDate(0, 0, i)
			rr.Buckets = append(rr.Buckets, BucketSpan{Label: day.Format("Mon"), Start: day, End: day.AddDate(0, 0, 1)})
		}
		return rr, nil

	case model.RangeMonthly:
		y, m, _ := now.Date()
		start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)
		rr := &ResolvedRange{Range: tag, Granularity: model.GranularityWeek, Start: start, End: end}
		// 按周一对齐的自然周切分，首尾两周截断到本月
		for cur, n := start, 1; cur.Before(end); n++ {
			next := startOfWeek(cur).AddDate(0, 0, 7)
			if next.After(end) {
				next = end
			}
			rr.Buckets = append(rr.Buckets, BucketSpan{Label: fmt.Sprintf("Week %d", n), Start: cur, End: next})
			cur = next
		}
		return rr, nil

	case model.RangeYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		rr := &ResolvedRange{Range: tag, Granularity: model.GranularityMonth, Start: start, End: start.AddDate(1, 0, 0)}
		for i := 0; i < 12; i++ {
			month := start.AddDate(0, i, 0)
			rr.Buckets = append(rr.Buckets, BucketSpan{Label: month.Format("Jan"), Start: month, End: month.AddDate(0, 1, 0)})
		}
		return rr, nil
	}

	return nil, util.InvalidRange(string(tag))
}

// Locate returns the index of the bucket containing t, or -1 when t is
// outside the range.
func (r *ResolvedRange) Locate(t time.Time) int {
	i := sort.Search(len(r.Buckets), func(i int) bool {
		return r.Buckets[i].End.After(t)
	})
	if i == len(r.Buckets) || t.Before(r.Buckets[i].Start) {
		return -1
	}
	return i
}
