package model

import "time"

// TimeRange 图表时间范围
type TimeRange string

const (
	RangeWeekly  TimeRange = "weekly"
	RangeMonthly TimeRange = "monthly"
	RangeYearly  TimeRange = "yearly"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Bucket 图表时间轴上的一个聚合单元
type Bucket struct {
	Label     string `json:"label"`
	Completed int    `json:"completed"`
	Missed    *int   `json:"missed,omitempty"`
	Tooltip   string `json:"tooltip"`
}

// AnalyticsSeries 例程与目标的分桶序列
type AnalyticsSeries struct {
	Range         TimeRange   `json:"range"`
	Granularity   Granularity `json:"granularity"`
	StartDate     time.Time   `json:"startDate"`
	EndDate       time.Time   `json:"endDate"`
	RoutineSeries []Bucket    `json:"routineSeries"`
	GoalSeries    []Bucket    `json:"goalSeries"`
}

// GoalStatusDistribution 目标状态分布
type GoalStatusDistribution struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Overdue    int `json:"overdue"`
}

// CompletedGoalEntry 已完成目标列表项
type CompletedGoalEntry struct {
	ID           uint      `json:"id"`
	GoalName     string    `json:"goalName"`
	CompletedAt  time.Time `json:"completedAt"`
	RewardPoints int       `json:"rewardPoints"`
}

// AnalyticsData 分析页完整数据
type AnalyticsData struct {
	Series         *AnalyticsSeries        `json:"series"`
	GoalStatus     *GoalStatusDistribution `json:"goalStatus"`
	CompletedGoals []CompletedGoalEntry    `json:"completedGoalsLog"`
	TotalPoints    int                     `json:"totalPoints"`
}
