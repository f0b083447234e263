package model

import "time"

type GoalType string

const (
	GoalMeasurable GoalType = "personal_measurable"
	GoalSpiritual  GoalType = "spiritual"
)

// Goal 是目标表的持久化形态，measurable 专属字段可为空
// swagger:model Goal
type Goal struct {
	BaseModel
	UserID       uint       `gorm:"index;not null" json:"userId"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Type         GoalType   `gorm:"size:32;not null" json:"type"`
	RewardPoints int        `gorm:"default:0" json:"rewardPoints"`
	TargetValue  *float64   `json:"targetValue,omitempty"`
	CurrentValue *float64   `json:"currentValue,omitempty"`
	Unit         *string    `gorm:"size:32" json:"unit,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}

// GoalVariant is the closed set of goal shapes: MeasurableGoal or
// SpiritualGoal.
type GoalVariant interface {
	Base() *Goal
	goalVariant()
}

type MeasurableGoal struct {
	*Goal
	Target  float64
	Current float64
}

type SpiritualGoal struct {
	*Goal
}

func (g MeasurableGoal) Base() *Goal { return g.Goal }
func (g SpiritualGoal) Base() *Goal  { return g.Goal }

func (MeasurableGoal) goalVariant() {}
func (SpiritualGoal) goalVariant()  {}

// ReachedTarget reports whether progress met the target. Reaching the
// target does not complete the goal.
func (g MeasurableGoal) ReachedTarget() bool {
	return g.Current >= g.Target
}

// Variant converts the row into its typed shape. Unknown types are treated
// as spiritual since they carry no progress fields.
func (g *Goal) Variant() GoalVariant {
	if g.Type != GoalMeasurable {
		return SpiritualGoal{Goal: g}
	}
	m := MeasurableGoal{Goal: g}
	if g.TargetValue != nil {
		m.Target = *g.TargetValue
	}
	if g.CurrentValue != nil {
		m.Current = *g.CurrentValue
	}
	return m
}

// OverdueAt reports whether the goal has an end date strictly before now.
func (g *Goal) OverdueAt(now time.Time) bool {
	return g.EndDate != nil && g.EndDate.Before(now)
}
