package model

import (
	"strconv"
	"strings"
	"time"
)

type RoutineFrequency string

const (
	FrequencyDaily   RoutineFrequency = "daily"
	FrequencyWeekly  RoutineFrequency = "weekly"
	FrequencyMonthly RoutineFrequency = "monthly"
	FrequencyCustom  RoutineFrequency = "custom"
)

// swagger:model Routine
type Routine struct {
	BaseModel
	UserID           uint             `gorm:"index;not null" json:"userId"`
	Name             string           `gorm:"size:255;not null" json:"name"`
	Frequency        RoutineFrequency `gorm:"size:20;not null" json:"frequency"`
	DaysOfWeek       string           `gorm:"size:20" json:"-"` // 逗号分隔，0 表示周日
	TimeOfDay        string           `gorm:"size:5" json:"timeOfDay,omitempty"`
	RemindersEnabled bool             `gorm:"default:false" json:"remindersEnabled"`
	RewardPoints     int              `gorm:"default:0" json:"rewardPoints"`
}

func (Routine) TableName() string {
	return "routines"
}

// Weekdays decodes DaysOfWeek. Entries outside 0..6 are dropped.
func (r Routine) Weekdays() []time.Weekday {
	if r.DaysOfWeek == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(r.DaysOfWeek, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}

// SetWeekdays encodes days into DaysOfWeek.
func (r *Routine) SetWeekdays(days ...time.Weekday) {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	r.DaysOfWeek = strings.Join(parts, ",")
}

// ExpectedOn reports whether the routine is due on the given weekday.
// Only daily and weekly rules are matched; monthly and custom routines are
// never expected on a specific day.
func (r Routine) ExpectedOn(day time.Weekday) bool {
	switch r.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		for _, d := range r.Weekdays() {
			if d == day {
				return true
			}
		}
	}
	return false
}
