package model

import "time"

// RoutineCompletionLog 记录一次例程完成，只追加不修改
// swagger:model RoutineCompletionLog
type RoutineCompletionLog struct {
	BaseModel
	RoutineID    uint      `gorm:"index;not null" json:"routineId"`
	RoutineName  string    `gorm:"size:255;not null" json:"routineName"`
	UserID       uint      `gorm:"index:idx_routine_log_user_time;not null" json:"userId"`
	RewardPoints int       `gorm:"default:0" json:"rewardPoints"`
	CompletedAt  time.Time `gorm:"index:idx_routine_log_user_time;not null" json:"completedAt"`
}

func (RoutineCompletionLog) TableName() string {
	return "routine_completion_logs"
}

// GoalCompletionLog 记录一次目标完成
// swagger:model GoalCompletionLog
type GoalCompletionLog struct {
	BaseModel
	GoalID       uint      `gorm:"index;not null" json:"goalId"`
	GoalName     string    `gorm:"size:255;not null" json:"goalName"`
	GoalType     GoalType  `gorm:"size:32" json:"goalType"`
	UserID       uint      `gorm:"index:idx_goal_log_user_time;not null" json:"userId"`
	RewardPoints int       `gorm:"default:0" json:"rewardPoints"`
	CompletedAt  time.Time `gorm:"index:idx_goal_log_user_time;not null" json:"completedAt"`
}

func (GoalCompletionLog) TableName() string {
	return "goal_completion_logs"
}

// RoutineCompletionStatus 例程最近一次完成时间及今天是否已完成
// swagger:model RoutineCompletionStatus
type RoutineCompletionStatus struct {
	RoutineID       uint       `json:"routineId"`
	RoutineName     string     `json:"routineName"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	DoneToday       bool       `json:"doneToday"`
}
