package model

// swagger:model User
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	RewardPoints int    `gorm:"default:0" json:"rewardPoints"`
}

func (User) TableName() string {
	return "users"
}
