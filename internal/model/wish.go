package model

import "time"

// swagger:model Wish
type Wish struct {
	BaseModel
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Note        string     `gorm:"type:text" json:"note,omitempty"`
	ImageURL    string     `gorm:"size:512" json:"imageUrl,omitempty"`
	FulfilledAt *time.Time `json:"fulfilledAt,omitempty"`
}

func (Wish) TableName() string {
	return "wishes"
}
