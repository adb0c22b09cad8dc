package models

import "time"

type Notification struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"userId"`
	Title     string     `gorm:"not null" json:"title"`
	Message   string     `gorm:"size:1000" json:"message"`
	Type      string     `gorm:"not null" json:"type"` // email, sms, push, in-app
	Read      bool       `gorm:"default:false" json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
	ReadAt    *time.Time `json:"readAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
