package models

import (
	"time"
)

type Note struct {
	ID int64 `gorm:"column:id;primary_key" json:"_id,string"`
	// CustomID is the derived addressing key courseId+lessonId+userId.
	// It is not unique: a user keeps a note list per lesson.
	CustomID  string    `gorm:"column:custom_id;type:varchar(200);not null;index:idx_custom_id" json:"customId"`
	Title     string    `gorm:"column:title;type:varchar(100);not null;default:''" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
