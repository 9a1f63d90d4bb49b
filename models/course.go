package models

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	// ID is caller-supplied at creation time, not generated.
	ID          string         `gorm:"column:id;type:varchar(64);primary_key" json:"_id"`
	Name        string         `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Creator     string         `gorm:"column:creator;type:varchar(100);not null" json:"creator"`
	Rating      float64        `gorm:"column:rating;not null;default:0" json:"rating"`
	Category    string         `gorm:"column:category;type:varchar(100);not null" json:"category"`
	SubCategory string         `gorm:"column:sub_category;type:varchar(100);not null" json:"sub_category"`
	Language    string         `gorm:"column:language;type:varchar(50);not null" json:"language"`
	CoursePic   string         `gorm:"column:course_pic;type:varchar(500);not null" json:"course_pic"`
	Info        string         `gorm:"column:info;type:text" json:"info"`
	IsVisible   bool           `gorm:"column:is_visible;not null;default:1" json:"isVisible"`
	Lessons     datatypes.JSON `gorm:"column:lessons" json:"lessons"` // opaque lesson records
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
