package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID       int64  `gorm:"column:id;primary_key" json:"id,string"`
	Username string `gorm:"column:username;type:varchar(100);not null;uniqueIndex" json:"username"`
	Name     string `gorm:"column:name;type:varchar(100);not null;default:''" json:"name"`
	Password string `gorm:"column:password;type:varchar(100);not null" json:"-"`
	// CourseEnrolled is append-only: enrolling twice stores the id twice,
	// and no check is made that the id exists in the courses table.
	CourseEnrolled datatypes.JSONSlice[string] `gorm:"column:course_enrolled" json:"courseEnrolled"`
	CreatedAt      time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
