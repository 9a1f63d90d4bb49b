package dao

import (
	"context"
	"strings"

	"LearnHub/models"

	"gorm.io/gorm"
)

type Courses struct {
	Repo[models.Course]
}

func NewCourses(db *gorm.DB) *Courses {
	return &Courses{
		Repo: NewRepo[models.Course](db),
	}
}

// SearchByName 按名称模糊查询，大小写不敏感
func (c *Courses) SearchByName(ctx context.Context, text string) ([]*models.Course, error) {
	var courses []*models.Course
	pattern := "%" + strings.ToLower(text) + "%"
	err := c.Db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Find(&courses).Error
	return courses, err
}

// FindByIDs 按 ID 列表查询
func (c *Courses) FindByIDs(ctx context.Context, ids []string) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}
	var courses []*models.Course
	err := c.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&courses).Error
	return courses, err
}

// IsIDExist reports whether a course with the caller-supplied id exists
func (c *Courses) IsIDExist(ctx context.Context, id string) (bool, error) {
	return c.Repo.IsExist(ctx, "id = ?", id)
}
