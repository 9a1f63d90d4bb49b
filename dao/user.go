package dao

import (
	"context"

	"LearnHub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 按登录名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断登录名是否已注册
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// AppendEnrolledCourse pushes courseID onto the user's course_enrolled
// list, duplicates and dangling course ids included. Returns the number
// of user rows updated.
func (u *Users) AppendEnrolledCourse(ctx context.Context, userID int64, courseID string) (int64, error) {
	user, err := u.FindById(ctx, userID)
	if err != nil {
		return 0, err
	}

	enrolled := append([]string(user.CourseEnrolled), courseID)
	res := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("course_enrolled", datatypes.NewJSONSlice(enrolled))
	return res.RowsAffected, res.Error
}
