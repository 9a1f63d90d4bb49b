package service

import (
	"context"
	"errors"

	"LearnHub/dao"
	"LearnHub/models"
)

var ErrUserNotFound = errors.New("User not found! Try again.")

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Enroll(ctx context.Context, callerID int64, courseID string) error
	Dashboard(ctx context.Context, callerID int64) ([]*models.Course, error)
}

type UserService struct {
	UsersRepo *dao.Users
	CourseDAO *dao.Courses
}

// Enroll appends courseID to the caller's enrolled list. No check that
// the course exists and no dedup; only a missing user record fails.
func (s *UserService) Enroll(ctx context.Context, callerID int64, courseID string) error {
	rows, err := s.UsersRepo.AppendEnrolledCourse(ctx, callerID, courseID)
	if err != nil || rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Dashboard 查询当前用户已报名的课程
func (s *UserService) Dashboard(ctx context.Context, callerID int64) ([]*models.Course, error) {
	user, err := s.UsersRepo.FindById(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return s.CourseDAO.FindByIDs(ctx, []string(user.CourseEnrolled))
}
