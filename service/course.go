package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"LearnHub/dao"
	"LearnHub/models"
	"LearnHub/types"

	"gorm.io/datatypes"
)

// RecommendSize is the sample size for the landing page recommendation.
const RecommendSize = 4

var ErrCourseExists = errors.New("Course with same ID not allowed")

var _ ICourseService = (*CourseService)(nil)

type ICourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	SearchCourses(ctx context.Context, text string) ([]*models.Course, error)
	Recommend(ctx context.Context) ([]*models.Course, error)
	CreateCourse(ctx context.Context, req *types.CreateCourseRequest) (*models.Course, error)
}

type CourseService struct {
	CourseDAO *dao.Courses
}

// ListCourses 查询全部课程
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.CourseDAO.FindAll(ctx)
}

// GetCourse 按ID查询课程
func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.CourseDAO.FindById(ctx, id)
}

// SearchCourses 按名称模糊查询
func (s *CourseService) SearchCourses(ctx context.Context, text string) ([]*models.Course, error) {
	return s.CourseDAO.SearchByName(ctx, text)
}

// Recommend picks up to RecommendSize courses at random, without
// replacement. Sampling happens here rather than in SQL so the DAO
// stays dialect-neutral.
func (s *CourseService) Recommend(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.CourseDAO.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(courses), func(i, j int) {
		courses[i], courses[j] = courses[j], courses[i]
	})
	if len(courses) > RecommendSize {
		courses = courses[:RecommendSize]
	}
	return courses, nil
}

// CreateCourse 创建课程，ID 由调用方提供且不允许重复
func (s *CourseService) CreateCourse(ctx context.Context, req *types.CreateCourseRequest) (*models.Course, error) {
	if req.ID == "" || req.Name == "" || req.Creator == "" || req.Category == "" ||
		req.Info == "" || req.SubCategory == "" || req.Language == "" || req.CoursePic == "" {
		return nil, ErrEmptyInput
	}

	exist, err := s.CourseDAO.IsIDExist(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrCourseExists
	}

	course := &models.Course{
		ID:          req.ID,
		Name:        req.Name,
		Creator:     req.Creator,
		Rating:      req.Rating,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Language:    req.Language,
		CoursePic:   req.CoursePic,
		Info:        req.Info,
		IsVisible:   true, // forced regardless of caller input
		Lessons:     datatypes.JSON(req.Lessons),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.CourseDAO.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}
