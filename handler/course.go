package handler

import (
	"errors"
	"net/http"

	"LearnHub/config"
	"LearnHub/dao/cache"
	"LearnHub/middleware"
	"LearnHub/pkg/context"
	"LearnHub/pkg/log"
	"LearnHub/pkg/response"
	"LearnHub/service"
	"LearnHub/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Course struct {
	Config        *config.Config
	Sessions      *cache.SessionStorage
	CourseService service.ICourseService
}

func (h *Course) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Sessions)

	r.GET("/course", context.Wrap(h.ListCourses))
	r.GET("/course/:_id", context.Wrap(h.GetCourse))
	r.POST("/search", context.Wrap(h.Search))
	r.GET("/recommend", context.Wrap(h.Recommend))
	r.POST("/new/course", authorize, context.Wrap(h.CreateCourse))
}

// ListCourses 课程目录
func (h *Course) ListCourses(c *gin.Context) error {
	courses, err := h.CourseService.ListCourses(c.Request.Context())
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Can't find any courses"})
		return nil
	}
	c.JSON(http.StatusOK, courses)
	return nil
}

// GetCourse 课程详情
func (h *Course) GetCourse(c *gin.Context) error {
	courseID := c.Param("_id")

	course, err := h.CourseService.GetCourse(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusBadRequest, "No matching record!")
		}
		return err
	}
	c.JSON(http.StatusOK, course)
	return nil
}

// Search 按课程名模糊搜索
func (h *Course) Search(c *gin.Context) error {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Try again")
	}

	courses, err := h.CourseService.SearchCourses(c.Request.Context(), req.SearchText)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Try again")
	}
	if len(courses) == 0 {
		return response.NewError(http.StatusBadRequest, "Can't find course with matching name")
	}
	c.JSON(http.StatusOK, courses)
	return nil
}

// Recommend 随机推荐至多4门课程
func (h *Course) Recommend(c *gin.Context) error {
	courses, err := h.CourseService.Recommend(c.Request.Context())
	if err != nil || len(courses) == 0 {
		return response.NewError(http.StatusBadRequest, "Try again")
	}
	c.JSON(http.StatusOK, courses)
	return nil
}

// CreateCourse 创建课程
func (h *Course) CreateCourse(c *gin.Context) error {
	var req types.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Empty input fields!"})
		return nil
	}

	_, err := h.CourseService.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyInput) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Empty input fields!"})
			return nil
		}
		if errors.Is(err, service.ErrCourseExists) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Course with same ID not allowed"})
			return nil
		}
		log.L.Error("create course failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, "An error occured")
		return nil
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Course added!"})
	return nil
}
