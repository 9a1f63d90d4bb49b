package handler

import (
	"net/http"

	"LearnHub/config"
	"LearnHub/dao/cache"
	"LearnHub/middleware"
	"LearnHub/pkg/context"
	"LearnHub/pkg/response"
	"LearnHub/service"
	"LearnHub/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	Sessions    *cache.SessionStorage
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), u.Sessions)

	r.POST("/enroll", authorize, context.Wrap(u.Enroll))
	r.GET("/dashboard", authorize, context.Wrap(u.Dashboard))
}

// Enroll 报名课程
func (u *User) Enroll(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusNotFound, "User not found! Try again.")
	}

	if err := u.UserService.Enroll(c.Request.Context(), userID, req.CourseID); err != nil {
		return response.NewError(http.StatusNotFound, "User not found! Try again.")
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Enrolled successfully!"})
	return nil
}

// Dashboard 已报名课程列表
func (u *User) Dashboard(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	courses, err := u.UserService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Not Found, don't exists or might removed")
	}

	c.JSON(http.StatusOK, courses)
	return nil
}
