package handler

import (
	"errors"
	"net/http"
	"strings"

	"LearnHub/config"
	"LearnHub/dao/cache"
	"LearnHub/middleware"
	"LearnHub/pkg/context"
	"LearnHub/pkg/jwt"
	"LearnHub/pkg/log"
	"LearnHub/pkg/response"
	"LearnHub/service"
	"LearnHub/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	Config      *config.Config
	Sessions    *cache.SessionStorage
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret), a.Sessions)

	r.POST("/register", context.Wrap(a.Register))
	r.POST("/login", context.Wrap(a.Login))
	r.GET("/logout", context.Wrap(a.Logout))
	r.GET("/checklogin", authorize, context.Wrap(a.CheckLogin))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	_, err := a.AuthService.Register(c.Request.Context(), &service.UserRegisterOpt{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists!"})
			return nil
		}
		// store-level detail stays server-side
		log.L.Error("register failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, "An error occured")
		return nil
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Registration sucessfull!"})
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusUnauthorized, "login Unsuccessful")
	}

	result, err := a.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "login Unsuccessful")
	}

	c.JSON(http.StatusOK, types.LoginResponse{
		Name:  result.User.Name,
		Token: result.Token,
	})
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	// logout is not behind the guard; a bare or expired token still
	// gets the "Logged Out" answer the client has always seen
	sid := sessionIDFromHeader(c, []byte(a.Config.Jwt.Secret))
	if sid == "" {
		c.String(http.StatusOK, "Logged Out")
		return nil
	}

	if err := a.AuthService.Logout(c.Request.Context(), sid); err != nil {
		c.String(http.StatusOK, "Error!")
		return nil
	}
	c.String(http.StatusOK, "Logged Out")
	return nil
}

func (a *Auth) CheckLogin(c *gin.Context) error {
	c.JSON(http.StatusOK, types.CheckLoginResponse{
		LoggedIn: true,
		Name:     context.GetUserName(c),
	})
	return nil
}

func sessionIDFromHeader(c *gin.Context, secret []byte) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		return ""
	}
	return claims.SessionID
}
