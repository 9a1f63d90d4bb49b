package context

import (
	"errors"
	"net/http"

	"LearnHub/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "user_id"
	CtxUserName  = "user_name"
	CtxSessionID = "session_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// the handler may have written before failing
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, gin.H{"msg": be.Msg})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}

func GetUserName(c *gin.Context) string {
	return c.GetString(CtxUserName)
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(CtxSessionID)
}
