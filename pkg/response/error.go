package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError carries the HTTP status and the user-facing message of a
// failed operation. The legacy clients expect a bare {"msg": ...} body,
// so no structured error code is exposed.
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, gin.H{"msg": msg})
}

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
				c.Abort()
			}
		}()

		c.Next()
	}
}
