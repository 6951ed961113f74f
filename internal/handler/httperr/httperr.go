package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx answer.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Detail lets clients branch on a stable code instead of the message text.
type Detail struct {
	Code string `json:"code"`
	Max  *int32 `json:"max,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context so the request logger can report it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortWithCode(c *gin.Context, status int, err error, msg, code string) {
	AbortWithError(c, status, err, msg, Detail{Code: code})
}
