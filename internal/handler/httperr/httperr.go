package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns: a flat message plus
// optional detail, matching the handlers' inline gin.H shape.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the error middleware and
// writes the public response. err must be non-nil; the original error is
// what gets logged, never sent to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
