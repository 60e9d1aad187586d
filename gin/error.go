package gin

import (
	"net/http"

	"github.com/fwojciec/cookalong"
	"github.com/gin-gonic/gin"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	cookalong.EINVALID:      http.StatusBadRequest,
	cookalong.EUNAUTHORIZED: http.StatusForbidden,
	cookalong.ENOTFOUND:     http.StatusNotFound,
	cookalong.EINTERNAL:     http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes an error as a JSON body with the matching status code.
func Error(c *gin.Context, err error) {
	code, message := cookalong.ErrorCode(err), cookalong.ErrorMessage(err)
	c.AbortWithStatusJSON(ErrorStatusCode(code), gin.H{"error": message, "code": code})
}
