package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-hub/internal/shared/apperr"
	"resume-hub/internal/shared/telemetry"
)

const (
	internalCode    = "INTERNAL"
	internalMessage = "예상치 못한 에러가 발생했습니다. 관리자에게 문의해 주세요."
)

// ErrorBody is the failure body.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Fail classifies err and aborts with the matching response. Errors outside
// the apperr taxonomy become a generic 500 and their detail only reaches the log.
func Fail(c *gin.Context, err error) {
	if ae, ok := apperr.As(err); ok {
		abort(c, ae.Status(), ErrorBody{Code: string(ae.Code), Message: ae.Message, Field: ae.Field}, nil)
		return
	}
	Internal(c, err)
}

// Internal aborts with the generic 500 body.
func Internal(c *gin.Context, cause error) {
	abort(c, http.StatusInternalServerError, ErrorBody{Code: internalCode, Message: internalMessage}, cause)
}

func abort(c *gin.Context, status int, body ErrorBody, cause error) {
	fields := map[string]any{
		"status":     status,
		"code":       body.Code,
		"message":    body.Message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID, ok := c.Get("userId"); ok {
		fields["user_id"] = userID
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, body)
}
