// Package request decodes request bodies into handler DTOs.
package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"resume-hub/internal/shared/apperr"
)

// BindJSON decodes the JSON body into dst. An empty body leaves dst zeroed so
// field validation can report the first missing value. Malformed JSON yields
// an INVALID_BODY error.
func BindJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.New(apperr.CodeInvalidBody)
	}
	return nil
}
