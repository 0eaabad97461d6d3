package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-hub/internal/shared/apperr"
)

type payload struct {
	Title string `json:"title"`
}

func bind(t *testing.T, body string) (payload, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodPost, "/resume", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p payload
	err := BindJSON(c, &p)
	return p, err
}

func TestBindJSONDecodes(t *testing.T) {
	p, err := bind(t, `{"title":"백엔드 개발자"}`)
	require.NoError(t, err)
	assert.Equal(t, "백엔드 개발자", p.Title)
}

func TestBindJSONEmptyBodyIsZeroValue(t *testing.T) {
	p, err := bind(t, "")
	require.NoError(t, err)
	assert.Empty(t, p.Title)
}

func TestBindJSONMalformed(t *testing.T) {
	_, err := bind(t, `{"title":`)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidBody))
}
