package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCodeMapsToAStatus(t *testing.T) {
	want := map[Kind]int{
		KindValidation: http.StatusBadRequest,
		KindConflict:   http.StatusConflict,
		KindAuth:       http.StatusUnauthorized,
		KindNotFound:   http.StatusNotFound,
	}
	for code, v := range variants {
		err := New(code)
		assert.Equal(t, want[v.kind], err.Status(), "code %s", code)
		assert.NotEmpty(t, err.Message, "code %s", code)
	}
}

func TestInvalidCredentialsIsBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, New(CodeInvalidCredentials).Status())
}

func TestUnknownKindFallsBackTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Kind(0).Status())
}

func TestNewPanicsOnUnknownCode(t *testing.T) {
	assert.Panics(t, func() { New(Code("NOPE")) })
}

func TestWrappedErrorsAreMatchedByCode(t *testing.T) {
	base := MissingField("email", "이메일을 입력해 주세요.")
	wrapped := fmt.Errorf("sign up: %w", base)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "email", got.Field)
	assert.True(t, errors.Is(wrapped, New(CodeMissingField)))
	assert.False(t, errors.Is(wrapped, New(CodeTooShort)))
	assert.True(t, HasCode(wrapped, CodeMissingField))
	assert.False(t, HasCode(errors.New("plain"), CodeMissingField))
}

func TestCopiesDoNotMutateTemplate(t *testing.T) {
	tmpl := New(CodeNotFound)
	custom := tmpl.WithMessage("custom")
	assert.NotEqual(t, tmpl.Message, custom.Message)
	assert.Equal(t, "NOT_FOUND: custom", custom.Error())
	assert.Equal(t, "TOO_SHORT (content): short", TooShort("content", "short").Error())
}
