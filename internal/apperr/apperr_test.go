package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status)
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status)
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("no user: %d", 7)
	assert.Equal(t, "no user: 7", err.Message)
	assert.Equal(t, "404: no user: 7", err.Error())
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("saving recipe: %w", BadRequest("duplicate"))

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}
