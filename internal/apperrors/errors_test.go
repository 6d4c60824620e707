package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalServerErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset by peer")
	appErr := NewInternalServerError("failed to begin transaction", cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, cause, errors.Unwrap(appErr))
	assert.Equal(t, "failed to begin transaction: connection reset by peer", appErr.Error())
}

func TestAppErrorWithoutCause(t *testing.T) {
	appErr := NewBadRequestError("missing account number")

	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.NoError(t, errors.Unwrap(appErr))
	assert.Equal(t, "missing account number", appErr.Error())
}
