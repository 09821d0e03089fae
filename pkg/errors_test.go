package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestToErrorResponse_AppError(t *testing.T) {
	err := NewAppError(ErrRecordNotFoundCode, "no error pattern with code nope", ErrRecordNotFound)

	resp := ToErrorResponse(zap.NewNop(), "trace-1", err)

	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "APP_NOT_FOUND", resp.Code)
	assert.Equal(t, "no error pattern with code nope", resp.Message)
}

func TestToErrorResponse_UnknownErrorIs500(t *testing.T) {
	resp := ToErrorResponse(zap.NewNop(), "trace-1", errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, ErrServerCode.Code, resp.Code)
	assert.Equal(t, ErrServerCode.Message, resp.Message)
}

func TestIsCode(t *testing.T) {
	err := NewAppError(ErrUpstreamCode, "store down", nil)
	assert.True(t, IsCode(err, ErrUpstreamCode))
	assert.False(t, IsCode(err, ErrRecordNotFoundCode))
	assert.False(t, IsCode(errors.New("plain"), ErrUpstreamCode))

	// Wrapped AppErrors are still detected
	wrapped := NewAppError(ErrSnapshotCode, "outer", err)
	assert.True(t, IsCode(wrapped, ErrSnapshotCode))
}
