package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, "bad", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrInvalidInput.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.True(t, stderrors.Is(notFound, ErrNotFound))

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Code)
	assert.True(t, stderrors.Is(conflict, ErrAlreadyExists))

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Code)

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Code)

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.Equal(t, "db down", internal.Error())

	storage := StorageError(stderrors.New("write concern error"))
	assert.Equal(t, http.StatusInternalServerError, storage.Code)
	assert.Contains(t, storage.Message, "write concern error")
	assert.True(t, stderrors.Is(storage, ErrStorage))
}

func TestAppError_MessageFallback(t *testing.T) {
	err := &AppError{Code: http.StatusTeapot, Message: "just a message"}
	assert.Equal(t, "just a message", err.Error())
	assert.Nil(t, stderrors.Unwrap(err))
}
