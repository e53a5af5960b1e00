package response

import (
	"github.com/gin-gonic/gin"

	domainerrors "event-portal.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping any non-AppError to a 500
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{
		"error": appErr.Message,
	})
}

// ErrorWithForm sends an error response echoing back the submitted form
// values so the caller can re-display them.
func ErrorWithForm(c *gin.Context, err error, form interface{}) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{
		"error": appErr.Message,
		"form":  form,
	})
}
