package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event-portal.backend/internal/domain/entities"
	domainerrors "event-portal.backend/internal/domain/errors"
	"event-portal.backend/internal/interfaces/http/response"
	"event-portal.backend/internal/usecases"
)

type RegistrationHandler struct {
	registrations *usecases.RegistrationUsecase
}

func NewRegistrationHandler(registrations *usecases.RegistrationUsecase) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// ShowForm returns the registration form payload.
// GET /team_register
func (h *RegistrationHandler) ShowForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"page": "team_register",
		"form": entities.RegistrationInput{},
	})
}

// Register accepts a team registration submission.
// POST /team_register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var input entities.RegistrationInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	stored, err := h.registrations.Register(c.Request.Context(), input)
	if err != nil {
		// Failed submissions echo the original values back for re-display.
		response.ErrorWithForm(c, err, input)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Team registered successfully.",
		"data":    usecases.DocToMap(stored),
	})
}

// DownloadInfo reformats posted form fields into a plain-text attachment.
// No store access; purely a convenience for the just-registered team.
// POST /download_info
func (h *RegistrationHandler) DownloadInfo(c *gin.Context) {
	var input entities.RegistrationInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	content := h.registrations.FormatInfoText(input)

	c.Header("Content-Disposition", `attachment; filename=team_registration.txt`)
	c.Data(http.StatusOK, "text/plain", []byte(content))
}
