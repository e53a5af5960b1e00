package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event-portal.backend/internal/interfaces/http/response"
)

// PagesHandler serves the static page payloads. Actual HTML rendering is the
// frontend's job; these endpoints supply the page data.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home returns the landing page payload.
// GET /
func (h *PagesHandler) Home(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"page":  "home",
		"title": "Event Registration Portal",
	})
}

// Treasure returns the treasure hunt page payload.
// GET /treasure
func (h *PagesHandler) Treasure(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"page":  "treasure",
		"title": "Treasure Hunt",
	})
}

// UpcomingEvents returns the upcoming events page payload.
// GET /upcoming_events
func (h *PagesHandler) UpcomingEvents(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"page":  "upcoming_events",
		"title": "Upcoming Events",
	})
}
