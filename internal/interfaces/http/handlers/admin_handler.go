package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domainerrors "event-portal.backend/internal/domain/errors"
	"event-portal.backend/internal/interfaces/http/middleware"
	"event-portal.backend/internal/interfaces/http/response"
	"event-portal.backend/internal/usecases"
)

const exportFilename = "team_details.xlsx"

type AdminHandler struct {
	admin         *usecases.AdminUsecase
	registrations *usecases.RegistrationUsecase
	exports       *usecases.ExportUsecase
	sessionTTL    time.Duration
}

func NewAdminHandler(admin *usecases.AdminUsecase, registrations *usecases.RegistrationUsecase, exports *usecases.ExportUsecase, sessionTTL time.Duration) *AdminHandler {
	return &AdminHandler{
		admin:         admin,
		registrations: registrations,
		exports:       exports,
		sessionTTL:    sessionTTL,
	}
}

// ShowLogin returns the login form payload.
// GET /admin_login
func (h *AdminHandler) ShowLogin(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"page": "admin_login"})
}

// Login checks the submitted credentials and establishes the admin session.
// Browser form posts get a redirect to the dashboard plus the session cookie;
// JSON clients additionally receive a bearer token for scripted access.
// POST /admin_login
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
	}
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sess, err := h.admin.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			// Authentication failure re-renders the login form, not an error page.
			response.Success(c, http.StatusOK, gin.H{
				"page":  "admin_login",
				"error": "Invalid credentials. Try again.",
			})
			return
		}
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, sess.SessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)

	if wantsJSON(c) {
		response.Success(c, http.StatusOK, gin.H{
			"token":    sess.Token,
			"redirect": "/admin_dashboard",
		})
		return
	}
	c.Redirect(http.StatusFound, "/admin_dashboard")
}

// Dashboard returns the admin dashboard payload. Gated.
// GET /admin_dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	user, _ := middleware.GetAdminUser(c)
	response.Success(c, http.StatusOK, gin.H{
		"page":     "admin_dashboard",
		"username": user,
	})
}

// ListTeams returns every registration, newest first. Gated.
// GET /view_registered_teams
func (h *AdminHandler) ListTeams(c *gin.Context) {
	teams := h.registrations.List(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"teams": teams})
}

// ExportExcel streams the registration spreadsheet. Gated.
// GET /export_excel
func (h *AdminHandler) ExportExcel(c *gin.Context) {
	data, err := h.exports.ExportXLSX(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+exportFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Logout clears the admin session and returns to the landing page.
// GET /logout
func (h *AdminHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(middleware.SessionCookieName); err == nil && sid != "" {
		_ = h.admin.Logout(c.Request.Context(), sid)
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.ContentType(), "application/json") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
