package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"event-portal.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	pagesHandler        *handlers.PagesHandler
	registrationHandler *handlers.RegistrationHandler
	adminHandler        *handlers.AdminHandler
	healthHandler       *handlers.HealthHandler
	adminAuth           gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Public pages
	r.GET("/", d.pagesHandler.Home)
	r.GET("/treasure", d.pagesHandler.Treasure)
	r.GET("/upcoming_events", d.pagesHandler.UpcomingEvents)

	// Registration (public)
	r.GET("/team_register", d.registrationHandler.ShowForm)
	r.POST("/team_register", d.registrationHandler.Register)
	r.POST("/download_info", d.registrationHandler.DownloadInfo)

	// Admin session
	r.GET("/admin_login", d.adminHandler.ShowLogin)
	r.POST("/admin_login", d.adminHandler.Login)
	r.GET("/logout", d.adminHandler.Logout)

	// Gated admin operations
	r.GET("/admin_dashboard", d.adminAuth, d.adminHandler.Dashboard)
	r.GET("/view_registered_teams", d.adminAuth, d.adminHandler.ListTeams)
	r.GET("/export_excel", d.adminAuth, d.adminHandler.ExportExcel)

	// Operational endpoints
	r.GET("/health", d.healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
