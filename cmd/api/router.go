package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		// Aggregate view: every section, fetched concurrently, best effort.
		v1.GET("/portfolio", c.SiteHandler.Portfolio)

		setupSectionRoutes(v1, c)
		setupMessageRoutes(v1, c)
	}

	setupStaticRoutes(router, c)

	return router
}

// ========================================
// SECTION ROUTES
// ========================================
func setupSectionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/bio", c.ProfileHandler.Bio)
	v1.GET("/roles", c.ProfileHandler.Roles)
	v1.GET("/contacts", c.ProfileHandler.Contacts)

	v1.GET("/experience", c.ResumeHandler.Experience)
	v1.GET("/education", c.ResumeHandler.Education)
	v1.GET("/skills", c.ResumeHandler.Skills)
	v1.GET("/companies", c.ResumeHandler.Companies)

	v1.GET("/activity", c.ActivityHandler.Feed)

	v1.GET("/projects", c.GalleryHandler.Projects)
	v1.GET("/projects/:index/modal", c.GalleryHandler.Modal)
}

// ========================================
// MESSAGE ROUTES
// ========================================
func setupMessageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/messages", c.MessageHandler.Submit)
}

// ========================================
// STATIC PAGE SHELL
// ========================================
// Serves the static page when the configured web directory exists.
// A missing directory is a no-op, same as a missing mount point.
func setupStaticRoutes(router *gin.Engine, c *container.Container) {
	webDir := c.Config.App.WebDir
	if webDir == "" {
		return
	}
	if info, err := os.Stat(webDir); err != nil || !info.IsDir() {
		return
	}

	router.StaticFile("/", filepath.Join(webDir, "index.html"))
	router.Static("/assets", filepath.Join(webDir, "assets"))
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
		} else {
			status["database"] = "ok"
		}

		if err := c.Realtime.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["realtime"] = err.Error()
		} else {
			status["realtime"] = "ok"
		}

		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		ctx.JSON(code, status)
	}
}
