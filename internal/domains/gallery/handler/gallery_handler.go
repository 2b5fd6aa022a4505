package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/gallery"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// GalleryHandler serves the project gallery and its modal.
type GalleryHandler struct {
	service gallery.Service
}

func NewGalleryHandler(service gallery.Service) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// Projects handles GET /projects?category=
func (h *GalleryHandler) Projects(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), c.Query("category"))
	if err != nil {
		logger.Error("Error loading Portfolio", err)
		response.InternalServerError(c, "failed to load projects")
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Modal handles GET /projects/:index/modal
func (h *GalleryHandler) Modal(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "tile index must be a number")
		return
	}

	modal, err := h.service.Modal(c.Request.Context(), index)
	if errors.Is(err, gallery.ErrTileNotFound) {
		response.NotFound(c, "project not found")
		return
	}
	if err != nil {
		logger.Error("Error loading project modal", err)
		response.InternalServerError(c, "failed to load project")
		return
	}
	response.Success(c, http.StatusOK, modal)
}
