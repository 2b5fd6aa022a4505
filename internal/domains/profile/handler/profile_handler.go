package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ProfileHandler serves the bio, roles and contacts sections.
type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Bio handles GET /bio
func (h *ProfileHandler) Bio(c *gin.Context) {
	view, err := h.service.Bio(c.Request.Context())
	if err != nil {
		logger.Error("Error loading Bio", err)
		response.InternalServerError(c, "failed to load bio")
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Roles handles GET /roles
func (h *ProfileHandler) Roles(c *gin.Context) {
	views, err := h.service.Roles(c.Request.Context())
	if err != nil {
		logger.Error("Error loading Roles", err)
		response.InternalServerError(c, "failed to load roles")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// Contacts handles GET /contacts
func (h *ProfileHandler) Contacts(c *gin.Context) {
	view, err := h.service.Contacts(c.Request.Context())
	if err != nil {
		logger.Error("Error loading Contacts", err)
		response.InternalServerError(c, "failed to load contacts")
		return
	}
	response.Success(c, http.StatusOK, view)
}
