package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/site"
	"portfolio-backend/internal/shared/response"
)

// SiteHandler serves the aggregate portfolio view.
type SiteHandler struct {
	service site.Service
}

func NewSiteHandler(service site.Service) *SiteHandler {
	return &SiteHandler{service: service}
}

// Portfolio handles GET /portfolio. Always 200: failed sections are
// simply absent from the payload.
func (h *SiteHandler) Portfolio(c *gin.Context) {
	view := h.service.Build(c.Request.Context())
	response.Success(c, http.StatusOK, view)
}
