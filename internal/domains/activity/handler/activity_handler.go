package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/activity"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ActivityHandler serves the merged external activity feed.
type ActivityHandler struct {
	service activity.Service
}

func NewActivityHandler(service activity.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Feed handles GET /activity
func (h *ActivityHandler) Feed(c *gin.Context) {
	view, err := h.service.Feed(c.Request.Context())
	if err != nil {
		logger.Error("Error loading Projects", err)
		response.InternalServerError(c, "failed to load activity feed")
		return
	}
	response.Success(c, http.StatusOK, view)
}
