package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/resume"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ResumeHandler serves the work timeline, education, skills and client
// logo sections.
type ResumeHandler struct {
	service resume.Service
}

func NewResumeHandler(service resume.Service) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// Experience handles GET /experience
func (h *ResumeHandler) Experience(c *gin.Context) {
	views, err := h.service.Experience(c.Request.Context())
	if err != nil {
		logger.Error("Error loading Experience", err)
		response.InternalServerError(c, "failed to load experience")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// Education handles GET /education
func (h *ResumeHandler) Education(c *gin.Context) {
	views, err := h.service.Education(c.Request.Context())
	if err != nil {
		logger.Error("Error loading Education", err)
		response.InternalServerError(c, "failed to load education")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// Skills handles GET /skills
func (h *ResumeHandler) Skills(c *gin.Context) {
	views, err := h.service.Skills(c.Request.Context())
	if err != nil {
		logger.Error("Error loading Skills", err)
		response.InternalServerError(c, "failed to load skills")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// Companies handles GET /companies
func (h *ResumeHandler) Companies(c *gin.Context) {
	views, err := h.service.Companies(c.Request.Context())
	if err != nil {
		logger.Error("Error loading companies", err)
		response.InternalServerError(c, "failed to load companies")
		return
	}
	response.Success(c, http.StatusOK, views)
}
