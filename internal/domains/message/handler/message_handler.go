package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// MessageHandler accepts contact-form submissions.
type MessageHandler struct {
	service message.Service
}

func NewMessageHandler(service message.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// Submit handles POST /messages
func (h *MessageHandler) Submit(c *gin.Context) {
	var req message.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest,
				"VALIDATION_FAILED", "invalid submission", validationErrs)
			return
		}

		// The user gets a generic retry message; the cause is for operators.
		logger.Error("Error writing contact message to log", err)
		response.InternalServerError(c,
			"There was an error sending your message. Please try again.")
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Message sent successfully!", resp)
}
