package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

type ChatbotController struct {
	service service.ChatbotService
}

func NewChatbotController(svc service.ChatbotService) *ChatbotController {
	return &ChatbotController{service: svc}
}

type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask answers a visitor question about the portfolio
// POST /api/v1/chatbot
func (ctrl *ChatbotController) Ask(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Message is required")
		return
	}

	reply, err := ctrl.service.Ask(c.Request.Context(), req.Message)
	if err != nil {
		log.Error("Chatbot request failed", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.InternalExternalAPI, "Failed to generate a reply")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
