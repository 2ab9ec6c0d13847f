package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

type ContactController struct {
	service service.ContactService
}

func NewContactController(svc service.ContactService) *ContactController {
	return &ContactController{service: svc}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit relays a contact form message to the site owner
// POST /api/v1/contact
func (ctrl *ContactController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Name, email and message are required")
		return
	}

	if err := ctrl.service.Send(req.Name, req.Email, req.Message); err != nil {
		log.Error("Failed to relay contact message", err, map[string]interface{}{
			"from": req.Email,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.MailDeliveryFailed, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
