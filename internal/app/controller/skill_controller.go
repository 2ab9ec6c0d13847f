package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
)

type SkillController struct {
	service service.SkillService
}

func NewSkillController(svc service.SkillService) *SkillController {
	return &SkillController{service: svc}
}

// List returns all skills
// GET /api/v1/skills
func (ctrl *SkillController) List(c *gin.Context) {
	skills, err := ctrl.service.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to load skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

// Create adds a skill
// POST /api/v1/skills
func (ctrl *SkillController) Create(c *gin.Context) {
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "name") {
		return
	}

	skill, err := ctrl.service.Create(service.SkillInput{
		Name:     f.Value("name"),
		Level:    f.Value("level"),
		Category: f.Value("category"),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSkillLevel) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
			return
		}
		apperrors.InternalError(c, "Failed to create skill")
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// Update replaces a skill
// PUT /api/v1/skills/:id
func (ctrl *SkillController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "name") {
		return
	}

	skill, err := ctrl.service.Update(id, service.SkillInput{
		Name:     f.Value("name"),
		Level:    f.Value("level"),
		Category: f.Value("category"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Skill not found")
		case errors.Is(err, service.ErrInvalidSkillLevel):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		default:
			apperrors.InternalError(c, "Failed to update skill")
		}
		return
	}

	c.JSON(http.StatusOK, skill)
}

// Delete removes a skill
// DELETE /api/v1/skills/:id
func (ctrl *SkillController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Skill not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
