package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/form"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

type ProjectController struct {
	service service.ProjectService
}

func NewProjectController(svc service.ProjectService) *ProjectController {
	return &ProjectController{service: svc}
}

func projectInputFromForm(f *form.Form) service.ProjectInput {
	return service.ProjectInput{
		Title:       f.Value("title"),
		Description: f.Value("description"),
		TechStack:   parseList(f.Value("tech_stack")),
		GithubLink:  f.Value("github_link"),
		LiveLink:    f.Value("live_link"),
		IsFeatured:  parseBoolField(f.Value("is_featured")),
	}
}

// List returns all projects, newest first
// GET /api/v1/projects
func (ctrl *ProjectController) List(c *gin.Context) {
	projects, err := ctrl.service.List()
	if err != nil {
		apperrors.InternalError(c, "Failed to load projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get returns one project
// GET /api/v1/projects/:id
func (ctrl *ProjectController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := ctrl.service.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Project not found")
			return
		}
		apperrors.InternalError(c, "Failed to load project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create adds a project, optionally with a demo video
// POST /api/v1/projects
func (ctrl *ProjectController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "title", "description") {
		return
	}

	project, err := ctrl.service.Create(c.Request.Context(), projectInputFromForm(f), fileUpload(f))
	if err != nil {
		log.Error("Failed to create project", err)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Update replaces a project's fields and optionally its video
// PUT /api/v1/projects/:id
func (ctrl *ProjectController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	f, ok := ingestForm(c)
	if !ok {
		return
	}
	if !requireFields(c, f, "title", "description") {
		return
	}

	project, err := ctrl.service.Update(c.Request.Context(), id, projectInputFromForm(f), fileUpload(f))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Project not found")
			return
		}
		log.Error("Failed to update project", err, map[string]interface{}{
			"project_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete removes a project and its video object
// DELETE /api/v1/projects/:id
func (ctrl *ProjectController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Project not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
