package controller

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/form"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

const dateLayout = "2006-01-02"

// parseID reads the :id path parameter. On failure it writes the 400
// response and returns false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// ingestForm parses the multipart body, responding with 400 when the
// stream is malformed.
func ingestForm(c *gin.Context) (*form.Form, bool) {
	f, err := form.Parse(c.Request)
	if err != nil {
		log := middleware.GetLoggerFromContext(c)
		log.Warn("Malformed multipart body", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.UploadMalformedBody, "Malformed form data")
		return nil, false
	}
	return f, true
}

// requireFields validates the listed fields, joining every missing-field
// message into one 400 response.
func requireFields(c *gin.Context, f *form.Form, required ...string) bool {
	if missing := form.Validate(f, required...); len(missing) > 0 {
		apperrors.BadRequest(c, apperrors.ValidationRequired, strings.Join(missing, " "))
		return false
	}
	return true
}

// fileUpload converts a parsed attachment for the service layer.
func fileUpload(f *form.Form) *service.FileUpload {
	if f.Attachment == nil {
		return nil
	}
	return &service.FileUpload{
		Data:        f.Attachment.Data,
		Filename:    f.Attachment.Filename,
		ContentType: f.Attachment.ContentType,
	}
}

// parseDate parses a yyyy-mm-dd form value.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

// parseOptionalDate returns nil for a blank value.
func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseBoolField treats a blank value as false.
func parseBoolField(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

// parseList accepts either a JSON array or a comma-separated string.
func parseList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(value), &items); err == nil {
		return items
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
