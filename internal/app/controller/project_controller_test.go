package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/internal/app/service"
	"github.com/akshayrj/portfolio-backend/internal/db"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
	"github.com/akshayrj/portfolio-backend/internal/storage"
	"github.com/akshayrj/portfolio-backend/pkg/util"
)

// memStorage keeps uploaded objects in memory.
type memStorage struct {
	mu      sync.Mutex
	counter int
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (s *memStorage) Upload(_ context.Context, data []byte, folder, filename, contentType string) (*storage.UploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	key := fmt.Sprintf("%s/%d-%s", folder, s.counter, filename)
	s.objects[key] = data
	return &storage.UploadResult{URL: "https://cdn.example.com/" + key, Key: key}, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func setupProjectControllerTest(t *testing.T) (*gin.Engine, *memStorage) {
	gin.SetMode(gin.TestMode)

	testDB := db.SetupTestDB(t)
	objects := newMemStorage()

	projectService := service.NewProjectService(repository.NewProjectRepository(testDB), objects)
	ctrl := NewProjectController(projectService)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")
	guard := authMiddleware.Authenticate()

	router := gin.New()
	projects := router.Group("/api/v1/projects")
	projects.GET("", ctrl.List)
	projects.GET("/:id", ctrl.Get)
	projects.POST("", guard, ctrl.Create)
	projects.PUT("/:id", guard, ctrl.Update)
	projects.DELETE("/:id", guard, ctrl.Delete)

	return router, objects
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := util.GenerateToken(1, "admin@example.com", "test-secret", time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestProjectController_Create(t *testing.T) {
	router, _ := setupProjectControllerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Portfolio Backend",
		"description": "REST API for the portfolio site",
		"tech_stack":  `["Go","Gin","Postgres"]`,
		"is_featured": "true",
	}, "video", "demo.mp4", []byte("video-bytes"))

	req := httptest.NewRequest("POST", "/api/v1/projects", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(adminCookie(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var project map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, "Portfolio Backend", project["title"])
	assert.Equal(t, true, project["is_featured"])
	assert.Equal(t, []interface{}{"Go", "Gin", "Postgres"}, project["tech_stack"])
	assert.Contains(t, project["video_url"], "https://cdn.example.com/projects/")
}

func TestProjectController_Create_Unauthenticated(t *testing.T) {
	router, _ := setupProjectControllerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Sneaky",
		"description": "No session",
	}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/v1/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Nothing was created.
	listReq := httptest.NewRequest("GET", "/api/v1/projects", nil)
	listW := httptest.NewRecorder()
	router.ServeHTTP(listW, listReq)
	assert.NotContains(t, listW.Body.String(), "Sneaky")
}

func TestProjectController_Create_MissingFields(t *testing.T) {
	router, _ := setupProjectControllerTest(t)

	body, contentType := multipartBody(t, map[string]string{}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/v1/projects", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(adminCookie(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// All missing fields are reported in one response.
	assert.Contains(t, w.Body.String(), "title is required")
	assert.Contains(t, w.Body.String(), "description is required")
}

func TestProjectController_Create_MalformedBody(t *testing.T) {
	router, _ := setupProjectControllerTest(t)

	req := httptest.NewRequest("POST", "/api/v1/projects", bytes.NewBufferString("not multipart at all"))
	req.Header.Set("Content-Type", "multipart/form-data")
	req.AddCookie(adminCookie(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UPLOAD_MALFORMED_BODY")
}

func TestProjectController_UpdateAndDelete(t *testing.T) {
	router, objects := setupProjectControllerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Original",
		"description": "First version",
	}, "video", "v1.mp4", []byte("v1"))
	req := httptest.NewRequest("POST", "/api/v1/projects", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(adminCookie(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := int(created["id"].(float64))

	// Replace the video via update.
	body, contentType = multipartBody(t, map[string]string{
		"title":       "Renamed",
		"description": "Second version",
	}, "video", "v2.mp4", []byte("v2"))
	req = httptest.NewRequest("PUT", fmt.Sprintf("/api/v1/projects/%d", id), body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(adminCookie(t))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated["title"])
	assert.NotEqual(t, created["video_url"], updated["video_url"])
	// Only the replacement object remains.
	assert.Len(t, objects.objects, 1)

	// Delete removes the record and its object.
	req = httptest.NewRequest("DELETE", fmt.Sprintf("/api/v1/projects/%d", id), nil)
	req.AddCookie(adminCookie(t))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, objects.objects, 0)

	req = httptest.NewRequest("GET", fmt.Sprintf("/api/v1/projects/%d", id), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectController_Update_NotFound(t *testing.T) {
	router, _ := setupProjectControllerTest(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Ghost",
		"description": "Does not exist",
	}, "", "", nil)
	req := httptest.NewRequest("PUT", "/api/v1/projects/999", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(adminCookie(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
