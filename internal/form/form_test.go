package form

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMultipart(t *testing.T, fields map[string]string, fileField, filename, contentType string, fileData []byte) (*bytes.Buffer, string) {
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
	if contentType == "" {
		contentType = writer.FormDataContentType()
	}
	return body, contentType
}

func TestParse_FieldsAndFile(t *testing.T) {
	body, contentType := buildMultipart(t, map[string]string{
		"title":       "My Project",
		"description": "A thing I built",
	}, "image", "shot.png", "", []byte("png-bytes"))

	req := httptest.NewRequest("POST", "/api/v1/projects", body)
	req.Header.Set("Content-Type", contentType)

	parsed, err := Parse(req)
	require.NoError(t, err)

	assert.Equal(t, "My Project", parsed.Value("title"))
	assert.Equal(t, "A thing I built", parsed.Value("description"))
	require.NotNil(t, parsed.Attachment)
	assert.Equal(t, "shot.png", parsed.Attachment.Filename)
	assert.Equal(t, []byte("png-bytes"), parsed.Attachment.Data)
}

func TestParse_NoFile(t *testing.T) {
	body, contentType := buildMultipart(t, map[string]string{"name": "Go"}, "", "", "", nil)

	req := httptest.NewRequest("POST", "/api/v1/skills", body)
	req.Header.Set("Content-Type", contentType)

	parsed, err := Parse(req)
	require.NoError(t, err)
	assert.Equal(t, "Go", parsed.Value("name"))
	assert.Nil(t, parsed.Attachment)
}

func TestParse_RepeatedFieldKeepsLast(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "first"))
	require.NoError(t, writer.WriteField("title", "second"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/projects", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	parsed, err := Parse(req)
	require.NoError(t, err)
	assert.Equal(t, "second", parsed.Value("title"))
}

func TestParse_MissingBoundary(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/v1/projects", strings.NewReader("not multipart"))
	req.Header.Set("Content-Type", "multipart/form-data")

	_, err := Parse(req)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_NotMultipart(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/v1/projects", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := Parse(req)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_TruncatedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/v1/projects", strings.NewReader("--boundary\r\nContent-Disposition: form-data; name=\"title\"\r\n\r\ntrunc"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=boundary")

	_, err := Parse(req)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestValidate(t *testing.T) {
	f := &Form{Fields: map[string]string{"title": "x", "empty": "  "}}

	missing := Validate(f, "title", "empty", "description")
	assert.Equal(t, []string{"empty is required", "description is required"}, missing)

	assert.Nil(t, Validate(f, "title"))
}
