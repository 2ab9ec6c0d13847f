// Package form parses multipart/form-data request bodies into plain
// field maps plus an optional single file attachment, and validates
// required fields for the admin mutation endpoints.
package form

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// ErrMalformed reports a request body that could not be parsed as
// multipart/form-data (missing boundary, truncated stream, bad part
// headers).
var ErrMalformed = errors.New("malformed multipart body")

// maxAttachmentSize caps how much of a single file part is buffered.
const maxAttachmentSize = 50 << 20 // 50 MiB

// Attachment is one uploaded file, fully buffered.
type Attachment struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Form is the parsed body: text fields by name, and the last file part
// seen, if any. Repeated field names keep the last value.
type Form struct {
	Fields     map[string]string
	Attachment *Attachment
}

// Value returns the named text field, or "" when absent.
func (f *Form) Value(name string) string {
	return f.Fields[name]
}

// Has reports whether the named text field was present and non-empty.
func (f *Form) Has(name string) bool {
	return strings.TrimSpace(f.Fields[name]) != ""
}

// Parse reads the request body as multipart/form-data. Text parts are
// collected into Fields; file parts are buffered, with later files
// replacing earlier ones. Any stream-level failure maps to ErrMalformed.
func Parse(r *http.Request) (*Form, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, ErrMalformed
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, ErrMalformed
	}

	mr := multipart.NewReader(r.Body, boundary)
	parsed := &Form{Fields: make(map[string]string)}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrMalformed
		}

		name := part.FormName()
		if name == "" {
			part.Close()
			continue
		}

		if part.FileName() == "" {
			value, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				return nil, ErrMalformed
			}
			parsed.Fields[name] = string(value)
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, maxAttachmentSize+1))
		contentType := part.Header.Get("Content-Type")
		filename := part.FileName()
		part.Close()
		if err != nil {
			return nil, ErrMalformed
		}
		if len(data) > maxAttachmentSize {
			return nil, fmt.Errorf("file %q exceeds %d bytes", filename, maxAttachmentSize)
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		parsed.Attachment = &Attachment{
			Data:        data,
			Filename:    filename,
			ContentType: contentType,
		}
	}

	return parsed, nil
}

// Validate checks that every listed field is present and non-empty,
// returning one message per missing field so the caller can report them
// all at once.
func Validate(f *Form, required ...string) []string {
	var missing []string
	for _, name := range required {
		if !f.Has(name) {
			missing = append(missing, fmt.Sprintf("%s is required", name))
		}
	}
	return missing
}
