package service

import (
	"errors"
)

// ErrNotFound is returned when a content record with the requested id
// does not exist.
var ErrNotFound = errors.New("resource not found")

// FileUpload is the buffered file a mutation carries, decoupled from
// the HTTP layer.
type FileUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}
