package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/akshayrj/portfolio-backend/internal/storage"
)

// fakeMailer records sent mail and can be told to fail.
type fakeMailer struct {
	mu       sync.Mutex
	sent     []sentMail
	failNext bool
}

type sentMail struct {
	To      string
	Subject string
	Text    string
}

func (m *fakeMailer) Send(to, subject, htmlBody, textBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return errors.New("smtp connection refused")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Text: textBody})
	return nil
}

func (m *fakeMailer) lastSent() *sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return nil
	}
	return &m.sent[len(m.sent)-1]
}

// fakeStorage tracks uploaded and deleted keys in memory.
type fakeStorage struct {
	mu         sync.Mutex
	uploads    int
	objects    map[string][]byte
	deleted    []string
	failUpload bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(_ context.Context, data []byte, folder, filename, contentType string) (*storage.UploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpload {
		return nil, errors.New("upload failed")
	}
	s.uploads++
	key := fmt.Sprintf("%s/object-%d-%s", folder, s.uploads, filename)
	s.objects[key] = data
	return &storage.UploadResult{
		URL: "https://cdn.example.com/" + key,
		Key: key,
	}, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}
