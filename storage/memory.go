package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MemoryStore keeps blobs in a map. It backs tests that need to observe
// whether a blob and its database record were deleted together.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// PutErr and DeleteErr, when set, make the next matching call fail.
	PutErr    error
	DeleteErr error
}

const memoryBaseURL = "mem://photos"

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return "", m.PutErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[key] = data
	return memoryBaseURL + "/" + key, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.objects[key]; !ok {
		return fmt.Errorf("no object at %s", key)
	}
	delete(m.objects, key)
	return nil
}

func (m *MemoryStore) Key(publicURL string) (string, error) {
	if !strings.HasPrefix(publicURL, memoryBaseURL+"/") {
		return "", fmt.Errorf("url %q is not served from this store", publicURL)
	}
	return strings.TrimPrefix(publicURL, memoryBaseURL+"/"), nil
}

// Exists reports whether a blob is present at key.
func (m *MemoryStore) Exists(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Len returns the number of stored blobs.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
