package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/khaoyai-getaway/content-service/internal/content"
)

// MemoryRepo holds the document in memory. Used by unit tests and as a cheap
// backend for local experiments.
type MemoryRepo struct {
	mu  sync.RWMutex
	raw []byte
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Load(_ context.Context) (*content.ContentDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.raw == nil {
		return nil, nil
	}
	var doc content.ContentDocument
	if err := json.Unmarshal(m.raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MemoryRepo) Store(_ context.Context, doc *content.ContentDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = data
	m.mu.Unlock()
	return nil
}
