package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khaoyai-getaway/content-service/internal/content"
)

// FileRepo keeps the document in a local JSON file. Used for development
// without a blob store and as the read side of the one-shot migration.
type FileRepo struct {
	path string
}

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Load(_ context.Context) (*content.ContentDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read content file %s: %w", r.path, err)
	}
	var doc content.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content file %s: %w", r.path, err)
	}
	return &doc, nil
}

func (r *FileRepo) Store(_ context.Context, doc *content.ContentDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content file: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write content file %s: %w", r.path, err)
	}
	return nil
}
