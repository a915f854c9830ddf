package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/khaoyai-getaway/content-service/internal/content"
	"github.com/khaoyai-getaway/content-service/internal/storage"
)

// DefaultPathname is the well-known logical path of the content document in
// the blob store.
const DefaultPathname = "data/content.json"

// BlobRepo persists the document as a single JSON object in the blob store.
// This is the production backend.
type BlobRepo struct {
	store    *storage.BlobStore
	pathname string
}

func NewBlobRepo(store *storage.BlobStore, pathname string) *BlobRepo {
	if pathname == "" {
		pathname = DefaultPathname
	}
	return &BlobRepo{store: store, pathname: pathname}
}

func (r *BlobRepo) Load(ctx context.Context) (*content.ContentDocument, error) {
	data, err := r.store.GetJSONByPathname(ctx, r.pathname)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var doc content.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content document: %w", err)
	}
	return &doc, nil
}

func (r *BlobRepo) Store(ctx context.Context, doc *content.ContentDocument) error {
	if _, err := r.store.UploadJSON(ctx, doc, r.pathname); err != nil {
		return err
	}
	return nil
}
