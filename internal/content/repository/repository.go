// Package repository provides the storage backends for the content document.
// Exactly one logical document lives behind each repository; writes replace it
// wholesale (last writer wins, no concurrency token).
package repository

import (
	"context"

	"github.com/khaoyai-getaway/content-service/internal/content"
)

// Repository is the durable home of the content document.
//
// Load returns (nil, nil) when no document has been stored yet — a valid
// empty state, not an error. Store overwrites unconditionally.
type Repository interface {
	Load(ctx context.Context) (*content.ContentDocument, error)
	Store(ctx context.Context, doc *content.ContentDocument) error
}
