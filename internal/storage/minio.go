package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BlobStore is a thin wrapper around the minio client. Objects are addressed
// by stable logical pathnames (no versioning, no random suffix) and exposed
// through public URLs.
type BlobStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// UploadResult describes a stored object.
type UploadResult struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType,omitempty"`
}

// FileInfo is one entry of a prefix listing.
type FileInfo struct {
	URL        string    `json:"url"`
	Pathname   string    `json:"pathname"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// NewBlobStore creates the blob client and ensures the bucket exists.
func NewBlobStore(cfg *BlobConfig) (*BlobStore, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("blob config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &BlobStore{client: mc, bucket: cfg.Bucket, baseURL: cfg.PublicBaseURL()}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// publicURL derives the publicly readable URL of an object.
func (s *BlobStore) publicURL(pathname string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, pathname)
}

// pathnameFromURL is the inverse of publicURL.
func (s *BlobStore) pathnameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse blob url: %w", err)
	}
	p := strings.TrimPrefix(u.Path, "/")
	p = strings.TrimPrefix(p, s.bucket+"/")
	if p == "" {
		return "", fmt.Errorf("blob url carries no pathname: %s", rawURL)
	}
	return p, nil
}

// UploadJSON serializes v and overwrites the object at the given logical path.
// The pathname is the object's stable identity.
func (s *BlobStore) UploadJSON(ctx context.Context, v any, pathname string) (*UploadResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json blob: %w", err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, pathname, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, fmt.Errorf("upload json blob %s: %w", pathname, err)
	}
	return &UploadResult{URL: s.publicURL(pathname), Pathname: pathname, ContentType: "application/json"}, nil
}

// GetJSONByPathname fetches the raw object bytes. A missing object returns
// (nil, nil) so callers can tell "empty" from "failure".
func (s *BlobStore) GetJSONByPathname(ctx context.Context, pathname string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, pathname, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get json blob %s: %w", pathname, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return nil, nil
		}
		return nil, fmt.Errorf("read json blob %s: %w", pathname, err)
	}
	return data, nil
}

// UploadFile validates the file against the upload gate and stores it under
// folder with a collision-resistant generated filename. Validation failures
// return before any network call.
func (s *BlobStore) UploadFile(ctx context.Context, r io.Reader, size int64, filename, contentType, folder string) (*UploadResult, error) {
	if err := ValidateUpload(filename, contentType, size); err != nil {
		return nil, err
	}
	if folder == "" {
		folder = "images"
	}
	pathname := folder + "/" + GenerateUniqueFilename(filename)
	_, err := s.client.PutObject(ctx, s.bucket, pathname, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("upload file %s: %w", pathname, err)
	}
	return &UploadResult{URL: s.publicURL(pathname), Pathname: pathname, ContentType: contentType}, nil
}

// DeleteByURL removes an object given its public URL.
func (s *BlobStore) DeleteByURL(ctx context.Context, rawURL string) error {
	pathname, err := s.pathnameFromURL(rawURL)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, pathname, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete blob %s: %w", pathname, err)
	}
	return nil
}

// ListByPrefix enumerates stored objects for admin tooling.
func (s *BlobStore) ListByPrefix(ctx context.Context, prefix string) ([]FileInfo, error) {
	out := []FileInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list blobs %q: %w", prefix, obj.Err)
		}
		out = append(out, FileInfo{
			URL:        s.publicURL(obj.Key),
			Pathname:   obj.Key,
			Size:       obj.Size,
			UploadedAt: obj.LastModified,
		})
	}
	return out, nil
}
