package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/khaoyai-getaway/content-service/internal/storage"
)

type fakeStore struct {
	uploaded []string
	deleted  []string
	files    []storage.FileInfo
	failWith error
}

func (f *fakeStore) UploadFile(ctx context.Context, r io.Reader, size int64, filename, contentType, folder string) (*storage.UploadResult, error) {
	if err := storage.ValidateUpload(filename, contentType, size); err != nil {
		return nil, err
	}
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.uploaded = append(f.uploaded, filename)
	return &storage.UploadResult{
		URL:         "http://blob.local/images/" + filename,
		Pathname:    "images/" + filename,
		ContentType: contentType,
	}, nil
}

func (f *fakeStore) DeleteByURL(ctx context.Context, url string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeStore) ListByPrefix(ctx context.Context, prefix string) ([]storage.FileInfo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.files, nil
}

func newUploadRouter(store FileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterUploadRoutes(r, store)
	return r
}

func multipartBody(t *testing.T, field, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	hdr["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadFileSuccess(t *testing.T) {
	store := &fakeStore{}
	r := newUploadRouter(store)

	body, ct := multipartBody(t, "file", "villa.jpg", "image/jpeg", []byte("fake-jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])
	require.Contains(t, resp["url"], "villa.jpg")
	require.Equal(t, "image/jpeg", resp["contentType"])
	require.Len(t, store.uploaded, 1)
}

func TestUploadFileMissingFile(t *testing.T) {
	r := newUploadRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "ไม่พบไฟล์")
}

func TestUploadFileRejectsBadType(t *testing.T) {
	store := &fakeStore{}
	r := newUploadRouter(store)

	body, ct := multipartBody(t, "file", "anim.gif", "image/gif", []byte("gif"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "รองรับเฉพาะ JPG")
	require.Empty(t, store.uploaded)
}

func TestDeleteFile(t *testing.T) {
	store := &fakeStore{}
	r := newUploadRouter(store)

	payload := `{"url":"http://blob.local/images/villa.jpg"}`
	req := httptest.NewRequest(http.MethodDelete, "/api/upload/delete", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ลบไฟล์สำเร็จ")
	require.Equal(t, []string{"http://blob.local/images/villa.jpg"}, store.deleted)
}

func TestDeleteFileMissingURL(t *testing.T) {
	r := newUploadRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/upload/delete", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "ไม่พบ URL ของไฟล์")
}

func TestListFiles(t *testing.T) {
	store := &fakeStore{files: []storage.FileInfo{
		{URL: "http://blob.local/images/a.jpg", Pathname: "images/a.jpg", Size: 10},
		{URL: "http://blob.local/images/b.png", Pathname: "images/b.png", Size: 20},
	}}
	r := newUploadRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/upload/list?prefix=images/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool               `json:"success"`
		Files   []storage.FileInfo `json:"files"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Files, 2)
}

func TestListFilesStoreFailure(t *testing.T) {
	r := newUploadRouter(&fakeStore{failWith: errors.New("minio down")})

	req := httptest.NewRequest(http.MethodGet, "/api/upload/list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
