package storage

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload gate for the admin image pickers. Limits match what the public site
// can actually render.
const MaxUploadSize = 5 * 1024 * 1024 // 5MB

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Validation failures carry the user-facing message; they are rejected
// locally, before any storage call.
var (
	ErrBadFileType  = errors.New("ประเภทไฟล์ไม่ถูกต้อง (รองรับเฉพาะ JPG, PNG, WebP)")
	ErrFileTooLarge = errors.New("ไฟล์มีขนาดใหญ่เกินไป (สูงสุด 5MB)")
	ErrBadExtension = errors.New("นามสกุลไฟล์ไม่ถูกต้อง")
)

// IsValidationError reports whether err is an upload-gate rejection rather
// than a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrBadFileType) || errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrBadExtension)
}

// ValidateUpload checks content type, size and extension, in that order.
func ValidateUpload(filename, contentType string, size int64) error {
	if !allowedContentTypes[contentType] {
		return ErrBadFileType
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filename)
	if i := strings.LastIndex(ext, "."); i >= 0 {
		ext = ext[i:]
	} else {
		ext = ""
	}
	if !allowedExtensions[ext] {
		return ErrBadExtension
	}
	return nil
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// GenerateUniqueFilename builds a collision-resistant object name from the
// original: unix-millis timestamp, a short random token and the sanitized
// name. Concurrent uploads of the same file never clash.
func GenerateUniqueFilename(original string) string {
	sanitized := unsafeFilenameRe.ReplaceAllString(original, "_")
	token := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), token, sanitized)
}
