package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUpload_AcceptsAllowedImages(t *testing.T) {
	require.NoError(t, ValidateUpload("photo.jpg", "image/jpeg", 1024))
	require.NoError(t, ValidateUpload("photo.PNG", "image/png", MaxUploadSize))
	require.NoError(t, ValidateUpload("photo.webp", "image/webp", 1))
}

func TestValidateUpload_RejectsOversizedFile(t *testing.T) {
	err := ValidateUpload("big.jpg", "image/jpeg", 6*1024*1024)
	require.ErrorIs(t, err, ErrFileTooLarge)
	require.Contains(t, err.Error(), "ขนาดใหญ่เกินไป")
	require.True(t, IsValidationError(err))
}

func TestValidateUpload_RejectsUnsupportedType(t *testing.T) {
	err := ValidateUpload("anim.gif", "image/gif", 1024)
	require.ErrorIs(t, err, ErrBadFileType)
	require.True(t, IsValidationError(err))
}

func TestValidateUpload_RejectsMismatchedExtension(t *testing.T) {
	// declared type is fine but the extension is not on the allow-list
	err := ValidateUpload("photo.gif", "image/jpeg", 1024)
	require.ErrorIs(t, err, ErrBadExtension)

	err = ValidateUpload("noextension", "image/jpeg", 1024)
	require.ErrorIs(t, err, ErrBadExtension)
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("ภาพ ทริป.jpg")
	b := GenerateUniqueFilename("ภาพ ทริป.jpg")
	require.NotEqual(t, a, b)
	// unsafe characters are replaced, extension survives
	require.True(t, strings.HasSuffix(a, ".jpg"))
	require.NotContains(t, a, " ")
}
