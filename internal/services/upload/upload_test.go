package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elvinasadov/arenda-api/internal/config"
)

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: "photo.jpg",
		Header:   header,
		Size:     size,
	}
}

func TestValidateFileAllowedTypes(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp"} {
		require.NoError(t, ValidateFile(fileHeader(ct, 1024)), ct)
	}
}

func TestValidateFileRejectsBadType(t *testing.T) {
	for _, ct := range []string{"image/gif", "application/pdf", "text/html", ""} {
		require.Error(t, ValidateFile(fileHeader(ct, 1024)), ct)
	}
}

func TestValidateFileRejectsOversized(t *testing.T) {
	require.Error(t, ValidateFile(fileHeader("image/jpeg", MaxFileSize+1)))
	require.NoError(t, ValidateFile(fileHeader("image/jpeg", MaxFileSize)))
}

func TestGenerateSignature(t *testing.T) {
	s := &UploadService{
		cfg: &config.Config{
			CloudinaryConfig: config.CloudinaryConfig{APISecret: "secret"},
		},
	}

	params := map[string]string{
		"timestamp": "1700000000",
		"folder":    "listings",
	}

	// Подпись: отсортированные key=value через &, затем секрет, затем SHA-1
	h := sha1.New()
	h.Write([]byte("folder=listings&timestamp=1700000000secret"))
	want := hex.EncodeToString(h.Sum(nil))

	require.Equal(t, want, s.GenerateSignature(params))

	// Порядок ключей на входе не влияет на подпись
	require.Equal(t, s.GenerateSignature(params), s.GenerateSignature(map[string]string{
		"folder":    "listings",
		"timestamp": "1700000000",
	}))
}
