package storage

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadSize is the largest accepted image upload.
const MaxUploadSize = 10 << 20 // 10 MB

// ErrInvalidImage is returned when an upload is not an accepted image type.
var ErrInvalidImage = errors.New("storage: not an accepted image type")

var allowedExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedMIMEs = []string{"image/jpeg", "image/png", "image/gif"}

// ValidateImage checks both the original filename's extension and the sniffed
// content type. The client-supplied Content-Type header is deliberately not
// trusted.
func ValidateImage(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExts[ext] {
		return ErrInvalidImage
	}

	detected := mimetype.Detect(data)
	for _, m := range allowedMIMEs {
		if detected.Is(m) {
			return nil
		}
	}
	return ErrInvalidImage
}

// UploadFilename derives the stored filename from the form field name, the
// upload timestamp, and the original file's extension, e.g.
// "image-1712345678901.png".
func UploadFilename(field, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return field + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ext
}
