// Package upload stores recipe images under generated keys and extracts the
// optional image file from multipart form submissions.
package upload

import (
	"context"        // Request-scoped cancellation
	"errors"         // Error classification
	"fmt"            // Error wrapping
	"io"             // Streaming
	"mime/multipart" // Uploaded file headers
	"net/http"       // Missing-file sentinel
	"path/filepath"  // Extension handling
	"strings"        // Key normalisation

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Generated storage keys
)

// FormField is the multipart field carrying the image
const FormField = "image"

// ErrNotFound is returned by Open for unknown keys
var ErrNotFound = errors.New("image not found")

// ImageStore persists uploaded images and reads them back by key
type ImageStore interface {
	// Save stores the file and returns its generated key
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	// Open returns the image content, its size and content type
	Open(ctx context.Context, key string) (io.ReadCloser, int64, string, error)
}

// NewKey generates a collision-free storage key that keeps the lowercased
// extension of the client filename so browsers can sniff the type.
func NewKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		ext = "" // Not a real extension
	}
	return uuid.NewString() + ext
}

// ValidKey reports whether key has the shape produced by NewKey
func ValidKey(key string) bool {
	base := strings.TrimSuffix(key, filepath.Ext(key))
	if _, err := uuid.Parse(base); err != nil {
		return false
	}
	return filepath.Base(key) == key
}

// FromRequest saves the image field of a multipart request, if any.
// It returns the new key and true when a file was uploaded, or "" and false
// when the form has no image.
func FromRequest(c *gin.Context, store ImageStore) (string, bool, error) {
	file, err := c.FormFile(FormField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", false, nil // No upload
	}
	if err != nil {
		return "", false, fmt.Errorf("read image field: %w", err)
	}
	if file.Size == 0 && file.Filename == "" {
		return "", false, nil // Empty file input submitted by the browser
	}
	key, err := store.Save(c.Request.Context(), file)
	if err != nil {
		return "", false, err
	}
	return key, true, nil
}
