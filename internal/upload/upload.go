// Package upload stores multipart image files in object storage.
package upload

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	apperrors "travely/internal/errors"
	"travely/internal/storage"
)

// contentTypes maps allowed extensions to their MIME types.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ImageUploader validates and stores uploaded image files.
type ImageUploader struct {
	store   storage.Storage
	allowed map[string]struct{}
}

// NewImageUploader creates an ImageUploader restricted to the given extensions
// (without leading dots, e.g. "jpg").
func NewImageUploader(store storage.Storage, allowedExts []string) *ImageUploader {
	allowed := make(map[string]struct{}, len(allowedExts))
	for _, ext := range allowedExts {
		allowed["."+strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &ImageUploader{store: store, allowed: allowed}
}

// Save stores the file under a generated unique key and returns that key.
// A nil header means no file was provided and yields an empty key with no
// error, so an optional image slot never faults the request.
func (u *ImageUploader) Save(ctx context.Context, prefix string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := u.allowed[ext]; !ok {
		return "", apperrors.ErrUnsupportedImageType
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	defer file.Close()

	key := generateKey(prefix, ext)

	if err := u.store.PutObject(ctx, key, file, contentTypes[ext]); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	return key, nil
}

// presignExpiry bounds how long a resolved image URL stays valid.
const presignExpiry = time.Hour

// URL resolves a stored object key to a time-limited download URL. An empty
// key yields an empty URL.
func (u *ImageUploader) URL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	return u.store.GetPresignedURL(ctx, key, presignExpiry)
}

// Remove deletes a previously stored object. Removing an already absent key
// is not an error.
func (u *ImageUploader) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return u.store.DeleteObject(ctx, key)
}

// generateKey builds a collision-resistant object key preserving the original
// extension.
func generateKey(prefix, ext string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixNano(), hex.EncodeToString(suffix), ext)
}
