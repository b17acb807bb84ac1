// Package blob stores listing media in the project's storage bucket and
// hands back the public URL, which is the only value that ever reaches the
// listing record.
package blob

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// MediaStore uploads listing media and returns a retrievable URL.
type MediaStore interface {
	// UploadImage stores a JPEG and returns its public URL.
	UploadImage(ctx context.Context, r io.Reader) (string, error)
	// UploadVideo stores a QuickTime video and returns its public URL.
	UploadVideo(ctx context.Context, r io.Reader) (string, error)
}

// bucketMediaStore implements MediaStore on a Cloud Storage bucket. Object
// names are random with fixed extensions, matching what the mobile client
// has always uploaded (images/<uuid>.jpg, videos/<uuid>.mov).
type bucketMediaStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewBucketMediaStore creates a MediaStore over the given bucket.
func NewBucketMediaStore(bucket *storage.BucketHandle, bucketName string) MediaStore {
	return &bucketMediaStore{bucket: bucket, bucketName: bucketName}
}

func (s *bucketMediaStore) UploadImage(ctx context.Context, r io.Reader) (string, error) {
	name := fmt.Sprintf("images/%s.jpg", uuid.NewString())
	return s.upload(ctx, name, "image/jpeg", r)
}

func (s *bucketMediaStore) UploadVideo(ctx context.Context, r io.Reader) (string, error) {
	name := fmt.Sprintf("videos/%s.mov", uuid.NewString())
	return s.upload(ctx, name, "video/quicktime", r)
}

func (s *bucketMediaStore) upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %q: %w", name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, name), nil
}
