package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	DriverMinio = "minio"
	DriverLocal = "local"

	uploadTries = 3
)

var (
	ErrInvalidBucket = errors.New("invalid bucket name")
	ErrInvalidName   = errors.New("invalid object name")

	bucketPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
)

// FileStorage stores uploaded objects and reports their public URLs.
type FileStorage interface {
	Put(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, bucket, name string) error
	URL(bucket, name string) string
}

func validate(bucket, name string) error {
	if !bucketPattern.MatchString(bucket) {
		return ErrInvalidBucket
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return ErrInvalidName
	}
	return nil
}

func joinURL(base, bucket, name string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + name
}

// LocalStorage writes objects under rootDir/<bucket>/<name>. The server exposes rootDir as static files.
type LocalStorage struct {
	rootDir   string
	publicURL string
}

func NewLocalStorage(rootDir, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{rootDir: rootDir, publicURL: publicURL}, nil
}

func (s *LocalStorage) RootDir() string {
	return s.rootDir
}

func (s *LocalStorage) Put(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) error {
	if err := validate(bucket, name); err != nil {
		return err
	}
	dir := filepath.Join(s.rootDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Close()
}

func (s *LocalStorage) Delete(ctx context.Context, bucket, name string) error {
	if err := validate(bucket, name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.rootDir, bucket, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStorage) URL(bucket, name string) string {
	return joinURL(s.publicURL, bucket, name)
}

// MinioStorage keeps objects in an S3-compatible store. Buckets are created on first use.
type MinioStorage struct {
	client    *minio.Client
	publicURL string

	mu      sync.Mutex
	buckets map[string]bool
}

func NewMinioStorage(endpoint, accessKeyID, secretAccessKey string, useSSL bool, publicURL string) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, endpoint)
	}
	return &MinioStorage{client: client, publicURL: publicURL, buckets: make(map[string]bool)}, nil
}

func (s *MinioStorage) ensureBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucket] {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}
	s.buckets[bucket] = true
	return nil
}

func (s *MinioStorage) Put(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) error {
	if err := validate(bucket, name); err != nil {
		return err
	}
	if err := s.ensureBucket(ctx, bucket); err != nil {
		return err
	}

	// The reader can only be consumed once, so retries need a seekable body.
	seeker, canRetry := r.(io.Seeker)
	var err error
	for i := 0; i < uploadTries; i++ {
		_, err = s.client.PutObject(ctx, bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType})
		if err == nil || !canRetry {
			return err
		}
		if _, seekErr := seeker.Seek(0, io.SeekStart); seekErr != nil {
			return err
		}
	}
	return err
}

func (s *MinioStorage) Delete(ctx context.Context, bucket, name string) error {
	if err := validate(bucket, name); err != nil {
		return err
	}
	return s.client.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{})
}

func (s *MinioStorage) URL(bucket, name string) string {
	return joinURL(s.publicURL, bucket, name)
}
