package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/pkg/storage"

	"github.com/gabriel-vasile/mimetype"
)

const MaxUploadSize = 10 << 20

// Only raster images and PDF are accepted. SVG is excluded because it can carry script.
var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/avif":      true,
	"application/pdf": true,
}

type IUploadService interface {
	Upload(ctx context.Context, bucket string, file *multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	storage       storage.FileStorage
	defaultBucket string
	logger        logger.ILogger
}

func NewUploadService(fileStorage storage.FileStorage, defaultBucket string, log logger.ILogger) IUploadService {
	return &uploadService{
		storage:       fileStorage,
		defaultBucket: defaultBucket,
		logger:        log,
	}
}

func randomSuffix() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (s *uploadService) Upload(ctx context.Context, bucket string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, apperror.Validation("file is required", map[string]string{"file": "required"})
	}
	if file.Size > MaxUploadSize {
		return nil, apperror.New(http.StatusRequestEntityTooLarge, "file exceeds the 10 MB limit")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		bucket = s.defaultBucket
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}
	contentType := strings.Split(mt.String(), ";")[0]
	if !allowedUploadTypes[contentType] {
		return nil, apperror.Validation("unsupported file type", map[string]string{
			"file": fmt.Sprintf("%s is not an accepted image or PDF", contentType),
		})
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	suffix, err := randomSuffix()
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, mt.Extension())

	if err := s.storage.Put(ctx, bucket, name, f, file.Size, contentType); err != nil {
		if errors.Is(err, storage.ErrInvalidBucket) {
			return nil, apperror.Validation("invalid bucket", map[string]string{"bucket": err.Error()})
		}
		s.logger.Error("UPLOAD", "Failed to store upload", map[string]interface{}{
			"bucket": bucket,
			"name":   name,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("UPLOAD", "File uploaded", map[string]interface{}{
		"bucket": bucket,
		"name":   name,
		"size":   file.Size,
		"type":   contentType,
	})
	return &dto.UploadResponse{
		URL:  s.storage.URL(bucket, name),
		Path: bucket + "/" + name,
		Size: file.Size,
		Type: contentType,
	}, nil
}
