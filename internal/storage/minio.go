package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"streamhub-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// Gateway is the object-storage contract the catalog services depend on.
// Upload streams a multipart file into the bucket and returns the stable
// public URL; Delete removes a previously uploaded object. Callers treat
// Delete failures as non-critical cleanup, never as a correctness gate.
type Gateway interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	Delete(ctx context.Context, urlOrKey string) error
}

type MinIOGateway struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOGateway(cfg *config.StorageConfig, logger *logrus.Logger) (*MinIOGateway, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("Object storage client initialized successfully")

	gateway := &MinIOGateway{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := gateway.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return gateway, nil
}

func (g *MinIOGateway) ensureBucket(ctx context.Context) error {
	exists, err := g.client.BucketExists(ctx, g.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := g.client.MakeBucket(ctx, g.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		g.logger.WithField("bucket", g.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, g.bucket)

	if err := g.client.SetBucketPolicy(ctx, g.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	g.logger.WithField("bucket", g.bucket).Info("Bucket policy set to public read")
	return nil
}

// Upload streams the file into the bucket under folder/ and returns the
// unsigned public URL derived from the configured public base.
func (g *MinIOGateway) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	objectPath := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = g.client.PutObject(ctx, g.bucket, objectPath, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		g.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to upload file")
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"filename":   file.Filename,
		"objectPath": objectPath,
		"size":       file.Size,
	}).Info("File uploaded successfully")

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(g.publicURL, "/"), objectPath), nil
}

// Delete removes an object by key or by the public URL previously returned
// from Upload.
func (g *MinIOGateway) Delete(ctx context.Context, urlOrKey string) error {
	objectPath := g.objectKey(urlOrKey)
	if objectPath == "" {
		return fmt.Errorf("could not derive object key from %q", urlOrKey)
	}

	err := g.client.RemoveObject(ctx, g.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		g.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	g.logger.WithField("objectPath", objectPath).Info("File deleted successfully from storage")
	return nil
}

// objectKey strips the public base and bucket prefix off a URL, leaving the
// folder/name key. Plain keys pass through unchanged.
func (g *MinIOGateway) objectKey(urlOrKey string) string {
	key := urlOrKey
	if strings.Contains(key, "://") {
		base := strings.TrimSuffix(g.publicURL, "/") + "/"
		if strings.HasPrefix(key, base) {
			key = strings.TrimPrefix(key, base)
		} else if idx := strings.Index(key, "://"); idx != -1 {
			rest := key[idx+3:]
			if slash := strings.Index(rest, "/"); slash != -1 {
				key = rest[slash+1:]
			} else {
				return ""
			}
		}
	}
	return strings.TrimPrefix(key, g.bucket+"/")
}
