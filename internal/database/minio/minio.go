package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"backoffice-service/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient wraps the MinIO client for claim document storage.
type MinioClient struct {
	client *minio.Client
	config config.MinioConfig
}

func NewMinioClient(cfg config.MinioConfig) (*MinioClient, error) {
	endpoint := strings.TrimPrefix(cfg.MinioURL, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	isSecure, err := strconv.ParseBool(cfg.MinioSecure)
	if err != nil {
		log.Printf("invalid value for MinIO secure flag: %v, defaulting to false", err)
		isSecure = false
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: isSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO server: %w", err)
	}

	mc := &MinioClient{
		client: minioClient,
		config: cfg,
	}

	if err := mc.ensureBucket(ctx, cfg.DocumentBucket); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket %s: %w", cfg.DocumentBucket, err)
	}

	log.Printf("MinIO client initialized, bucket %s ready", cfg.DocumentBucket)
	return mc, nil
}

func (mc *MinioClient) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := mc.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	err = mc.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
		Region: mc.config.MinioLocation,
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	log.Printf("bucket %s created", bucketName)
	return nil
}

// PutDocument stores a claim document and returns the object key.
func (mc *MinioClient) PutDocument(ctx context.Context, objectKey, contentType string, data []byte) error {
	_, err := mc.client.PutObject(ctx, mc.config.DocumentBucket, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload document %s: %w", objectKey, err)
	}
	return nil
}

// GetDocument fetches a stored claim document.
func (mc *MinioClient) GetDocument(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := mc.client.GetObject(ctx, mc.config.DocumentBucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", objectKey, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", objectKey, err)
	}
	return data, nil
}

// RemoveDocument deletes a stored claim document.
func (mc *MinioClient) RemoveDocument(ctx context.Context, objectKey string) error {
	err := mc.client.RemoveObject(ctx, mc.config.DocumentBucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove document %s: %w", objectKey, err)
	}
	return nil
}
