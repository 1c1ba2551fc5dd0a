// Package storage wraps the MinIO object store that holds uploaded
// print documents. The request row only keeps the object key.
package storage

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/linskybing/reservation-go/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

// Enabled reports whether an object store was configured. Document
// upload endpoints answer 503 when it was not.
func Enabled() bool {
	return Client != nil
}

func Init() {
	if config.MinioEndpoint == "" {
		log.Println("MinIO not configured, document upload disabled")
		return
	}
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket %s: %v", BucketName, err)
		}
	}

	Client = minioClient
	log.Println("Connected to MinIO, bucket:", BucketName)
}

func UploadDocument(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := Client.PutObject(ctx, BucketName, key, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func PresignedDocumentURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := Client.PresignedGetObject(ctx, BucketName, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
