package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Provider interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	Minio() *minio.Client
}

type s3client struct {
	minioClient *minio.Client
}

func NewClient(endpoint, accessKeyID, secretAccessKey string, useSSL bool) (Provider, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &s3client{minioClient: minioClient}, nil
}

func (s s3client) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (s s3client) Minio() *minio.Client {
	return s.minioClient
}
