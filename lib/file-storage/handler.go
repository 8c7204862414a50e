package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	s3client "talentflow-backend/s3"
	dbmodels "talentflow-backend/models/db"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Provider stores uploaded files for file-upload answers and hands
// back the object key referenced from the response document.
type Provider interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (*dbmodels.FileRecord, error)
	Download(ctx context.Context, objectKey string) ([]byte, error)
}

func NewHandler(db *gorm.DB, client s3client.Provider, bucketName string) Provider {
	return &impl{
		db:         db,
		client:     client,
		bucketName: bucketName,
	}
}

type impl struct {
	db         *gorm.DB
	client     s3client.Provider
	bucketName string
}

func (i impl) Upload(ctx context.Context, name, contentType string, data []byte) (*dbmodels.FileRecord, error) {
	if len(data) == 0 {
		return nil, errors.New("file is empty")
	}
	objectKey := fmt.Sprintf("uploads/%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(name)))
	_, err := i.client.Minio().PutObject(ctx, i.bucketName, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store object")
	}

	rec := dbmodels.FileRecord{
		Name:        name,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	if err = i.db.Create(&rec).Error; err != nil {
		return nil, errors.Wrap(err, "failed to save file record")
	}
	return &rec, nil
}

func (i impl) Download(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := i.client.Minio().GetObject(ctx, i.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch object")
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(obj); err != nil {
		return nil, errors.Wrap(err, "failed to read object")
	}
	return buf.Bytes(), nil
}
