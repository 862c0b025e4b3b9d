package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"managedb/internal/config"
)

type Storage interface {
	UploadExport(ctx context.Context, collection string, filePath string) (string, error)
	DeleteExport(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// UploadExport кладёт файл выгрузки в бакет экспортов и возвращает имя объекта.
func (m *MinIOClient) UploadExport(ctx context.Context, collection string, filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("файл выгрузки не найден: %w", err)
	}

	contentType := "application/octet-stream"
	switch filepath.Ext(filePath) {
	case ".csv":
		contentType = "text/csv"
	case ".json":
		contentType = "application/json"
	}

	now := time.Now()
	objectName := fmt.Sprintf("%s/%d/%02d/%s",
		collection,
		now.Year(),
		now.Month(),
		filepath.Base(filePath))

	_, err = m.client.FPutObject(ctx, m.config.MinIO.BucketName, objectName, filePath,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"collection":  collection,
				"exported-at": now.Format(time.RFC3339),
				"size":        fmt.Sprintf("%d", info.Size()),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки выгрузки в MinIO: %w", err)
	}

	return objectName, nil
}

func (m *MinIOClient) DeleteExport(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления выгрузки из MinIO: %w", err)
	}
	return nil
}
