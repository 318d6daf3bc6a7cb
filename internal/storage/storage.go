// Package storage выдаёт подписанные ссылки на файлы документов в S3.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// URLExpiry - срок действия подписанной ссылки
const URLExpiry = 15 * time.Minute

// FileStorage определяет интерфейс хранилища файлов
type FileStorage interface {
	PresignUpload(ctx context.Context, key string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// Config - параметры S3-совместимого хранилища.
// Endpoint задаётся для MinIO/LocalStack, тогда используется path-style адресация.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Storage подписывает ссылки на объекты одного бакета
type S3Storage struct {
	presigner *s3.PresignClient
	bucket    string
}

// NewS3Storage создаёт хранилище поверх S3
func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
	}, nil
}

func (s *S3Storage) PresignUpload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(URLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign put object: %w", err)
	}
	return req.URL, nil
}

func (s *S3Storage) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(URLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign get object: %w", err)
	}
	return req.URL, nil
}

// tenantPrefix - каталог арендатора в бакете
func tenantPrefix(tenantID int64) string {
	return fmt.Sprintf("tenants/%d/documents/", tenantID)
}

// NewObjectKey строит уникальный ключ объекта внутри каталога арендатора
func NewObjectKey(tenantID int64, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "file"
	}
	return tenantPrefix(tenantID) + uuid.NewString() + "/" + name
}

// BelongsToTenant проверяет, что ключ лежит в каталоге арендатора
func BelongsToTenant(key string, tenantID int64) bool {
	rest, ok := strings.CutPrefix(key, tenantPrefix(tenantID))
	return ok && rest != "" && !strings.Contains(rest, "..")
}
