package files

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/logging"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type FileRepository interface {
	Create(ctx context.Context, file *model.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.File, error)
}

// Service hands out presigned URLs so uploads and downloads bypass
// the application entirely; only metadata lives in Postgres.
type Service struct {
	fileRepo FileRepository
	s3Client *s3.Client
	bucket   *string
}

func NewService(ctx context.Context, fileRepo FileRepository, client *s3.Client, bucketName string) (*Service, error) {
	s := &Service{fileRepo: fileRepo, s3Client: client, bucket: aws.String(bucketName)}
	err := s.createBucket(ctx, bucketName)
	return s, err
}

// Submission attachments and profile photos only.
var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
	".pdf": true, ".doc": true, ".docx": true, ".txt": true,
	".zip": true, ".ipynb": true, ".py": true, ".go": true,
}

type InitUploadResult struct {
	FileId    uuid.UUID `json:"file_id"`
	UploadURL string    `json:"upload_url"`
	Method    string    `json:"method"`
}

func (s *Service) InitUpload(ctx context.Context, ownerID uuid.UUID, filename string) (*InitUploadResult, error) {
	extension := strings.ToLower(path.Ext(filename))
	if extension == "" {
		return nil, fmt.Errorf("invalid file extension: %w", errdefs.ErrValidation)
	}
	if !allowedExtensions[extension] {
		return nil, fmt.Errorf("file extension %s not allowed: %w", extension, errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	file := &model.File{
		Id:         id,
		OwnerId:    ownerID,
		Filename:   filename,
		BucketKey:  id.String() + extension,
		UploadedAt: time.Now(),
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	uploadRequest, err := s.presignUpload(ctx, file.BucketKey)
	if err != nil {
		return nil, err
	}

	return &InitUploadResult{
		FileId:    file.Id,
		UploadURL: uploadRequest.URL,
		Method:    uploadRequest.Method,
	}, nil
}

// GetFileURL implements service.FileClient.
func (s *Service) GetFileURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}

	downloadRequest, err := s.presignDownload(ctx, file.BucketKey)
	if err != nil {
		return "", err
	}
	return downloadRequest.URL, nil
}

func (s *Service) GetFileMeta(ctx context.Context, fileID uuid.UUID) (*model.File, error) {
	return s.fileRepo.GetByID(ctx, fileID)
}

func (s *Service) createBucket(ctx context.Context, name string) error {
	_, err := s.s3Client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(name)})
	if err != nil {
		var opErr *awshttp.ResponseError
		if errors.As(err, &opErr) && opErr.HTTPStatusCode() == 409 {
			if logger, ok := logging.GetFromContext(ctx); ok {
				logger.Info(ctx, "bucket already exists", zap.String("bucket", name))
			}
			return nil
		}
	}
	return err
}

func (s *Service) presignUpload(ctx context.Context, key string) (*v4.PresignedHTTPRequest, error) {
	presigner := s3.NewPresignClient(s.s3Client)

	return presigner.PresignPutObject(ctx,
		&s3.PutObjectInput{
			Bucket: s.bucket,
			Key:    aws.String(key),
		},
		s3.WithPresignExpires(5*time.Minute),
	)
}

func (s *Service) presignDownload(ctx context.Context, key string) (*v4.PresignedHTTPRequest, error) {
	presigner := s3.NewPresignClient(s.s3Client)

	return presigner.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: s.bucket,
			Key:    aws.String(key),
		},
		s3.WithPresignExpires(5*time.Minute),
	)
}
