package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Storage stores objects in an S3 bucket. Retrieval goes through presigned
// GET URLs so the bucket can stay private.
type S3Storage struct {
	bucket   string
	svc      *s3.S3
	uploader *s3manager.Uploader
}

// NewS3Storage creates an S3Storage for bucket in region, using the default
// AWS credential chain.
func NewS3Storage(region, bucket string) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("storage: aws session: %w", err)
	}
	return &S3Storage{
		bucket:   bucket,
		svc:      s3.New(sess),
		uploader: s3manager.NewUploader(sess),
	}, nil
}

func (s *S3Storage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: s3 upload: %w", err)
	}
	return out.Location, nil
}

func (s *S3Storage) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	req, _ := s.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("storage: s3 presign: %w", err)
	}
	return url, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("storage: s3 delete: %w", err)
	}
	return nil
}
