package storage

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

const imageKeyPrefix = "images/feed/"

// ImageStore uploads image payloads and returns their public URLs. Handlers
// depend on the interface so tests can substitute a stub.
type ImageStore interface {
	UploadBase64(payload string) (string, error)
}

// S3ImageStore stores images in a public S3 bucket
type S3ImageStore struct {
	bucket   string
	region   string
	uploader *s3manager.Uploader
}

func NewS3ImageStore(region, bucket string) (*S3ImageStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3ImageStore{
		bucket:   bucket,
		region:   region,
		uploader: s3manager.NewUploader(sess),
	}, nil
}

// UploadBase64 decodes a base64 image payload (with or without a data-URL
// prefix), uploads it under a fresh key and returns the public URL.
func (s *S3ImageStore) UploadBase64(payload string) (string, error) {
	if idx := strings.Index(payload, "base64,"); idx >= 0 {
		payload = payload[idx+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid image payload: %w", err)
	}

	key := imageKeyPrefix + uuid.NewString() + ".jpg"
	_, err = s.uploader.Upload(&s3manager.UploadInput{
		ACL:          aws.String("public-read"),
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/jpeg"),
		CacheControl: aws.String("max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
