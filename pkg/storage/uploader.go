package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxResumeSize is the upload ceiling for resume PDFs (5 MB).
const MaxResumeSize = 5 << 20

// pdfMagic is the %PDF header every valid PDF starts with.
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

// ObjectDescriptor identifies an uploaded object.
type ObjectDescriptor struct {
	Key      string `json:"key"`
	Path     string `json:"path"`
	FullPath string `json:"full_path"`
}

// s3API is the subset of the S3 client the uploader needs. Narrowed for
// testability.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Uploader stores and removes resume objects in a single bucket.
type Uploader struct {
	client        s3API
	bucket        string
	publicBaseURL string
}

func NewUploader(client s3API, bucket, publicBaseURL string) *Uploader {
	return &Uploader{client: client, bucket: bucket, publicBaseURL: publicBaseURL}
}

// ValidatePDF checks size and the %PDF magic bytes before any network call.
func ValidatePDF(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("file is empty")
	}
	if len(data) > MaxResumeSize {
		return fmt.Errorf("file exceeds %d bytes", MaxResumeSize)
	}
	if len(data) < len(pdfMagic) || !bytes.Equal(data[:len(pdfMagic)], pdfMagic) {
		return fmt.Errorf("file is not a PDF")
	}
	return nil
}

// Upload writes the payload under the given key and returns its descriptor.
func (u *Uploader) Upload(ctx context.Context, key string, data []byte) (*ObjectDescriptor, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}
	return &ObjectDescriptor{
		Key:      key,
		Path:     u.bucket + "/" + key,
		FullPath: u.publicBaseURL + "/" + key,
	}, nil
}

// Delete removes an uploaded object. Used as best-effort compensation when
// the follow-up database write fails.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	return err
}
