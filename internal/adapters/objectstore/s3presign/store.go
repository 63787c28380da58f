package s3presign

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-adoption-market/internal/ports/objectstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const uploadTTL = 5 * time.Minute

// Store presigns S3 PUTs for proof document uploads. Works against AWS or
// any S3-compatible endpoint (custom endpoint forces path-style addressing).
type Store struct {
	presign  *s3.PresignClient
	bucket   string
	region   string
	endpoint string
}

type Options struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

func New(ctx context.Context, opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		presign:  s3.NewPresignClient(client),
		bucket:   opts.Bucket,
		region:   opts.Region,
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
	}, nil
}

func (s *Store) PresignPut(ctx context.Context, key, contentType string) (objectstore.PresignedUpload, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = uploadTTL
	})
	if err != nil {
		return objectstore.PresignedUpload{}, fmt.Errorf("failed to presign upload: %w", err)
	}

	return objectstore.PresignedUpload{
		URL:       req.URL,
		ObjectKey: key,
		ExpiresIn: int(uploadTTL.Seconds()),
	}, nil
}

func (s *Store) PublicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
