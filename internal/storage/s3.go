package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"hrms-backend/internal/config"
	"hrms-backend/internal/timeutil"
)

// PhotoStore wraps the S3 bucket holding reference photos and uploaded
// documents. Reference photos live under the configured prefix.
type PhotoStore struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

func NewPhotoStore(ctx context.Context, cfg *config.Config) (*PhotoStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKey != "" && cfg.AWS.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKey, cfg.AWS.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("[Storage] S3 photo store ready (bucket=%s prefix=%s)", cfg.AWS.Bucket, cfg.AWS.PhotoPrefix)
	return &PhotoStore{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.AWS.Bucket,
		prefix: cfg.AWS.PhotoPrefix,
		region: cfg.AWS.Region,
	}, nil
}

// ListPhotoKeys returns the keys of all reference photos under the
// prefix. Only .jpg and .png objects count; everything else under the
// prefix is skipped.
func (p *PhotoStore) ListPhotoKeys(ctx context.Context) ([]string, error) {
	keys := []string{}

	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list reference photos: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			key := *obj.Key
			lower := strings.ToLower(key)
			if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".png") {
				keys = append(keys, key)
			}
		}
	}

	return keys, nil
}

// Upload stores a file under a timestamped key and returns the key and
// a public object URL.
func (p *PhotoStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, string, error) {
	key := fmt.Sprintf("%d_%s", timeutil.Now().UnixMilli(), filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, key)
	return key, url, nil
}

// Delete removes an uploaded object. Missing keys are not an error.
func (p *PhotoStore) Delete(ctx context.Context, key string) error {
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Bucket exposes the bucket name for callers that need to reference
// stored objects in other AWS calls.
func (p *PhotoStore) Bucket() string {
	return p.bucket
}
