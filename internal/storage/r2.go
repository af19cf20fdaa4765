package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// ObjectPutter is the slice of the S3 API the snapshotter needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type R2Client struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

func NewR2Client(ctx context.Context, rc R2Config) (*R2Client, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				rc.AccessKey,
				rc.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(rc.Endpoint)
		o.UsePathStyle = true
	})

	return NewR2ClientWith(client, rc.Bucket, rc.PublicBaseURL), nil
}

// NewR2ClientWith wraps an existing S3 client.
func NewR2ClientWith(client ObjectPutter, bucket, baseURL string) *R2Client {
	return &R2Client{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PutJSON stores body under key and returns its public URL, or the key
// itself when no public base URL is configured.
func (r *R2Client) PutJSON(ctx context.Context, key string, body []byte) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	if r.baseURL == "" {
		return key, nil
	}
	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}
