package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

type Error string

const (
	ErrNoCredentials      = Error("no AWS credentials found")
	ErrExpiredCredentials = Error("AWS credentials have expired")
	ErrNoSuchObject       = Error("no such S3 object")
	ErrInvalidURL         = Error("invalid S3 URL")
)

func (e Error) Error() string {
	return string(e)
}

// S3Scheme prefixes S3 document locations.
const S3Scheme = "s3"

// ObjectGetter reads S3 objects.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type ClientConfig struct {
	Profile string
	Region  string
	Timeout time.Duration
}

// APIClient lazily builds the S3 client used to fetch documents.
type APIClient struct {
	config *ClientConfig
	s3     ObjectGetter
	mx     sync.Mutex
}

// NewAPIClient creates a new APIClient. Credentials are only resolved on
// first use.
func NewAPIClient(cfg *ClientConfig) (*APIClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	return &APIClient{config: cfg}, nil
}

// NewAPIClientWith returns an APIClient backed by the given getter.
func NewAPIClientWith(getter ObjectGetter) *APIClient {
	return &APIClient{
		config: &ClientConfig{},
		s3:     getter,
	}
}

// S3 returns the S3 client, creating it on first call.
func (c *APIClient) S3(ctx context.Context) (ObjectGetter, error) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.s3 != nil {
		return c.s3, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if c.config.Region != "" {
		opts = append(opts, config.WithRegion(c.config.Region))
	}
	if c.config.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(c.config.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, WrapAWSError(err, "load AWS config")
	}
	c.s3 = s3.NewFromConfig(cfg)

	return c.s3, nil
}

// GetObject reads an object fully.
func (c *APIClient) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	client, err := c.S3(ctx)
	if err != nil {
		return nil, err
	}

	output, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, WrapAWSError(err, "get object")
	}
	defer output.Body.Close()

	bb, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object s3://%s/%s: %w", bucket, key, err)
	}

	return bb, nil
}

// IsS3URL returns true for s3:// locations.
func IsS3URL(location string) bool {
	return strings.HasPrefix(location, S3Scheme+"://")
}

// ParseS3URL splits s3://bucket/key into bucket and key.
func ParseS3URL(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, location, err)
	}
	if u.Scheme != S3Scheme || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURL, location)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("%w: %q has no key", ErrInvalidURL, location)
	}

	return u.Host, key, nil
}

// WrapAWSError wraps AWS SDK errors with additional context.
func WrapAWSError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AccessDeniedException":
			return fmt.Errorf("access denied for %s: %w", operation, err)
		case "ExpiredToken", "ExpiredTokenException":
			return fmt.Errorf("%w: %s", ErrExpiredCredentials, operation)
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %s", ErrNoSuchObject, operation)
		case "InvalidClientTokenId":
			return fmt.Errorf("%w: %s", ErrNoCredentials, operation)
		default:
			return fmt.Errorf("%s failed: %s (%s)", operation, apiErr.ErrorMessage(), apiErr.ErrorCode())
		}
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}
