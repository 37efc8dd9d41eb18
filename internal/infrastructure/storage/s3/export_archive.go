package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type URLMode string

const (
	URLModePresigned URLMode = "presigned"
	URLModePublic    URLMode = "public"
)

type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	KeyPrefix       string
	UsePathStyle    bool
	URLMode         URLMode
	PresignedTTL    time.Duration
}

// ExportArchive stores generated export files in S3-compatible object
// storage. Implements port.ExportArchive.
type ExportArchive struct {
	client       *s3.Client
	presign      *s3.PresignClient
	bucket       string
	endpoint     string
	keyPrefix    string
	usePathStyle bool
	urlMode      URLMode
	presignedTTL time.Duration
}

func NewExportArchive(ctx context.Context, cfg Config) (*ExportArchive, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if strings.TrimSpace(cfg.AccessKeyID) == "" || strings.TrimSpace(cfg.SecretAccessKey) == "" {
		return nil, fmt.Errorf("s3 access key id and secret are required")
	}
	if strings.TrimSpace(cfg.Region) == "" {
		cfg.Region = "ru-central1"
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = "https://storage.yandexcloud.net"
	}
	if cfg.URLMode == "" {
		cfg.URLMode = URLModePresigned
	}
	if cfg.URLMode != URLModePresigned && cfg.URLMode != URLModePublic {
		return nil, fmt.Errorf("unsupported s3 url mode: %s", cfg.URLMode)
	}
	if cfg.PresignedTTL <= 0 {
		cfg.PresignedTTL = 24 * time.Hour
	}
	if strings.TrimSpace(cfg.KeyPrefix) == "" {
		cfg.KeyPrefix = "exports"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
		options.UsePathStyle = cfg.UsePathStyle
	})

	return &ExportArchive{
		client:       client,
		presign:      s3.NewPresignClient(client),
		bucket:       strings.TrimSpace(cfg.Bucket),
		endpoint:     strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		keyPrefix:    strings.Trim(cfg.KeyPrefix, "/"),
		usePathStyle: cfg.UsePathStyle,
		urlMode:      cfg.URLMode,
		presignedTTL: cfg.PresignedTTL,
	}, nil
}

// Put uploads an export file and returns its storage URL. Files are keyed
// by date so repeated exports on the same day overwrite each other.
func (a *ExportArchive) Put(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("filename is required")
	}

	key := fmt.Sprintf("%s/%s/%s", a.keyPrefix, time.Now().UTC().Format("2006/01/02"), filename)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object failed: %w", err)
	}

	if a.urlMode == URLModePublic {
		return a.publicURL(key), nil
	}

	request, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(a.presignedTTL))
	if err != nil {
		return "", fmt.Errorf("presign failed: %w", err)
	}

	return request.URL, nil
}

func (a *ExportArchive) publicURL(key string) string {
	escapedKey := url.PathEscape(key)
	escapedKey = strings.ReplaceAll(escapedKey, "%2F", "/")
	if a.usePathStyle {
		return fmt.Sprintf("%s/%s/%s", a.endpoint, a.bucket, escapedKey)
	}
	endpoint := strings.TrimPrefix(a.endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return fmt.Sprintf("https://%s.%s/%s", a.bucket, endpoint, escapedKey)
}
