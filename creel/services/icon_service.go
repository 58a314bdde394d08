package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	lru "github.com/hashicorp/golang-lru"
)

const iconCacheSize = 512

// IconService serves and manages badge icon images stored in a
// Spaces/S3 bucket. Existence checks are cached so progress pages listing
// the whole catalog do not hammer the bucket with HEAD requests.
type IconService struct {
	client   *s3.Client
	bucket   string
	region   string
	iconRoot string
	exists   *lru.Cache
}

func NewIconService(key, secret, region, bucket, iconRoot string) (*IconService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load Spaces config: %w", err)
	}

	cache, err := lru.New(iconCacheSize)
	if err != nil {
		return nil, err
	}

	return &IconService{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
		iconRoot: strings.Trim(iconRoot, "/"),
		exists:   cache,
	}, nil
}

// IconURL builds the public URL for a badge icon key as stored on the
// definition (e.g. "badges/first_catch.png").
func (s *IconService) IconURL(iconKey string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s",
		s.bucket, s.region, s.objectKey(iconKey))
}

// IconExists reports whether the icon object is present in the bucket.
// Positive and negative results are both cached; UploadIcon and DeleteIcon
// invalidate.
func (s *IconService) IconExists(ctx context.Context, iconKey string) (bool, error) {
	key := s.objectKey(iconKey)
	if v, ok := s.exists.Get(key); ok {
		return v.(bool), nil
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			s.exists.Add(key, false)
			return false, nil
		}
		return false, fmt.Errorf("failed to check icon %s: %w", key, err)
	}

	s.exists.Add(key, true)
	return true, nil
}

func (s *IconService) UploadIcon(ctx context.Context, iconKey string, data []byte, contentType string) error {
	key := s.objectKey(iconKey)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return fmt.Errorf("failed to upload icon %s: %w", key, err)
	}

	s.exists.Add(key, true)
	slog.Info("Badge icon uploaded",
		slog.String("type", "badges"),
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return nil
}

func (s *IconService) DeleteIcon(ctx context.Context, iconKey string) error {
	key := s.objectKey(iconKey)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete icon %s: %w", key, err)
	}
	s.exists.Remove(key)
	return nil
}

func (s *IconService) objectKey(iconKey string) string {
	iconKey = strings.TrimPrefix(iconKey, "/")
	if s.iconRoot == "" {
		return iconKey
	}
	if strings.HasPrefix(iconKey, s.iconRoot+"/") {
		return iconKey
	}
	return s.iconRoot + "/" + iconKey
}
