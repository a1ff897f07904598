package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the part of *s3.Client the avatar storage uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3AvatarStorage uploads avatars to an S3 (or S3-compatible) bucket.
type s3AvatarStorage struct {
	client    s3API
	bucket    string
	urlPrefix string
	logger    *logger.Logger
}

// NewS3AvatarStorage builds an [AvatarStorage] for cfg.S3. Static
// credentials are used when an access key is configured, otherwise the
// default AWS credential chain applies. A custom endpoint switches to
// path-style addressing, which MinIO and similar services expect.
func NewS3AvatarStorage(ctx context.Context, cfg config.Avatars, log *logger.Logger) (AvatarStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3AvatarStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	urlPrefix := cfg.URLPrefix
	if urlPrefix == "" {
		urlPrefix = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3.Bucket, cfg.S3.Region)
	}

	log.Debug().Str("bucket", cfg.S3.Bucket).Msg("creating s3 avatar storage")
	return newS3AvatarStorage(client, cfg.S3.Bucket, urlPrefix, log), nil
}

func newS3AvatarStorage(client s3API, bucket, urlPrefix string, log *logger.Logger) *s3AvatarStorage {
	return &s3AvatarStorage{
		client:    client,
		bucket:    bucket,
		urlPrefix: urlPrefix,
		logger:    log,
	}
}

// Save uploads data under key name.
func (s *s3AvatarStorage) Save(ctx context.Context, name string, data []byte, contentType string) error {
	if err := validateAvatarName(name); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3AvatarStorage.Save").Str("key", name).Msg("error uploading avatar")
		return fmt.Errorf("%w: %w", ErrAvatarNotSaved, err)
	}

	return nil
}

func (s *s3AvatarStorage) URL(name string) string {
	return joinAvatarURL(s.urlPrefix, name)
}
