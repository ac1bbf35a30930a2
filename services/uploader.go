package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Uploader is the blob-store surface the content handlers depend on.
// Upload writes a payload under a fresh unique key and returns its public
// URL. Remove is best-effort cleanup: failures are logged, never returned,
// so a stale object can never block an entity mutation.
type Uploader interface {
	Upload(ctx context.Context, pathPrefix, filename, contentType string, body io.Reader) (string, error)
	Remove(ctx context.Context, publicURL string)
}

// s3Client is the slice of the S3 API the uploader uses.
type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Uploader stores assets as public-read objects in one S3 bucket.
type S3Uploader struct {
	client s3Client
	bucket string
	region string
	logger zerolog.Logger
	now    func() time.Time
}

// NewS3Uploader builds an uploader from S3_BUCKET/S3_REGION config and the
// ambient AWS credential chain.
func NewS3Uploader(ctx context.Context, c map[string]string) (*S3Uploader, error) {
	bucket := config.GetString(c, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}
	region := config.GetString(c, "S3_REGION", "us-east-1")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: region,
		logger: log.With().Str("service", "uploader").Logger(),
		now:    time.Now,
	}, nil
}

// Upload writes body to a new object and returns its public URL. Every
// call mints a new key, so replacing an asset is upload-new-then-remove-old
// rather than an in-place overwrite.
func (u *S3Uploader) Upload(ctx context.Context, pathPrefix, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%d-%s",
		strings.Trim(pathPrefix, "/"),
		u.now().UnixMilli(),
		strings.ReplaceAll(filename, "/", "-"),
	)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", errs.NewUploadError(fmt.Sprintf("upload %s", key), err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

// Remove deletes the object behind a public URL. URLs that don't belong to
// this bucket and delete failures are logged and dropped.
func (u *S3Uploader) Remove(ctx context.Context, publicURL string) {
	key, ok := u.keyFromURL(publicURL)
	if !ok {
		u.logger.Warn().Str("url", publicURL).Msg("skipping delete of unrecognized asset URL")
		return
	}

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &u.bucket,
		Key:    &key,
	})
	if err != nil {
		u.logger.Error().Err(err).Str("key", key).Msg("failed to delete asset")
	}
}

func (u *S3Uploader) keyFromURL(publicURL string) (string, bool) {
	parsed, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}
	wantHost := fmt.Sprintf("%s.s3.%s.amazonaws.com", u.bucket, u.region)
	if parsed.Host != wantHost {
		return "", false
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	return key, key != ""
}
