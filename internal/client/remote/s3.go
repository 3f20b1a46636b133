package remote

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Config carries the blob-storage settings (an S3-compatible endpoint,
// e.g. MinIO in development).
type S3Config struct {
	Region       string
	BaseEndpoint string
	Bucket       string
	AccessKey    string
	SecretKey    string
}

// S3BlobStore implements BlobStore against an S3-compatible object store.
// Uploaded objects are expected to be publicly readable; Upload returns
// the object URL under the configured endpoint.
type S3BlobStore struct {
	cfg    S3Config
	client *s3.Client
}

func NewS3BlobStore(ctx context.Context, c S3Config) (*S3BlobStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKey,
			c.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3BlobStore{cfg: c, client: client}, nil
}

// RandomImageKey returns a fresh storage key under the images/ prefix.
func RandomImageKey() string {
	return fmt.Sprintf("images/%v", uuid.New())
}

func (b *S3BlobStore) Upload(ctx context.Context, data []byte, path string) (string, error) {

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.cfg.Bucket),
		Key:    aws.String(path),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}

	return b.objectURL(path), nil
}

func (b *S3BlobStore) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(b.cfg.BaseEndpoint, "/"), b.cfg.Bucket, key)
}
