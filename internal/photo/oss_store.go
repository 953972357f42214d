package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type OSSConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	Prefix     string // optional: "absensi"
	PublicBase string // optional CDN base
}

// objectBucket is the subset of *oss.Bucket the store needs.
type objectBucket interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
	DeleteObject(objectKey string, options ...oss.Option) error
}

type OSSStore struct {
	bucket   objectBucket
	ensureFn func() error
	cfg      OSSConfig
	once     ensureOnce
}

func NewOSSStore(cfg OSSConfig) (*OSSStore, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	ensure := func() error {
		exists, err := client.IsBucketExist(cfg.Bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
		}
		if exists {
			return nil
		}
		return client.CreateBucket(cfg.Bucket)
	}

	return newOSSStore(bkt, ensure, cfg), nil
}

func newOSSStore(bucket objectBucket, ensure func() error, cfg OSSConfig) *OSSStore {
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	return &OSSStore{bucket: bucket, ensureFn: ensure, cfg: cfg}
}

func (s *OSSStore) Ensure(_ context.Context) error {
	return s.once.Do(s.ensureFn)
}

func (s *OSSStore) Save(ctx context.Context, name string, data []byte, contentType string) error {
	return s.bucket.PutObject(s.key(name), bytes.NewReader(data),
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
}

func (s *OSSStore) Delete(ctx context.Context, name string) error {
	return s.bucket.DeleteObject(s.key(name), oss.WithContext(ctx))
}

func (s *OSSStore) PublicURL(_ string, name string) string {
	key := s.key(name)
	if base := strings.TrimSpace(s.cfg.PublicBase); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := strings.TrimPrefix(s.cfg.Endpoint, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.cfg.Bucket, end, key)
}

func (s *OSSStore) key(name string) string {
	if s.cfg.Prefix == "" {
		return name
	}
	return s.cfg.Prefix + "/" + name
}
