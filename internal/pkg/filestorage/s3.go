package filestorage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"github.com/yigit/student360/internal/pkg/apperrors"
)

// S3Config holds the connection settings of an S3-compatible endpoint
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// MinioStore is an ObjectStore backed by minio-go
type MinioStore struct {
	client *minio.Client
}

// NewMinioStore builds a client for cfg. Empty credentials fall back to the
// AWS environment variables.
func NewMinioStore(cfg S3Config) (*MinioStore, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, apperrors.NewInvalidArgumentError("s3 endpoint is required")
	}

	creds := credentials.NewEnvAWS()
	if access, secret := strings.TrimSpace(cfg.AccessKey), strings.TrimSpace(cfg.SecretKey); access != "" && secret != "" {
		creds = credentials.NewStaticV4(access, secret, "")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &MinioStore{client: client}, nil
}

// EnsureBucket creates the bucket unless it exists and is accessible
func (s *MinioStore) EnsureBucket(ctx context.Context, bucket, region string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return false, nil
	}
	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return false, fmt.Errorf("create bucket %s in %s: %w", bucket, region, err)
	}
	return true, nil
}

// PutFile uploads one local file
func (s *MinioStore) PutFile(ctx context.Context, bucket, key, filePath string) error {
	_, err := s.client.FPutObject(ctx, bucket, key, filePath, minio.PutObjectOptions{
		ContentType: contentType(key),
	})
	return err
}

func contentType(key string) string {
	switch path.Ext(key) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// Uploader copies a local output tree into a bucket
type Uploader struct {
	store    ObjectStore
	expected []string
	logger   zerolog.Logger
}

// NewUploader creates an uploader that warns when any of the expected
// top-level folders is missing from the tree.
func NewUploader(store ObjectStore, expected []string, logger zerolog.Logger) *Uploader {
	return &Uploader{store: store, expected: expected, logger: logger}
}

// Upload ensures the bucket and uploads the contents of dataDir (not the
// directory itself). Keys are slash-separated paths relative to dataDir and
// are uploaded in sorted order. A missing dataDir fails with ErrIO before the
// bucket is touched.
func (u *Uploader) Upload(ctx context.Context, dataDir, bucket, region string) (*UploadResult, error) {
	root, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, apperrors.NewIOError("failed to resolve data directory "+dataDir, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, apperrors.NewIOError("data directory not found: "+root, err)
	}
	if !info.IsDir() {
		return nil, apperrors.NewIOError("data directory not found: "+root, fs.ErrInvalid)
	}

	res := &UploadResult{Bucket: bucket, Region: region}
	for _, d := range u.expected {
		if st, err := os.Stat(filepath.Join(root, d)); err != nil || !st.IsDir() {
			res.Missing = append(res.Missing, d)
		}
	}
	if len(res.Missing) > 0 {
		u.logger.Warn().Str("dataDir", root).Strs("missing", res.Missing).Msg("Expected subfolders missing")
	}

	keys, err := collectKeys(root)
	if err != nil {
		return nil, err
	}

	created, err := u.store.EnsureBucket(ctx, bucket, region)
	if err != nil {
		return nil, err
	}
	res.BucketCreated = created
	if created {
		u.logger.Info().Str("bucket", bucket).Str("region", region).Msg("Bucket created")
	} else {
		u.logger.Info().Str("bucket", bucket).Msg("Bucket exists and is accessible, skipping creation")
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := u.store.PutFile(ctx, bucket, key, filepath.Join(root, filepath.FromSlash(key))); err != nil {
			return nil, fmt.Errorf("upload %s: %w", key, err)
		}
		u.logger.Debug().Str("key", key).Msg("Object uploaded")
		res.Keys = append(res.Keys, key)
	}

	u.logger.Info().Str("bucket", bucket).Int("objects", len(res.Keys)).Msg("Upload complete")
	return res, nil
}

func collectKeys(root string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, apperrors.NewIOError("failed to walk "+root, err)
	}
	sort.Strings(keys)
	return keys, nil
}
