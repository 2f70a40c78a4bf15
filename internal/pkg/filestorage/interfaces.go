package filestorage

import (
	"context"
)

// ObjectStore is the subset of an S3-compatible bucket client the uploader needs
type ObjectStore interface {
	// EnsureBucket creates the bucket in region unless it already exists
	EnsureBucket(ctx context.Context, bucket, region string) (created bool, err error)

	// PutFile uploads the local file at path under key
	PutFile(ctx context.Context, bucket, key, path string) error
}

// UploadResult summarizes an upload run
type UploadResult struct {
	Bucket        string
	Region        string
	BucketCreated bool
	Keys          []string
	Missing       []string // expected top-level folders not found locally
}
