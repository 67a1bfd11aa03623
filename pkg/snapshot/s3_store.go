//go:build s3example
// +build s3example

// This file provides an example S3-backed Store implementation. It is
// excluded from regular builds; enable it with the s3example build tag:
//
//	go build -tags s3example ./...

package snapshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store persists snapshots in an S3 bucket under a key prefix.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := snapshot.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "snapshots/")
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed snapshot store.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *S3Store) key(id string) string {
	return s.prefix + id
}

// Save implements Store. Expiry is recorded as object metadata and
// enforced on Load; bucket lifecycle rules handle physical deletion.
func (s *S3Store) Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error {
	meta := map[string]string{}
	if !expiresAt.IsZero() {
		meta["expires-at"] = expiresAt.UTC().Format(time.RFC3339)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(id)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
		Metadata:    meta,
	})
	return err
}

// Load implements Store.
func (s *S3Store) Load(ctx context.Context, id string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	if exp := out.Metadata["expires-at"]; exp != "" {
		t, perr := time.Parse(time.RFC3339, exp)
		if perr == nil && time.Now().After(t) {
			return nil, ErrNotFound
		}
	}

	return io.ReadAll(out.Body)
}

// Delete implements Store.
func (s *S3Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	return err
}
