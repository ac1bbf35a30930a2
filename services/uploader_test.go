package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

type fakeS3 struct {
	putKeys    []string
	deleteKeys []string
	putErr     error
	deleteErr  error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKeys = append(f.putKeys, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleteKeys = append(f.deleteKeys, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func newTestUploader(client s3Client) *S3Uploader {
	return &S3Uploader{
		client: client,
		bucket: "test-bucket",
		region: "us-east-1",
		logger: zerolog.Nop(),
		now:    func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

func TestUploadReturnsPublicURL(t *testing.T) {
	fake := &fakeS3{}
	u := newTestUploader(fake)

	url, err := u.Upload(context.Background(), "projects/images", "shot.png", "image/png", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	wantKey := "projects/images/1700000000000-shot.png"
	if len(fake.putKeys) != 1 || fake.putKeys[0] != wantKey {
		t.Fatalf("put keys = %v, want [%s]", fake.putKeys, wantKey)
	}
	want := "https://test-bucket.s3.us-east-1.amazonaws.com/" + wantKey
	if url != want {
		t.Fatalf("url = %q, want %q", url, want)
	}
}

func TestUploadWrapsStoreFailure(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("store unavailable")}
	u := newTestUploader(fake)

	_, err := u.Upload(context.Background(), "skills", "go.svg", "image/svg+xml", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error from failed upload")
	}
}

func TestRemoveDeletesKnownURL(t *testing.T) {
	fake := &fakeS3{}
	u := newTestUploader(fake)

	u.Remove(context.Background(), "https://test-bucket.s3.us-east-1.amazonaws.com/projects/images/123-shot.png")
	if len(fake.deleteKeys) != 1 || fake.deleteKeys[0] != "projects/images/123-shot.png" {
		t.Fatalf("delete keys = %v", fake.deleteKeys)
	}
}

func TestRemoveIgnoresForeignURL(t *testing.T) {
	fake := &fakeS3{}
	u := newTestUploader(fake)

	u.Remove(context.Background(), "https://other-bucket.s3.us-east-1.amazonaws.com/whatever.png")
	u.Remove(context.Background(), "not a url at all")
	if len(fake.deleteKeys) != 0 {
		t.Fatalf("expected no deletes, got %v", fake.deleteKeys)
	}
}

func TestRemoveSwallowsDeleteFailure(t *testing.T) {
	fake := &fakeS3{deleteErr: errors.New("gone already")}
	u := newTestUploader(fake)

	// must not panic or surface the error
	u.Remove(context.Background(), "https://test-bucket.s3.us-east-1.amazonaws.com/skills/1-go.svg")
}
