package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements objectAPI in memory.
type fakeStore struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr      error
	putKey      string
	putBody     []byte
	contentType string

	getRC  io.ReadCloser
	getErr error

	removeErr error
	removed   string

	statErr error
}

func (f *fakeStore) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeStore) MakeBucket(_ context.Context, name string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = name
	return f.makeBucketErr
}

func (f *fakeStore) PutObject(_ context.Context, _ string, key string, r io.Reader, _ int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}
	f.putKey, f.putBody, f.contentType = key, body, opts.ContentType
	return minioLib.UploadInfo{Key: key, Size: int64(len(body))}, nil
}

func (f *fakeStore) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}

func (f *fakeStore) RemoveObject(_ context.Context, _ string, key string, _ minioLib.RemoveObjectOptions) error {
	f.removed = key
	return f.removeErr
}

func (f *fakeStore) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClient_Bucket(t *testing.T) {
	ctx := context.Background()

	t.Run("existing bucket", func(t *testing.T) {
		api := &fakeStore{bucketExists: true}
		c, err := newClient(ctx, api, "exports")
		require.NoError(t, err)
		assert.Equal(t, "exports", c.bucket)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		api := &fakeStore{}
		_, err := newClient(ctx, api, "exports")
		require.NoError(t, err)
		assert.Equal(t, "exports", api.madeBucket)
	})

	t.Run("bucket created concurrently", func(t *testing.T) {
		api := &fakeStore{makeBucketErr: minioLib.ErrorResponse{Code: "BucketAlreadyOwnedByYou"}}
		_, err := newClient(ctx, api, "exports")
		require.NoError(t, err)
	})

	t.Run("exists check fails", func(t *testing.T) {
		api := &fakeStore{bucketExistsErr: errors.New("boom")}
		c, err := newClient(ctx, api, "exports")
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ensure bucket exists")
	})

	t.Run("create fails", func(t *testing.T) {
		api := &fakeStore{makeBucketErr: errors.New("denied")}
		_, err := newClient(ctx, api, "exports")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create bucket")
	})

	t.Run("empty bucket name", func(t *testing.T) {
		_, err := newClient(ctx, &fakeStore{}, "")
		require.Error(t, err)
	})
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()
	api := &fakeStore{bucketExists: true}
	c, err := newClient(ctx, api, "exports")
	require.NoError(t, err)

	require.NoError(t, c.Upload(ctx, "leads/a.csv", bytes.NewBufferString("id,name\n"), "text/csv"))
	assert.Equal(t, "leads/a.csv", api.putKey)
	assert.Equal(t, "id,name\n", string(api.putBody))
	assert.Equal(t, "text/csv", api.contentType)

	api.putErr = errors.New("disk full")
	err = c.Upload(ctx, "leads/b.csv", bytes.NewBufferString("x"), "text/csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()
	api := &fakeStore{bucketExists: true, getRC: io.NopCloser(bytes.NewBufferString("payload"))}
	c, err := newClient(ctx, api, "exports")
	require.NoError(t, err)

	rc, err := c.Download(ctx, "k")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))

	api.getErr = errors.New("gone")
	_, err = c.Download(ctx, "k")
	require.Error(t, err)
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()
	api := &fakeStore{bucketExists: true}
	c, err := newClient(ctx, api, "exports")
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.Equal(t, "k", api.removed)

	api.removeErr = errors.New("denied")
	require.Error(t, c.Delete(ctx, "k"))
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()
	api := &fakeStore{bucketExists: true}
	c, err := newClient(ctx, api, "exports")
	require.NoError(t, err)

	ok, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	api.statErr = minioLib.ErrorResponse{Code: "NoSuchKey"}
	ok, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	api.statErr = errors.New("network")
	_, err = c.Exists(ctx, "k")
	require.Error(t, err)
}
