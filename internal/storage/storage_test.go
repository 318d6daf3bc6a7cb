package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewObjectKey(t *testing.T) {
	key := NewObjectKey(42, "../../etc/contract.pdf")
	require.True(t, strings.HasPrefix(key, "tenants/42/documents/"))
	require.True(t, strings.HasSuffix(key, "/contract.pdf"))
	require.True(t, BelongsToTenant(key, 42))
	require.False(t, BelongsToTenant(key, 4))

	require.NotEqual(t, key, NewObjectKey(42, "contract.pdf"))
	require.True(t, strings.HasSuffix(NewObjectKey(1, `C:\docs\id.png`), "/id.png"))
}

func TestBelongsToTenant(t *testing.T) {
	require.False(t, BelongsToTenant("tenants/1/documents/", 1))
	require.False(t, BelongsToTenant("tenants/1/documents/../../2/documents/x", 1))
	require.False(t, BelongsToTenant("uploads/x.pdf", 1))
	require.True(t, BelongsToTenant("tenants/1/documents/abc/x.pdf", 1))
}

func TestS3Storage_Presign(t *testing.T) {
	s, err := NewS3Storage(context.Background(), Config{
		Bucket:          "hr-docs",
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)

	key := "tenants/1/documents/abc/contract.pdf"

	upload, err := s.PresignUpload(context.Background(), key)
	require.NoError(t, err)
	u, err := url.Parse(upload)
	require.NoError(t, err)
	require.Equal(t, "localhost:9000", u.Host)
	require.Equal(t, "/hr-docs/"+key, u.Path)
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	download, err := s.PresignDownload(context.Background(), key)
	require.NoError(t, err)
	require.Contains(t, download, "X-Amz-Expires=900")
}
