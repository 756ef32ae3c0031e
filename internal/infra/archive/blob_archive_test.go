package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func TestBlobArchive_Store(t *testing.T) {
	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newBucketArchive(bucket)
	ctx := context.Background()

	body := []byte("Summary of (Coffee_Type, Quantity, Price)\n[]\nTotal Price: 0")
	require.NoError(t, store.Store(ctx, "August312026_Ann.txt", body))

	got, err := bucket.ReadAll(ctx, "August312026_Ann.txt")
	require.NoError(t, err)
	assert.Equal(t, body, got)

	// Storing the same key again overwrites the previous artifact.
	require.NoError(t, store.Store(ctx, "August312026_Ann.txt", []byte("updated")))
	got, err = bucket.ReadAll(ctx, "August312026_Ann.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), got)
}
