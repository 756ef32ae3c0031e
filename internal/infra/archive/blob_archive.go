// Package archive stores rendered receipt artifacts in a blob bucket.
// The default backend is a local directory via fileblob, which keeps the
// same API as cloud buckets if the archive ever moves off-host.
package archive

import (
	"context"
	"log/slog"
	"os"

	"brewclub/config"
	"brewclub/internal/domain/service"
	"brewclub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobArchive implements the ReceiptArchive interface on top of a blob bucket.
type blobArchive struct {
	bucket *blob.Bucket
}

// New opens the receipts bucket and registers its shutdown hook.
func New(params Params) (service.ReceiptArchive, error) {
	dir := params.Config.Receipts.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create receipts dir")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open receipts bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newBucketArchive(bucket), nil
}

func newBucketArchive(bucket *blob.Bucket) service.ReceiptArchive {
	return &blobArchive{bucket: bucket}
}

// Store writes the artifact under the given key, overwriting any previous
// object with the same key.
func (a *blobArchive) Store(ctx context.Context, key string, body []byte) error {
	if err := a.bucket.WriteAll(ctx, key, body, nil); err != nil {
		return errors.Wrap(err, "failed to write receipt artifact")
	}

	return nil
}
