package service

import "context"

// ReceiptArchive defines the interface for storing rendered receipt
// artifacts outside the database.
type ReceiptArchive interface {
	// Store writes the artifact under the given key, overwriting any
	// previous object with the same key.
	Store(ctx context.Context, key string, body []byte) error
}
