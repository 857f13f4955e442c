// Package storage holds the blob store the photo flow writes uploads to.
package storage

import (
	"context"
	"io"
)

// Provider is a blob store keyed by object path. Put returns the public URL
// the stored object is reachable at; Key reverses that mapping so a record
// holding only the URL can still be deleted from the store.
type Provider interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	Key(publicURL string) (string, error)
}
