// Package storage persists the task collection as one opaque blob under a
// fixed key in an external store. Two backends are provided: a bbolt file
// (default) and a sqlite database.
package storage

// BlobStore is the external key-value store contract. Load returns nil with
// no error when nothing has been saved yet.
type BlobStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}
