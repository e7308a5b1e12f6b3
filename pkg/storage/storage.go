// Package storage abstracts where uploaded product images live.
//
// Two drivers are available:
//   - "local" — local filesystem; public URLs are built from the server's
//     own uploads base URL
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// The driver is selected once at process start and injected wherever a Disk
// is needed; nothing downstream knows which backend is active.
package storage

import (
	"fmt"
	"io"

	"github.com/wazihas/boutique/config"
)

// Disk is the blob-store capability: store bytes, get back a public URL.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the publicly resolvable URL for path.
	URL(path string) string
}

// FromConfig builds the Disk named by STORAGE_DISK.
func FromConfig() (Disk, error) {
	switch name := config.StorageDisk(); name {
	case "local":
		return NewLocalDisk(config.StorageLocalRoot(), config.StorageURL()), nil
	case "s3":
		return NewS3Disk(S3Options{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			BaseURL:  config.StorageS3URL(),
		})
	default:
		return nil, fmt.Errorf("storage: unknown STORAGE_DISK %q (supported: local, s3)", name)
	}
}
