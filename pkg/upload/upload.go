// Package upload implements the multipart ingestion stage: it routes named
// file fields from a request to a storage.Disk and hands back public URLs.
package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/wazihas/boutique/pkg/metrics"
	"github.com/wazihas/boutique/pkg/storage"
)

// maxMemory caps how much of a multipart body is buffered in memory before
// spilling to temp files.
const maxMemory = 32 << 20

// ErrStorage marks a blob-store write failure, as opposed to a malformed
// multipart body. Check with errors.Is.
var ErrStorage = errors.New("upload: storage failure")

// Ingestor stores uploaded files on a Disk under a key prefix.
type Ingestor struct {
	disk storage.Disk
	dir  string // object key prefix, e.g. "products"
}

// NewIngestor builds an ingestion stage writing under dir on disk.
func NewIngestor(disk storage.Disk, dir string) *Ingestor {
	return &Ingestor{disk: disk, dir: dir}
}

// Ingest parses the request's multipart form and stores the first file of
// each named field, capped at one file per field. The result maps each field
// name to the stored file's public URL; fields absent from the form map to
// the empty string rather than failing.
//
// A malformed body is returned as a plain error; a failed store write wraps
// ErrStorage so callers can tell the two apart.
func (in *Ingestor) Ingest(r *http.Request, fields ...string) (map[string]string, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, fmt.Errorf("upload: parse multipart form: %w", err)
	}

	urls := make(map[string]string, len(fields))
	for _, field := range fields {
		urls[field] = ""

		if r.MultipartForm == nil {
			continue
		}
		headers := r.MultipartForm.File[field]
		if len(headers) == 0 {
			continue
		}

		url, err := in.store(headers[0])
		if err != nil {
			return nil, err
		}
		urls[field] = url
	}

	return urls, nil
}

// store writes one uploaded file to the disk and returns its public URL.
// Object keys are prefixed with a random ID so uploads never collide.
func (in *Ingestor) store(hdr *multipart.FileHeader) (string, error) {
	f, err := hdr.Open()
	if err != nil {
		return "", fmt.Errorf("upload: open %s: %w", hdr.Filename, err)
	}
	defer f.Close()

	key := path.Join(in.dir, uuid.NewString()+"-"+path.Base(hdr.Filename))
	if err := in.disk.PutStream(key, f); err != nil {
		metrics.UploadsStored.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("%w: %s: %v", ErrStorage, hdr.Filename, err)
	}

	metrics.UploadsStored.WithLabelValues("success").Inc()
	return in.disk.URL(key), nil
}
