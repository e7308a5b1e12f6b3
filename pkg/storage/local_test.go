package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wazihas/boutique/pkg/storage"
)

func TestLocalDiskPutGetDelete(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "http://localhost:5000/uploads")

	require.NoError(t, disk.Put("products/a.jpg", []byte("front")))
	assert.True(t, disk.Exists("products/a.jpg"))

	data, err := disk.Get("products/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "front", string(data))

	require.NoError(t, disk.Delete("products/a.jpg"))
	assert.False(t, disk.Exists("products/a.jpg"))
}

func TestLocalDiskPutStream(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "http://localhost:5000/uploads")

	require.NoError(t, disk.PutStream("nested/dir/b.jpg", strings.NewReader("back")))

	data, err := disk.Get("nested/dir/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, "back", string(data))
}

func TestLocalDiskDeleteMissingIsNoop(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "http://localhost:5000/uploads")
	assert.NoError(t, disk.Delete("never/stored.jpg"))
}

func TestLocalDiskGetMissing(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "http://localhost:5000/uploads")
	_, err := disk.Get("missing.jpg")
	assert.Error(t, err)
}

func TestLocalDiskURL(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "http://localhost:5000/uploads/")

	// Trailing base slash and leading path slash both normalize away.
	assert.Equal(t, "http://localhost:5000/uploads/products/a.jpg", disk.URL("products/a.jpg"))
	assert.Equal(t, "http://localhost:5000/uploads/products/a.jpg", disk.URL("/products/a.jpg"))
}
