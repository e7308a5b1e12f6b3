package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort    = "5000"
	defaultAppEnv     = "local"
	defaultJWTSecret  = "change-me-in-production"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoDB    = "fashionDB"
	defaultDisk       = "local"
	defaultLocalRoot  = "uploads"
	defaultStorageURL = "http://localhost:5000/uploads"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = map[string]string{}
)

// Load reads .env into the config map. Real environment variables take
// precedence over file values. Safe to call from multiple packages; the
// file is only parsed once.
func Load() error {
	loadOnce.Do(func() {
		loaded, err := godotenv.Read(".env")
		if err != nil {
			if !os.IsNotExist(err) {
				loadErr = err
				return
			}
			loaded = map[string]string{}
		}

		mu.Lock()
		values = loaded
		mu.Unlock()
	})
	return loadErr
}

// Get reads a config key with an optional fallback. Process environment
// variables win over .env entries.
func Get(key, fallback string) string {
	_ = Load()

	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	mu.RLock()
	defer mu.RUnlock()

	if v := strings.TrimSpace(values[key]); v != "" {
		return v
	}
	return fallback
}

func AppPort() string { return Get("APP_PORT", defaultAppPort) }
func AppEnv() string  { return Get("APP_ENV", defaultAppEnv) }

func JWTSecret() string { return Get("JWT_SECRET", defaultJWTSecret) }

// AdminEmail is the bootstrap administrator account created by the
// admin-user seeder. Empty disables the seeder.
func AdminEmail() string { return Get("ADMIN_EMAIL", "") }

func AdminName() string { return Get("ADMIN_NAME", "Administrator") }

// ── Document store ───────────────────────────────────────────────────────────

func MongoURI() string      { return Get("MONGO_URI", defaultMongoURI) }
func MongoDatabase() string { return Get("MONGO_DB", defaultMongoDB) }

// LogToMongo enables the async MongoDB slog handler when truthy.
func LogToMongo() bool {
	switch strings.ToLower(Get("LOG_TO_MONGO", "")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ── Blob store ───────────────────────────────────────────────────────────────

// StorageDisk selects the blob-store driver: "local" or "s3".
func StorageDisk() string { return Get("STORAGE_DISK", defaultDisk) }

func StorageLocalRoot() string { return Get("STORAGE_LOCAL_ROOT", defaultLocalRoot) }

// StorageURL is the public base URL that locally stored files are served
// under (the server mounts this path itself when the local driver is active).
func StorageURL() string { return Get("STORAGE_URL", defaultStorageURL) }

func StorageS3Bucket() string   { return Get("S3_BUCKET", "") }
func StorageS3Region() string   { return Get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { return Get("S3_KEY", "") }
func StorageS3Secret() string   { return Get("S3_SECRET", "") }
func StorageS3Endpoint() string { return Get("S3_ENDPOINT", "") }
func StorageS3URL() string      { return Get("S3_URL", "") }
