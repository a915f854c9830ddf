package storage

import "os"

// BlobConfig holds blob store connection configuration
type BlobConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL overrides the derived public endpoint (e.g. a CDN front).
	PublicURL string
}

// LoadBlobConfig loads blob store config from environment
func LoadBlobConfig() *BlobConfig {
	useSSL := false
	if os.Getenv("MINIO_USE_SSL") == "true" {
		useSSL = true
	}
	return &BlobConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:    useSSL,
		Bucket:    getEnv("MINIO_BUCKET", "trip-content"),
		PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
	}
}

// PublicBaseURL returns the base under which object URLs are built.
func (c *BlobConfig) PublicBaseURL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + c.Endpoint
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
