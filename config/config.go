package config

import (
	"os"
	"strings"
)

// Config holds the environment-driven settings. Everything except the
// database connection is optional and falls back to a sensible default.
type Config struct {
	Port          string
	DatabaseURL   string
	CORSOrigins   []string
	UploadDir     string
	PublicBaseURL string
}

func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", ""),
	}

	if origins := os.Getenv("CORS_ORIGIN"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
