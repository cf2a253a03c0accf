package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("CORS_ORIGIN", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/kiwicar")
	t.Setenv("CORS_ORIGIN", "https://kiwicar.nz, https://www.kiwicar.nz ,")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/kiwicar", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://kiwicar.nz", "https://www.kiwicar.nz"}, cfg.CORSOrigins)
}
