package vehiclelookup

import (
	"path/filepath"
	"testing"

	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type countingProvider struct {
	inner Provider
	calls int
}

func (p *countingProvider) Lookup(plate string) (models.VehicleRecord, error) {
	p.calls++
	return p.inner.Lookup(plate)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.VehicleRecord{}, &models.OdometerReading{}))
	return db
}

func TestLookupReadThrough(t *testing.T) {
	db := newTestDB(t)
	provider := &countingProvider{inner: StubProvider{}}
	svc, err := NewService(db, provider, 16)
	require.NoError(t, err)

	rec, cached, err := svc.Lookup("ABC123")
	require.NoError(t, err)
	assert.False(t, cached, "first lookup goes to the provider")
	assert.Equal(t, "ABC123", rec.PlateNumber)
	assert.NotEmpty(t, rec.Make)
	assert.NotEmpty(t, rec.OdometerReadings)
	assert.Equal(t, 1, provider.calls)

	rec2, cached, err := svc.Lookup("ABC123")
	require.NoError(t, err)
	assert.True(t, cached, "second lookup is served from cache")
	assert.Equal(t, rec.Make, rec2.Make)
	assert.Equal(t, 1, provider.calls, "provider must not be hit again")
}

func TestLookupFallsBackToDBAfterEviction(t *testing.T) {
	db := newTestDB(t)
	provider := &countingProvider{inner: StubProvider{}}
	svc, err := NewService(db, provider, 16)
	require.NoError(t, err)

	_, _, err = svc.Lookup("KGF782")
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)

	// A service restart loses the LRU but not the table.
	svc2, err := NewService(db, provider, 16)
	require.NoError(t, err)
	rec, cached, err := svc2.Lookup("KGF782")
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 1, provider.calls)
	assert.NotEmpty(t, rec.OdometerReadings, "readings are rehydrated from the table")
}

func TestLookupUnknownPlate(t *testing.T) {
	db := newTestDB(t)
	svc, err := NewService(db, StubProvider{}, 16)
	require.NoError(t, err)

	// Stub registry treats plates ending in zero as unregistered.
	_, _, err = svc.Lookup("ABC120")
	assert.ErrorIs(t, err, ErrNotFound)
}
