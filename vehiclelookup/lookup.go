// Package vehiclelookup resolves a normalized plate to vehicle details,
// read-through: in-process LRU first, then the cache table, then the
// external registry provider.
package vehiclelookup

import (
	"errors"
	"fmt"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/kiwicar-nz/marketplace-api/models"
	"gorm.io/gorm"
)

// ErrNotFound means the registry has no vehicle for the plate.
var ErrNotFound = errors.New("vehicle not found")

// Provider is the external registry integration (NZTA in production).
type Provider interface {
	Lookup(plate string) (models.VehicleRecord, error)
}

type Service struct {
	db       *gorm.DB
	provider Provider
	cache    *lru.Cache
}

func NewService(db *gorm.DB, provider Provider, cacheSize int) (*Service, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{db: db, provider: provider, cache: cache}, nil
}

// Lookup returns the vehicle record plus whether it came from cache.
// The plate must already be normalized.
func (s *Service) Lookup(plate string) (models.VehicleRecord, bool, error) {
	if v, ok := s.cache.Get(plate); ok {
		return v.(models.VehicleRecord), true, nil
	}

	var rec models.VehicleRecord
	err := s.db.Preload("OdometerReadings", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC")
	}).First(&rec, "plate_number = ?", plate).Error
	if err == nil {
		s.cache.Add(plate, rec)
		return rec, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.VehicleRecord{}, false, err
	}

	rec, err = s.provider.Lookup(plate)
	if err != nil {
		return models.VehicleRecord{}, false, err
	}
	rec.PlateNumber = plate
	rec.FetchedAt = time.Now()

	if err := s.db.Create(&rec).Error; err != nil {
		// A concurrent request may have won the insert; serve the result anyway.
		log.Printf("vehiclelookup: failed to cache %s: %v", plate, err)
	}
	s.cache.Add(plate, rec)
	return rec, false, nil
}

// StubProvider stands in for the NZTA integration. It derives a plausible,
// deterministic vehicle from the plate so the rest of the stack can be
// exercised without credentials. Plates ending in "0" are unknown.
type StubProvider struct{}

var stubFleet = []struct {
	Make, Model, Engine string
	Fuel                models.FuelType
	Body                models.BodyType
}{
	{"Toyota", "Corolla", "1.8L", models.FuelPetrol, models.BodyHatchback},
	{"Mazda", "CX-5", "2.5L", models.FuelPetrol, models.BodySUV},
	{"Nissan", "Leaf", "EV", models.FuelElectric, models.BodyHatchback},
	{"Ford", "Ranger", "3.2L", models.FuelDiesel, models.BodyUte},
	{"Toyota", "Aqua", "1.5L", models.FuelHybrid, models.BodyHatchback},
	{"Subaru", "Outback", "2.5L", models.FuelPetrol, models.BodyWagon},
}

var stubColors = []string{"White", "Silver", "Black", "Blue", "Red", "Grey"}

func (StubProvider) Lookup(plate string) (models.VehicleRecord, error) {
	if plate == "" || plate[len(plate)-1] == '0' {
		return models.VehicleRecord{}, ErrNotFound
	}

	var seed int
	for _, ch := range plate {
		seed = seed*31 + int(ch)
	}
	if seed < 0 {
		seed = -seed
	}

	car := stubFleet[seed%len(stubFleet)]
	year := 2010 + seed%14
	first := fmt.Sprintf("%d-%02d-01", year, 1+seed%12)

	return models.VehicleRecord{
		PlateNumber:     plate,
		Make:            car.Make,
		Model:           car.Model,
		Year:            year,
		EngineSize:      car.Engine,
		FuelType:        car.Fuel,
		BodyType:        car.Body,
		Color:           stubColors[seed%len(stubColors)],
		WOFStatus:       "valid",
		WOFExpiry:       time.Now().AddDate(0, 6+seed%6, 0).Format("2006-01-02"),
		RegoStatus:      "valid",
		RegoExpiry:      time.Now().AddDate(0, 3+seed%9, 0).Format("2006-01-02"),
		FirstRegistered: first,
		OdometerReadings: []models.OdometerReading{
			{Date: fmt.Sprintf("%d-06-01", year+1), KM: 12000 + seed%9000},
			{Date: fmt.Sprintf("%d-06-01", year+3), KM: 46000 + seed%9000},
			{Date: fmt.Sprintf("%d-06-01", year+5), KM: 81000 + seed%9000},
		},
	}, nil
}
