package pricing

import (
	"testing"

	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateOrdering(t *testing.T) {
	est := MarketEstimator{}

	for _, tc := range []struct {
		make    string
		year    int
		mileage int
	}{
		{"Toyota", 2020, 45000},
		{"BMW", 2015, 120000},
		{"Unknownmake", 2008, 230000},
	} {
		e, err := est.EstimatePrice(tc.make, "Any", tc.year, tc.mileage)
		require.NoError(t, err)
		assert.LessOrEqual(t, e.Min, e.Recommended)
		assert.LessOrEqual(t, e.Recommended, e.Max)
		assert.GreaterOrEqual(t, e.Recommended, 1000)
		assert.GreaterOrEqual(t, e.Confidence, 0.0)
		assert.LessOrEqual(t, e.Confidence, 1.0)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	est := MarketEstimator{}
	a, err := est.EstimatePrice("Mazda", "CX-5", 2019, 60000)
	require.NoError(t, err)
	b, err := est.EstimatePrice("Mazda", "CX-5", 2019, 60000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewerCarWorthMore(t *testing.T) {
	est := MarketEstimator{}
	newer, _ := est.EstimatePrice("Toyota", "Corolla", 2022, 30000)
	older, _ := est.EstimatePrice("Toyota", "Corolla", 2012, 30000)
	assert.Greater(t, newer.Recommended, older.Recommended)
}

func TestGenerateDescription(t *testing.T) {
	est := MarketEstimator{}
	text, err := est.GenerateDescription(models.DraftVehicleInfo{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2018,
		Mileage:      78000,
		FuelType:     models.FuelPetrol,
		Transmission: models.TransmissionAutomatic,
		Color:        "Blue",
		WOFExpiry:    "2026-03-01",
	})
	require.NoError(t, err)

	assert.Contains(t, text, "2018 Toyota Corolla")
	assert.Contains(t, text, "78000km")
	assert.Contains(t, text, "WOF until 2026-03-01")
	// Long enough to clear the wizard's minimum without edits.
	assert.GreaterOrEqual(t, len(text), 50)
}
