// Package pricing models the AI valuation and description services as
// external capabilities behind interfaces. The bundled implementations are
// deterministic stand-ins; real integrations plug in behind the same shapes.
package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kiwicar-nz/marketplace-api/models"
)

// Estimate is ephemeral display data, never persisted.
type Estimate struct {
	Min         int     `json:"min"`
	Recommended int     `json:"recommended"`
	Max         int     `json:"max"`
	Confidence  float64 `json:"confidence"` // 0..1
}

type Estimator interface {
	EstimatePrice(make, model string, year, mileage int) (Estimate, error)
}

type Describer interface {
	GenerateDescription(info models.DraftVehicleInfo) (string, error)
}

// MarketEstimator is a depreciation-curve stub: a base value by segment,
// discounted by age and mileage.
type MarketEstimator struct{}

var segmentBase = map[string]int{
	"toyota":        32000,
	"mazda":         30000,
	"honda":         29000,
	"nissan":        27000,
	"ford":          31000,
	"mitsubishi":    26000,
	"subaru":        30000,
	"suzuki":        22000,
	"hyundai":       28000,
	"kia":           27000,
	"volkswagen":    33000,
	"bmw":           45000,
	"mercedes-benz": 48000,
	"audi":          44000,
}

func (MarketEstimator) EstimatePrice(carMake, carModel string, year, mileage int) (Estimate, error) {
	base, ok := segmentBase[strings.ToLower(carMake)]
	if !ok {
		base = 25000
	}

	age := time.Now().Year() - year
	if age < 0 {
		age = 0
	}
	value := float64(base) * math.Pow(0.88, float64(age))
	value *= math.Max(0.5, 1.0-float64(mileage)/400000.0)

	recommended := int(math.Round(value/100) * 100)
	if recommended < 1000 {
		recommended = 1000
	}

	// Confidence shrinks for old or high-mileage vehicles.
	confidence := 0.9 - 0.02*float64(age)
	if mileage > 150000 {
		confidence -= 0.1
	}
	confidence = math.Min(0.95, math.Max(0.3, confidence))

	return Estimate{
		Min:         int(float64(recommended) * 0.85),
		Recommended: recommended,
		Max:         int(float64(recommended) * 1.15),
		Confidence:  confidence,
	}, nil
}

// GenerateDescription writes templated listing copy from the vehicle facts.
func (MarketEstimator) GenerateDescription(info models.DraftVehicleInfo) (string, error) {
	var b strings.Builder

	name := strings.TrimSpace(fmt.Sprintf("%d %s %s %s", info.Year, info.Make, info.Model, info.Variant))
	fmt.Fprintf(&b, "This %s is a great all-rounder that has been well looked after.", name)

	if info.Mileage > 0 {
		fmt.Fprintf(&b, " With %dkm on the clock, it has plenty of life left.", info.Mileage)
	}
	if info.FuelType != "" && info.Transmission != "" {
		fmt.Fprintf(&b, " The %s engine paired with a %s transmission makes for an easy, economical drive.",
			info.FuelType, info.Transmission)
	} else if info.FuelType != "" {
		fmt.Fprintf(&b, " The %s engine makes for an easy, economical drive.", info.FuelType)
	}
	if info.Color != "" {
		fmt.Fprintf(&b, " Finished in %s, it presents well inside and out.", strings.ToLower(info.Color))
	}
	if info.WOFExpiry != "" {
		fmt.Fprintf(&b, " WOF until %s.", info.WOFExpiry)
	}
	if info.RegoExpiry != "" {
		fmt.Fprintf(&b, " Rego until %s.", info.RegoExpiry)
	}
	b.WriteString(" First to view will buy. Contact me to arrange a test drive.")

	return b.String(), nil
}
