package models

import "time"

// VehicleRecord is the server-side cache of an external plate lookup,
// keyed by the normalized plate.
type VehicleRecord struct {
	PlateNumber      string            `gorm:"primaryKey" json:"plateNumber"`
	Make             string            `json:"make"`
	Model            string            `json:"model"`
	Year             int               `json:"year"`
	EngineSize       string            `json:"engineSize"`
	FuelType         FuelType          `gorm:"type:VARCHAR(20)" json:"fuelType"`
	BodyType         BodyType          `gorm:"type:VARCHAR(20)" json:"bodyType"`
	Color            string            `json:"color"`
	WOFStatus        string            `gorm:"type:VARCHAR(10)" json:"wofStatus"` // valid | expired | unknown
	WOFExpiry        string            `json:"wofExpiry"`
	RegoStatus       string            `gorm:"type:VARCHAR(10)" json:"regoStatus"`
	RegoExpiry       string            `json:"regoExpiry"`
	FirstRegistered  string            `json:"firstRegistered"`
	OdometerReadings []OdometerReading `gorm:"foreignKey:PlateNumber;references:PlateNumber;constraint:OnDelete:CASCADE" json:"odometerReadings,omitempty"`
	FetchedAt        time.Time         `json:"-"`
}

type OdometerReading struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	PlateNumber string `gorm:"index" json:"-"`
	Date        string `json:"date"`
	KM          int    `json:"km"`
}
