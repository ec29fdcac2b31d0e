package models

import (
	"time"

	"gorm.io/gorm"
)

// Skift is one driver's working period in one car. A skift is "open" while
// the stop date/time and stop odometer are still unset.
type Skift struct {
	gorm.Model
	SkiftNumber    string     `json:"skiftNumber"`
	KmBetweenSkift float64    `json:"kmBetweenSkift"`
	StartDate      time.Time  `json:"startDate"`
	StopDate       *time.Time `json:"stopDate"`
	StartTime      string     `json:"startTime"`
	StopTime       string     `json:"stopTime"`
	SalaryBasis    float64    `json:"salaryBasis"`
	StartKm        float64    `json:"startKm"`
	StopKm         float64    `json:"stopKm"`
	TotalKm        float64    `json:"totalKm"` // by convention stopKm - startKm, not enforced
	AntTurer       int        `json:"antTurer"`
	KmOpptatt      float64    `json:"kmOpptatt"`
	TipsKontant    float64    `json:"tipsKontant"`
	TipsKreditt    float64    `json:"tipsKreditt"`
	Netto          float64    `json:"netto"`
	Loyve          string     `json:"loyve"`

	DriverID uint    `json:"driverId" gorm:"index"`
	CarID    uint    `json:"carId" gorm:"index"`
	Driver   Driver  `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Car      Car     `json:"car,omitempty" gorm:"foreignKey:CarID"`
	Varsel   *Varsel `json:"varsel,omitempty" gorm:"foreignKey:SkiftID"`
}
