package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is a cost record, optionally tied to a driver and/or a car.
type Expense struct {
	gorm.Model
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`

	DriverID *uint   `json:"driverId" gorm:"index"`
	CarID    *uint   `json:"carId" gorm:"index"`
	Driver   *Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Car      *Car    `json:"car,omitempty" gorm:"foreignKey:CarID"`
}
