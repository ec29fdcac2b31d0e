package models

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	DriverNumber     string  `json:"driverNumber" gorm:"unique"`
	PersonNumber     string  `json:"personNumber" gorm:"unique"`
	Name             string  `json:"name"`
	LastName         string  `json:"lastName"`
	Address          string  `json:"address"`
	Town             string  `json:"town"`
	PostalCode       string  `json:"postalCode"`
	Telephone        string  `json:"telephone"`
	Email            string  `json:"email" gorm:"unique"`
	SalaryPercentage float64 `json:"salaryPercentage"`
	HideFromOthers   bool    `json:"hideFromOthers" gorm:"default:false"`

	// A driver owns their shifts and has at most one login account.
	Skifts []Skift `json:"skifts,omitempty" gorm:"foreignKey:DriverID"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:DriverID"`
}
