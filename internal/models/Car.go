package models

import (
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model
	LicenseNumber string `json:"licenseNumber" gorm:"unique"`
	CarBrand      string `json:"carBrand"`
	ModelYear     int    `json:"modelYear"`

	Skifts []Skift `json:"skifts,omitempty" gorm:"foreignKey:CarID"`
}
