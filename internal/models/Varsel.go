package models

import (
	"gorm.io/gorm"
)

// Varsel is a low-performance alert. At most one exists per skift; the
// unique index on SkiftID is what the alert upsert keys on.
type Varsel struct {
	gorm.Model
	SkiftID        uint    `json:"skiftId" gorm:"uniqueIndex"`
	SkiftNumber    string  `json:"skiftNumber"`
	KmOpptatt      float64 `json:"kmOpptatt"`
	OpptattProsent float64 `json:"opptattProsent"`
	AntTurer       int     `json:"antTurer"`
	LonnBasis      float64 `json:"lonnBasis"`
	Reason         string  `json:"reason"`

	Skift Skift `json:"skift,omitempty" gorm:"foreignKey:SkiftID"`
}
