package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"` // bcrypt hash
	Role     string `json:"role"` // "admin" or "driver"

	DriverID *uint   `json:"driverId" gorm:"uniqueIndex"`
	Driver   *Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
}
