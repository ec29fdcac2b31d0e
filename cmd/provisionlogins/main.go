// Backfills login accounts for drivers that predate automatic user
// provisioning. Credentials follow the same convention as driver creation:
// username is the driver number, initial password is driver number + name.
package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"taxi_admin/internal/config"
	"taxi_admin/internal/models"
)

func main() {
	config.InitDB()
	db := config.GetDB()

	var drivers []models.Driver
	if err := db.Preload("User").Find(&drivers).Error; err != nil {
		log.Fatalf("Failed to list drivers: %v", err)
	}

	created := 0
	for i := range drivers {
		driver := &drivers[i]
		if driver.User != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(driver.DriverNumber+driver.Name), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Skipping %s: %v", driver.DriverNumber, err)
			continue
		}
		user := models.User{
			Username: driver.DriverNumber,
			Password: string(hash),
			Role:     "driver",
			DriverID: &driver.ID,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Could not create user for %s: %v", driver.DriverNumber, err)
			continue
		}
		created++
	}

	log.Printf("Checked %d drivers, created %d logins", len(drivers), created)
}
