// Creates (or resets) an admin login. Run once after provisioning a new
// environment:
//
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run ./cmd/createadmin
package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"taxi_admin/internal/config"
	"taxi_admin/internal/models"
)

func main() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	config.InitDB()
	db := config.GetDB()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var user models.User
	err = db.Where("username = ?", username).First(&user).Error
	if err == nil {
		user.Password = string(hash)
		user.Role = "admin"
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("Failed to update admin user: %v", err)
		}
		log.Printf("Reset password for existing admin %q", username)
		return
	}

	user = models.User{Username: username, Password: string(hash), Role: "admin"}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user %q", username)
}
