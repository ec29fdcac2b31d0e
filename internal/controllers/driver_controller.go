package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taxi_admin/internal/config"
	"taxi_admin/internal/mapping"
	"taxi_admin/internal/models"
)

// driverInput is the Norwegian-keyed body of the collection POST.
type driverInput struct {
	SjaforNummer       string   `json:"sjåforNummer" binding:"required"`
	PersonNummer       string   `json:"personNummer" binding:"required"`
	Fornavn            string   `json:"fornavn" binding:"required"`
	Etternavn          string   `json:"etternavn" binding:"required"`
	Adresse            string   `json:"adresse" binding:"required"`
	By                 string   `json:"by" binding:"required"`
	Postnummer         string   `json:"postnummer" binding:"required"`
	Telefon            string   `json:"telefon" binding:"required"`
	Epost              string   `json:"epost" binding:"required,email"`
	Lonnprosent        *float64 `json:"lonnprosent" binding:"required,min=0,max=100"`
	IkkeVisMegForAndre *bool    `json:"ikkeVisMegForAndre,omitempty"`
}

// driverUpdateInput is the English-keyed body of the by-id PUT.
type driverUpdateInput struct {
	DriverNumber string `json:"driverNumber" binding:"required"`
	PersonNumber string `json:"personNumber" binding:"required"`
	Name         string `json:"name" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Town         string `json:"town" binding:"required"`
	PostalCode   string `json:"postalCode" binding:"required"`
	Telephone    string `json:"telephone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
}

// ListDrivers returns all drivers with their shifts, Norwegian-keyed.
// Drivers who asked to be hidden are filtered out for non-admin callers,
// except the caller's own record.
func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	err := config.DB.
		Preload("Skifts", func(db *gorm.DB) *gorm.DB { return db.Order("start_date DESC") }).
		Order("name asc").
		Find(&drivers).Error
	if err != nil {
		logrus.WithError(err).Error("Error listing drivers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch drivers"})
		return
	}

	role := sessionRole(c)
	own := sessionDriverID(c)
	out := make([]map[string]any, 0, len(drivers))
	for _, d := range drivers {
		if role != "admin" && d.HideFromOthers && d.ID != own {
			continue
		}
		out = append(out, mapping.ToNorwegian(d.Record(), mapping.KindDriver))
	}

	c.JSON(http.StatusOK, out)
}

// GetDriver returns one driver with shift history, in the internal shape.
func GetDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format"})
		return
	}

	var driver models.Driver
	err = config.DB.
		Preload("Skifts", func(db *gorm.DB) *gorm.DB { return db.Order("start_date DESC") }).
		Preload("Skifts.Car").
		First(&driver, uint(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			logrus.WithError(err).Error("Error fetching driver")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver"})
		}
		return
	}

	c.JSON(http.StatusOK, driver.Record())
}

// CreateDriver persists a new driver and, in the same transaction, their
// login account: username is the driver number, the initial password is
// driver number + first name.
func CreateDriver(c *gin.Context) {
	var input driverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	var driver models.Driver
	rec := mapping.FromNorwegian(recordOf(input), mapping.KindDriver)
	if err := decodeRecord(rec, &driver); err != nil {
		abortValidation(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(driver.DriverNumber+driver.Name), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Could not hash driver password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feil ved oppretting av sjåfør"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feil ved oppretting av sjåfør"})
		return
	}

	if err := tx.Create(&driver).Error; err != nil {
		tx.Rollback()
		if msg, ok := uniqueConflictMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		logrus.WithError(err).Error("Driver creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feil ved oppretting av sjåfør"})
		return
	}

	user := models.User{
		Username: driver.DriverNumber,
		Password: string(hash),
		Role:     "driver",
		DriverID: &driver.ID,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if msg, ok := uniqueConflictMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		logrus.WithError(err).Error("Driver user creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feil ved oppretting av sjåfør"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		logrus.WithError(err).Error("Driver creation commit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feil ved oppretting av sjåfør"})
		return
	}

	c.JSON(http.StatusCreated, mapping.ToNorwegian(driver.Record(), mapping.KindDriver))
}

// UpdateDriver replaces the identity fields of a driver.
func UpdateDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format"})
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			logrus.WithError(err).Error("Error fetching driver for update")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver"})
		}
		return
	}

	var input driverUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	driver.DriverNumber = input.DriverNumber
	driver.PersonNumber = input.PersonNumber
	driver.Name = input.Name
	driver.LastName = input.LastName
	driver.Address = input.Address
	driver.Town = input.Town
	driver.PostalCode = input.PostalCode
	driver.Telephone = input.Telephone
	driver.Email = input.Email

	if err := config.DB.Save(&driver).Error; err != nil {
		if msg, ok := uniqueConflictMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		logrus.WithError(err).Error("Driver update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver"})
		return
	}

	c.JSON(http.StatusOK, driver.Record())
}

// DeleteDriver removes a driver. Their shifts keep the dangling foreign
// key, deletion does not cascade.
func DeleteDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format"})
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			logrus.WithError(err).Error("Error fetching driver for deletion")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver"})
		}
		return
	}

	if err := config.DB.Delete(&driver).Error; err != nil {
		logrus.WithError(err).Error("Driver deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}
