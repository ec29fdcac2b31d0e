package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taxi_admin/internal/config"
	"taxi_admin/internal/mapping"
	"taxi_admin/internal/models"
)

type carInput struct {
	SkiltNummer string `json:"skiltNummer" binding:"required"`
	Bilmerke    string `json:"bilmerke" binding:"required"`
	Arsmodell   int    `json:"arsmodell" binding:"required,min=1900"`
}

type carUpdateInput struct {
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	CarBrand      string `json:"carBrand" binding:"required"`
	ModelYear     int    `json:"modelYear" binding:"required,min=1900"`
}

func maxModelYear() int {
	return time.Now().Year() + 1
}

// ListCars returns every car with its five most recent shifts, Norwegian-keyed.
func ListCars(c *gin.Context) {
	var cars []models.Car
	err := config.DB.
		Preload("Skifts", func(db *gorm.DB) *gorm.DB { return db.Order("start_date DESC").Limit(5) }).
		Order("license_number asc").
		Find(&cars).Error
	if err != nil {
		logrus.WithError(err).Error("Error listing cars")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cars"})
		return
	}

	out := make([]map[string]any, 0, len(cars))
	for _, car := range cars {
		out = append(out, mapping.ToNorwegian(car.Record(), mapping.KindCar))
	}

	c.JSON(http.StatusOK, out)
}

func GetCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID format"})
		return
	}

	var car models.Car
	err = config.DB.
		Preload("Skifts", func(db *gorm.DB) *gorm.DB { return db.Order("start_date DESC") }).
		Preload("Skifts.Driver").
		First(&car, uint(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		} else {
			logrus.WithError(err).Error("Error fetching car")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		}
		return
	}

	c.JSON(http.StatusOK, car.Record())
}

func CreateCar(c *gin.Context) {
	var input carInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}
	if input.Arsmodell > maxModelYear() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valideringsfeil", "details": []string{"Field 'arsmodell' is in the future"}})
		return
	}

	var car models.Car
	rec := mapping.FromNorwegian(recordOf(input), mapping.KindCar)
	if err := decodeRecord(rec, &car); err != nil {
		abortValidation(c, err)
		return
	}

	if err := config.DB.Create(&car).Error; err != nil {
		if msg, ok := uniqueConflictMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		logrus.WithError(err).Error("Car creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
		return
	}

	c.JSON(http.StatusCreated, mapping.ToNorwegian(car.Record(), mapping.KindCar))
}

func UpdateCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID format"})
		return
	}

	var car models.Car
	if err := config.DB.First(&car, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		} else {
			logrus.WithError(err).Error("Error fetching car for update")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		}
		return
	}

	var input carUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}
	if input.ModelYear > maxModelYear() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valideringsfeil", "details": []string{"Field 'modelYear' is in the future"}})
		return
	}

	car.LicenseNumber = input.LicenseNumber
	car.CarBrand = input.CarBrand
	car.ModelYear = input.ModelYear

	if err := config.DB.Save(&car).Error; err != nil {
		if msg, ok := uniqueConflictMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		logrus.WithError(err).Error("Car update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		return
	}

	c.JSON(http.StatusOK, car.Record())
}

func DeleteCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID format"})
		return
	}

	var car models.Car
	if err := config.DB.First(&car, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		} else {
			logrus.WithError(err).Error("Error fetching car for deletion")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		}
		return
	}

	if err := config.DB.Delete(&car).Error; err != nil {
		logrus.WithError(err).Error("Car deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}
