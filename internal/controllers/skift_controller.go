package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taxi_admin/internal/alerts"
	"taxi_admin/internal/config"
	"taxi_admin/internal/mapping"
	"taxi_admin/internal/models"
)

// skiftInput is the Norwegian-keyed body of the collection POST. Dates are
// RFC 3339 strings; stop fields stay unset for an open skift.
type skiftInput struct {
	SkiftNummer   string  `json:"skiftNummer" binding:"required"`
	KmMellomSkift float64 `json:"kmMellomSkift" binding:"min=0"`
	StartDato     string  `json:"startDato" binding:"required"`
	SluttDato     *string `json:"sluttDato,omitempty"`
	StartTid      string  `json:"startTid" binding:"required"`
	SluttTid      *string `json:"sluttTid,omitempty"`
	LonnBasis     float64 `json:"lonnBasis" binding:"min=0"`
	StartKm       float64 `json:"startKm" binding:"min=0"`
	SluttKm       float64 `json:"sluttKm" binding:"min=0"`
	TotalKm       float64 `json:"totalKm" binding:"min=0"`
	AntTurer      int     `json:"antTurer" binding:"min=0"`
	KmOpptatt     float64 `json:"kmOpptatt" binding:"min=0"`
	TipsKontant   float64 `json:"tipsKontant" binding:"min=0"`
	TipsKreditt   float64 `json:"tipsKreditt" binding:"min=0"`
	Netto         float64 `json:"netto"`
	Loyve         *string `json:"loyve,omitempty"`
	SjaforID      uint    `json:"sjåforId" binding:"required"`
	BilID         uint    `json:"bilId" binding:"required"`
}

// skiftUpdateInput is the English-keyed body of the by-id PUT.
type skiftUpdateInput struct {
	SkiftNumber    string  `json:"skiftNumber" binding:"required"`
	KmBetweenSkift float64 `json:"kmBetweenSkift" binding:"min=0"`
	StartDate      string  `json:"startDate" binding:"required"`
	StopDate       *string `json:"stopDate,omitempty"`
	StartTime      string  `json:"startTime" binding:"required"`
	StopTime       *string `json:"stopTime,omitempty"`
	SalaryBasis    float64 `json:"salaryBasis" binding:"min=0"`
	StartKm        float64 `json:"startKm" binding:"min=0"`
	StopKm         float64 `json:"stopKm" binding:"min=0"`
	TotalKm        float64 `json:"totalKm" binding:"min=0"`
	AntTurer       int     `json:"antTurer" binding:"min=0"`
	KmOpptatt      float64 `json:"kmOpptatt" binding:"min=0"`
	TipsKontant    float64 `json:"tipsKontant" binding:"min=0"`
	TipsKreditt    float64 `json:"tipsKreditt" binding:"min=0"`
	Netto          float64 `json:"netto"`
	DriverID       uint    `json:"driverId" binding:"required"`
	CarID          uint    `json:"carId" binding:"required"`
}

// reconcileVarsel runs the alert upsert for one skift. Failures are logged
// and swallowed, a varsel problem never fails the skift write itself.
func reconcileVarsel(s models.Skift) {
	if _, err := alerts.Reconcile(config.DB, alerts.MetricsFor(s)); err != nil {
		logrus.WithError(err).WithField("skift_number", s.SkiftNumber).Error("Varsel reconciliation failed")
	}
}

// ListSkifts returns every skift with driver and car, Norwegian-keyed,
// newest first.
func ListSkifts(c *gin.Context) {
	var skifts []models.Skift
	err := config.DB.
		Preload("Driver").
		Preload("Car").
		Order("start_date DESC").
		Find(&skifts).Error
	if err != nil {
		logrus.WithError(err).Error("Error listing skifts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skifts"})
		return
	}

	out := make([]map[string]any, 0, len(skifts))
	for _, s := range skifts {
		out = append(out, mapping.ToNorwegian(s.Record(), mapping.KindSkift))
	}

	c.JSON(http.StatusOK, out)
}

func GetSkift(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skift ID format"})
		return
	}

	var skift models.Skift
	err = config.DB.Preload("Driver").Preload("Car").First(&skift, uint(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skift not found"})
		} else {
			logrus.WithError(err).Error("Error fetching skift")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skift"})
		}
		return
	}

	c.JSON(http.StatusOK, skift.Record())
}

// CreateSkift persists a new skift and immediately evaluates it against the
// alert thresholds.
func CreateSkift(c *gin.Context) {
	var input skiftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	var skift models.Skift
	rec := mapping.FromNorwegian(recordOf(input), mapping.KindSkift)
	if err := decodeRecord(rec, &skift); err != nil {
		// reached when a date string is not RFC 3339
		abortValidation(c, err)
		return
	}

	if err := config.DB.Create(&skift).Error; err != nil {
		logrus.WithError(err).Error("Skift creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skift"})
		return
	}

	reconcileVarsel(skift)

	if err := config.DB.Preload("Driver").Preload("Car").First(&skift, skift.ID).Error; err != nil {
		logrus.WithError(err).Error("Error reloading created skift")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skift"})
		return
	}

	c.JSON(http.StatusCreated, mapping.ToNorwegian(skift.Record(), mapping.KindSkift))
}

// UpdateSkift replaces a skift's fields and re-evaluates its varsel.
func UpdateSkift(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skift ID format"})
		return
	}

	var skift models.Skift
	if err := config.DB.First(&skift, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skift not found"})
		} else {
			logrus.WithError(err).Error("Error fetching skift for update")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skift"})
		}
		return
	}

	var input skiftUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valideringsfeil", "details": []string{"Field 'startDate' must be an RFC 3339 datetime"}})
		return
	}
	var stopDate *time.Time
	if input.StopDate != nil {
		parsed, err := time.Parse(time.RFC3339, *input.StopDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valideringsfeil", "details": []string{"Field 'stopDate' must be an RFC 3339 datetime"}})
			return
		}
		stopDate = &parsed
	}

	skift.SkiftNumber = input.SkiftNumber
	skift.KmBetweenSkift = input.KmBetweenSkift
	skift.StartDate = startDate
	skift.StopDate = stopDate
	skift.StartTime = input.StartTime
	if input.StopTime != nil {
		skift.StopTime = *input.StopTime
	} else {
		skift.StopTime = ""
	}
	skift.SalaryBasis = input.SalaryBasis
	skift.StartKm = input.StartKm
	skift.StopKm = input.StopKm
	skift.TotalKm = input.TotalKm
	skift.AntTurer = input.AntTurer
	skift.KmOpptatt = input.KmOpptatt
	skift.TipsKontant = input.TipsKontant
	skift.TipsKreditt = input.TipsKreditt
	skift.Netto = input.Netto
	skift.DriverID = input.DriverID
	skift.CarID = input.CarID

	if err := config.DB.Save(&skift).Error; err != nil {
		logrus.WithError(err).Error("Skift update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skift"})
		return
	}

	reconcileVarsel(skift)

	if err := config.DB.Preload("Driver").Preload("Car").First(&skift, skift.ID).Error; err != nil {
		logrus.WithError(err).Error("Error reloading updated skift")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skift"})
		return
	}

	c.JSON(http.StatusOK, skift.Record())
}

func DeleteSkift(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skift ID format"})
		return
	}

	var skift models.Skift
	if err := config.DB.First(&skift, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skift not found"})
		} else {
			logrus.WithError(err).Error("Error fetching skift for deletion")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skift"})
		}
		return
	}

	if err := config.DB.Delete(&skift).Error; err != nil {
		logrus.WithError(err).Error("Skift deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skift deleted successfully"})
}
