package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"taxi_admin/internal/alerts"
	"taxi_admin/internal/config"
	"taxi_admin/internal/models"
)

// ListVarsler returns every alert, newest first, with a Norwegian-keyed
// summary of the shift, driver and car it points at.
func ListVarsler(c *gin.Context) {
	var varsler []models.Varsel
	err := config.DB.
		Preload("Skift").
		Preload("Skift.Driver").
		Preload("Skift.Car").
		Order("created_at DESC").
		Find(&varsler).Error
	if err != nil {
		logrus.WithError(err).Error("Error listing varsler")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch varsler"})
		return
	}

	out := make([]gin.H, 0, len(varsler))
	for _, v := range varsler {
		out = append(out, gin.H{
			"id":             v.ID,
			"skiftId":        v.SkiftID,
			"skiftNummer":    v.SkiftNumber,
			"kmOpptatt":      v.KmOpptatt,
			"opptattProsent": math.Round(v.OpptattProsent*100) / 100,
			"antTurer":       v.AntTurer,
			"lonnBasis":      v.LonnBasis,
			"reason":         v.Reason,
			"createdAt":      v.CreatedAt,
			"updatedAt":      v.UpdatedAt,
			"skift": gin.H{
				"id":          v.Skift.ID,
				"skiftNummer": v.Skift.SkiftNumber,
				"startDato":   v.Skift.StartDate,
				"sluttDato":   v.Skift.StopDate,
				"startTid":    v.Skift.StartTime,
				"sluttTid":    v.Skift.StopTime,
				"totalKm":     v.Skift.TotalKm,
				"driver": gin.H{
					"id":           v.Skift.Driver.ID,
					"fornavn":      v.Skift.Driver.Name,
					"etternavn":    v.Skift.Driver.LastName,
					"sjåforNummer": v.Skift.Driver.DriverNumber,
				},
				"car": gin.H{
					"id":          v.Skift.Car.ID,
					"skiltNummer": v.Skift.Car.LicenseNumber,
					"bilmerke":    v.Skift.Car.CarBrand,
					"arsmodell":   v.Skift.Car.ModelYear,
				},
			},
		})
	}

	c.JSON(http.StatusOK, out)
}

// CheckAllSkifts sweeps every skift and reconciles the varsel table.
func CheckAllSkifts(c *gin.Context) {
	summary, err := alerts.CheckAll(config.DB)
	if err != nil {
		logrus.WithError(err).Error("Check-all sweep failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to check skifts",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sjekking av alle skift fullført",
		"summary": summary,
	})
}
