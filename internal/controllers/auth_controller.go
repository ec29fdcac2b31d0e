package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taxi_admin/internal/config"
	"taxi_admin/internal/middleware"
	"taxi_admin/internal/models"
)

// The same text is returned for an unknown username and a wrong password,
// callers must not be able to tell the two apart.
const invalidCredentials = "Ugyldig brukernavn eller passord"

func Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortValidation(c, err)
		return
	}

	var user models.User
	err := config.DB.Where("username = ?", body.Username).
		Preload("Driver").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
		} else {
			logrus.WithError(err).Error("Login lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Intern serverfeil"})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role, user.DriverID)
	if err != nil {
		logrus.WithError(err).Error("Could not generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Intern serverfeil"})
		return
	}

	response := gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"driverId": user.DriverID,
		"token":    token,
	}
	if user.Driver != nil {
		response["driver"] = gin.H{
			"id":             user.Driver.ID,
			"name":           user.Driver.Name,
			"lastName":       user.Driver.LastName,
			"driverNumber":   user.Driver.DriverNumber,
			"hideFromOthers": user.Driver.HideFromOthers,
		}
	} else {
		response["driver"] = nil
	}

	c.JSON(http.StatusOK, response)
}
