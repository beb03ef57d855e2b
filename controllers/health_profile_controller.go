package controllers

import (
	"net/http"

	"nutrisnap/config"
	"nutrisnap/middlewares"
	"nutrisnap/services"
	"nutrisnap/utils"

	"github.com/gin-gonic/gin"
)

func GetHealthProfile(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	svc := services.NewHealthProfileService(config.DB)
	profile, err := svc.Get(sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"bmi_category": utils.BMICategory(profile.BMI),
	})
}

func UpsertHealthProfile(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var input services.HealthProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewHealthProfileService(config.DB)
	profile, err := svc.Upsert(sess.UserID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"bmi_category": utils.BMICategory(profile.BMI),
	})
}
