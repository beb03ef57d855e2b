package controllers

import (
	"net/http"
	"strconv"

	"nutrisnap/config"
	"nutrisnap/middlewares"
	"nutrisnap/services"

	"github.com/gin-gonic/gin"
)

func ListNutritionists(c *gin.Context) {
	svc := services.NewNutritionistService(config.DB)
	cards, err := svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func GetNutritionist(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nutritionist id"})
		return
	}

	svc := services.NewNutritionistService(config.DB)
	card, err := svc.Get(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func UpsertNutritionistProfile(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var input services.NutritionistProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewNutritionistService(config.DB)
	profile, err := svc.Upsert(sess.UserID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
