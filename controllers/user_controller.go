package controllers

import (
	"net/http"

	"nutrisnap/middlewares"
	"nutrisnap/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	profile, err := services.GetUserProfile(sess.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(sess.Email, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

func DeleteAccount(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	if err := services.DeleteUser(sess.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account disabled"})
}
