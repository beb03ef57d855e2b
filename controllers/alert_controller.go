package controllers

import (
	"net/http"
	"strconv"

	"nutrisnap/config"
	"nutrisnap/middlewares"
	"nutrisnap/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	alerts, err := services.ListAlerts(config.DB, sess.UserID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func MarkAlertsRead(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	if err := services.MarkAlertsRead(config.DB, sess.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "alerts marked read"})
}
