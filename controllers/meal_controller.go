package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"nutrisnap/config"
	"nutrisnap/middlewares"
	"nutrisnap/services"
	"nutrisnap/utils"

	"github.com/gin-gonic/gin"
)

type mealBody struct {
	PhotoBase64 string    `json:"photo_base64"` // data URI; uploaded to S3
	PhotoURL    string    `json:"photo_url"`    // already-hosted alternative
	Type        string    `json:"type"`
	AteAt       time.Time `json:"ate_at"`
	Description string    `json:"description"`
}

// resolvePhoto uploads the base64 payload if present. Upload failures
// surface to the client; there is no silent fallback.
func resolvePhoto(body mealBody) (url, key string, err error) {
	if body.PhotoBase64 == "" {
		return body.PhotoURL, "", nil
	}
	url, key, err = utils.UploadBase64Image(body.PhotoBase64, "meal-photos")
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}
	return url, key, nil
}

func LogMeal(c *gin.Context) {
	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := middlewares.SessionFrom(c)

	url, key, err := resolvePhoto(body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.Add(sess.UserID, services.MealInput{
		PhotoURL:    url,
		PhotoKey:    key,
		Type:        body.Type,
		AteAt:       body.AteAt,
		Description: body.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// QuickCaptureMeal: photo in, meal out. Timestamp is now and the type
// comes from the quick-capture boundary table.
func QuickCaptureMeal(c *gin.Context) {
	var body struct {
		PhotoBase64 string `json:"photo_base64"`
		PhotoURL    string `json:"photo_url"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := middlewares.SessionFrom(c)

	url, key, err := resolvePhoto(mealBody{PhotoBase64: body.PhotoBase64, PhotoURL: body.PhotoURL})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.QuickCapture(sess.UserID, url, key, body.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	mealSvc := services.NewMealService(config.DB)

	if from, to, ok := dateRangeParams(c); ok {
		meals, err := mealSvc.ListByDateRange(sess.UserID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := mealSvc.List(sess.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetMeal(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.Get(sess.UserID, uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func UpdateMeal(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, key, err := resolvePhoto(body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.Update(sess.UserID, uint(id), services.MealInput{
		PhotoURL:    url,
		PhotoKey:    key,
		Type:        body.Type,
		AteAt:       body.AteAt,
		Description: body.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	if err := mealSvc.Delete(sess.UserID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func MealStats(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	from, to, ok := dateRangeParams(c)
	if !ok {
		// default: last 7 days
		to = time.Now()
		from = to.AddDate(0, 0, -6)
	}

	statsSvc := services.NewStatsService(config.DB)
	stats, err := statsSvc.MealStatsForRange(sess.UserID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func dateRangeParams(c *gin.Context) (from, to time.Time, ok bool) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, false
	}
	from, err1 := time.Parse("2006-01-02", fromStr)
	to, err2 := time.Parse("2006-01-02", toStr)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
