package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"nutrisnap/config"
	"nutrisnap/middlewares"
	"nutrisnap/models"
	"nutrisnap/services"

	"github.com/gin-gonic/gin"
)

type createEvaluationInput struct {
	NutritionistID *uint  `json:"nutritionist_id"` // omit for the open pool
	PeriodStart    string `json:"period_start"`    // YYYY-MM-DD, or use duration_days
	PeriodEnd      string `json:"period_end" binding:"required"`
	DurationDays   int    `json:"duration_days"` // 7/14/30 shorthand, replaces period_start
}

// evaluationPeriod resolves the requested date range. duration_days is
// the app's preset-window shorthand counted back from period_end; when
// set it takes the place of period_start.
func evaluationPeriod(in createEvaluationInput) (time.Time, time.Time, error) {
	end, err := time.Parse("2006-01-02", in.PeriodEnd)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("period_end must be YYYY-MM-DD")
	}

	switch in.DurationDays {
	case 0:
		if in.PeriodStart == "" {
			return time.Time{}, time.Time{}, errors.New("period_start or duration_days is required")
		}
		start, err := time.Parse("2006-01-02", in.PeriodStart)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("period_start must be YYYY-MM-DD")
		}
		return start, end, nil
	case 7, 14, 30:
		return end.AddDate(0, 0, -(in.DurationDays - 1)), end, nil
	default:
		return time.Time{}, time.Time{}, errors.New("duration_days must be 7, 14 or 30")
	}
}

// CreateEvaluation opens a review request over a date range.
func CreateEvaluation(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var input createEvaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := evaluationPeriod(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewEvaluationService(config.DB)
	eval, err := svc.Create(sess.UserID, input.NutritionistID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, evaluationView(eval))
}

// ListEvaluations is role-scoped: patients get their own requests,
// nutritionists get their assigned queue and history.
func ListEvaluations(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	svc := services.NewEvaluationService(config.DB)

	var (
		evals []models.Evaluation
		err   error
	)
	if sess.UserType == models.UserTypeNutritionist {
		evals, err = svc.ListForNutritionist(sess.UserID)
	} else {
		evals, err = svc.ListForPatient(sess.UserID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(evals))
	for i := range evals {
		out = append(out, evaluationView(&evals[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListEvaluationPool shows unclaimed pending requests to nutritionists.
func ListEvaluationPool(c *gin.Context) {
	svc := services.NewEvaluationService(config.DB)
	evals, err := svc.ListPool()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(evals))
	for i := range evals {
		out = append(out, evaluationView(&evals[i]))
	}
	c.JSON(http.StatusOK, out)
}

func GetEvaluation(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, ok := evaluationID(c)
	if !ok {
		return
	}

	svc := services.NewEvaluationService(config.DB)
	eval, err := svc.GetForUser(id, sess.UserID, sess.UserType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationView(eval))
}

func AcceptEvaluation(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, ok := evaluationID(c)
	if !ok {
		return
	}

	svc := services.NewEvaluationService(config.DB)
	eval, err := svc.Accept(id, sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationView(eval))
}

func RejectEvaluation(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, ok := evaluationID(c)
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewEvaluationService(config.DB)
	eval, err := svc.Reject(id, sess.UserID, body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationView(eval))
}

func SaveEvaluationFeedback(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, ok := evaluationID(c)
	if !ok {
		return
	}

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewEvaluationService(config.DB)
	eval, err := svc.SaveDraftFeedback(id, sess.UserID, body.Feedback)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationView(eval))
}

func CompleteEvaluation(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	id, ok := evaluationID(c)
	if !ok {
		return
	}

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewEvaluationService(config.DB)
	eval, err := svc.Complete(id, sess.UserID, body.Feedback)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationView(eval))
}

func evaluationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid evaluation id"})
		return 0, false
	}
	return uint(id), true
}

// evaluationView renders an evaluation with the display alias for the
// accepted status alongside the stored one.
func evaluationView(e *models.Evaluation) gin.H {
	return gin.H{
		"evaluation":     e,
		"status_display": models.StatusDisplay(e.Status),
	}
}
