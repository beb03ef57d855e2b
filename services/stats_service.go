// services/stats_service.go
package services

import (
	"time"

	"nutrisnap/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// MealStats summarizes a patient's logging habits over a window —
// dashboard data. Counts only, no nutrient math.
type MealStats struct {
	From        time.Time      `json:"from"`
	To          time.Time      `json:"to"`
	TotalMeals  int            `json:"total_meals"`
	CountByType map[string]int `json:"count_by_type"`
	CountByDay  map[string]int `json:"count_by_day"` // keyed YYYY-MM-DD
	DaysLogged  int            `json:"days_logged"`
}

func (s *StatsService) MealStatsForRange(userID uint, from, to time.Time) (*MealStats, error) {
	start := dayStart(from)
	end := dayStart(to).Add(24 * time.Hour)

	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Order("ate_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	stats := &MealStats{
		From:        start,
		To:          dayStart(to),
		TotalMeals:  len(meals),
		CountByType: make(map[string]int),
		CountByDay:  make(map[string]int),
	}
	for _, m := range meals {
		stats.CountByType[m.Type]++
		stats.CountByDay[m.AteAt.Format("2006-01-02")]++
	}
	stats.DaysLogged = len(stats.CountByDay)
	return stats, nil
}
