package utils

import "time"

// The six meal categories a timestamp can classify into.
const (
	MealBreakfast      = "breakfast"
	MealMorningSnack   = "morning_snack"
	MealLunch          = "lunch"
	MealAfternoonSnack = "afternoon_snack"
	MealDinner         = "dinner"
	MealSupper         = "supper"
)

// MealTypes lists every valid category.
var MealTypes = []string{
	MealBreakfast,
	MealMorningSnack,
	MealLunch,
	MealAfternoonSnack,
	MealDinner,
	MealSupper,
}

// MealTimePolicy is a named boundary table mapping time of day to a meal
// category. All values are minutes since midnight. DayStart is the
// inclusive start of breakfast; each *End is the inclusive end of its
// slot, so morning snack covers (BreakfastEnd, MorningSnackEnd] and so
// on. Anything before DayStart or after DinnerEnd is supper.
type MealTimePolicy struct {
	Name              string
	DayStart          int
	BreakfastEnd      int
	MorningSnackEnd   int
	LunchEnd          int
	AfternoonSnackEnd int
	DinnerEnd         int
}

// StandardPolicy is the canonical table: breakfast 05:00–09:00, morning
// snack to 11:00, lunch to 14:00, afternoon snack to 17:00, dinner to
// 21:00, supper otherwise.
var StandardPolicy = MealTimePolicy{
	Name:              "standard",
	DayStart:          5 * 60,
	BreakfastEnd:      9 * 60,
	MorningSnackEnd:   11 * 60,
	LunchEnd:          14 * 60,
	AfternoonSnackEnd: 17 * 60,
	DinnerEnd:         21 * 60,
}

// QuickCapturePolicy is the wider table used by the one-tap photo path:
// breakfast 05:00–10:00, snack to 12:00, lunch to 15:00, afternoon
// snack to 18:00, dinner to 22:00.
var QuickCapturePolicy = MealTimePolicy{
	Name:              "quick_capture",
	DayStart:          5 * 60,
	BreakfastEnd:      10 * 60,
	MorningSnackEnd:   12 * 60,
	LunchEnd:          15 * 60,
	AfternoonSnackEnd: 18 * 60,
	DinnerEnd:         22 * 60,
}

// Classify maps a timestamp to exactly one meal category. Total and
// pure: only the wall-clock hour and minute matter.
func (p MealTimePolicy) Classify(t time.Time) string {
	mins := t.Hour()*60 + t.Minute()
	switch {
	case mins < p.DayStart:
		return MealSupper
	case mins <= p.BreakfastEnd:
		return MealBreakfast
	case mins <= p.MorningSnackEnd:
		return MealMorningSnack
	case mins <= p.LunchEnd:
		return MealLunch
	case mins <= p.AfternoonSnackEnd:
		return MealAfternoonSnack
	case mins <= p.DinnerEnd:
		return MealDinner
	default:
		return MealSupper
	}
}

// ClassifyMealTime applies the canonical StandardPolicy.
func ClassifyMealTime(t time.Time) string {
	return StandardPolicy.Classify(t)
}

// ValidMealType reports whether s is one of the six categories.
func ValidMealType(s string) bool {
	for _, m := range MealTypes {
		if s == m {
			return true
		}
	}
	return false
}
