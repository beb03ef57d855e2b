package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func bindCreateEvaluation(t *testing.T, body string) (createEvaluationInput, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var in createEvaluationInput
	err := c.ShouldBindJSON(&in)
	return in, err
}

func TestCreateEvaluationBindsWithDurationOnly(t *testing.T) {
	in, err := bindCreateEvaluation(t, `{"period_end":"2026-03-31","duration_days":7}`)
	if err != nil {
		t.Fatalf("bind with duration_days only: %v", err)
	}

	start, end, err := evaluationPeriod(in)
	if err != nil {
		t.Fatalf("evaluationPeriod: %v", err)
	}
	if got := end.Format("2006-01-02"); got != "2026-03-31" {
		t.Errorf("end = %s, want 2026-03-31", got)
	}
	if got := start.Format("2006-01-02"); got != "2026-03-25" {
		t.Errorf("start = %s, want 2026-03-25", got)
	}
}

func TestEvaluationPeriodDurations(t *testing.T) {
	cases := []struct {
		days      int
		wantStart string
	}{
		{7, "2026-03-25"},
		{14, "2026-03-18"},
		{30, "2026-03-02"},
	}
	for _, tc := range cases {
		in := createEvaluationInput{PeriodEnd: "2026-03-31", DurationDays: tc.days}
		start, end, err := evaluationPeriod(in)
		if err != nil {
			t.Fatalf("days=%d: %v", tc.days, err)
		}
		if got := start.Format("2006-01-02"); got != tc.wantStart {
			t.Errorf("days=%d: start = %s, want %s", tc.days, got, tc.wantStart)
		}
		// window spans exactly days calendar days inclusive
		if span := int(end.Sub(start).Hours()/24) + 1; span != tc.days {
			t.Errorf("days=%d: span = %d", tc.days, span)
		}
	}
}

func TestEvaluationPeriodExplicitDates(t *testing.T) {
	in := createEvaluationInput{PeriodStart: "2026-03-01", PeriodEnd: "2026-03-15"}
	start, end, err := evaluationPeriod(in)
	if err != nil {
		t.Fatalf("evaluationPeriod: %v", err)
	}
	if !start.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestEvaluationPeriodRejectsBadInput(t *testing.T) {
	cases := []createEvaluationInput{
		{PeriodEnd: "2026-03-31"},                   // neither start nor duration
		{PeriodEnd: "2026-03-31", DurationDays: 10}, // not a preset window
		{PeriodEnd: "not-a-date", DurationDays: 7},
		{PeriodStart: "bad", PeriodEnd: "2026-03-31"},
	}
	for i, in := range cases {
		if _, _, err := evaluationPeriod(in); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
