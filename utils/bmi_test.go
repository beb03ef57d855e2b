package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(170, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 70.0 / (1.7 * 1.7)
	if math.Abs(bmi-want) > 1e-9 {
		t.Errorf("bmi = %v, want %v", bmi, want)
	}
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	cases := []struct{ h, w float64 }{
		{0, 70},
		{170, 0},
		{-170, 70},
		{30, 70},   // implausible height
		{170, 900}, // implausible weight
	}
	for _, c := range cases {
		if _, err := CalculateBMI(c.h, c.w); err == nil {
			t.Errorf("CalculateBMI(%v, %v) accepted garbage", c.h, c.w)
		}
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight"},
		{30.0, "Obesity class I"},
		{35.0, "Obesity class II"},
		{40.0, "Obesity class III"},
	}
	for _, c := range cases {
		if got := BMICategory(c.bmi); got != c.want {
			t.Errorf("BMICategory(%v) = %q, want %q", c.bmi, got, c.want)
		}
	}
}
