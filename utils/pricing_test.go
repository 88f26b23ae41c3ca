package utils

import (
	"errors"
	"math"
	"testing"
)

func TestTotalFromPerPerson(t *testing.T) {
	tests := []struct {
		name     string
		pp       float64
		n        int
		expected float64
	}{
		{"whole euros", 25, 20, 500},
		{"cents", 12.5, 3, 37.5},
		{"single person", 99.99, 1, 99.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalFromPerPerson(tt.pp, tt.n)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Fatalf("expected %.2f, got %.2f", tt.expected, got)
			}
		})
	}
}

func TestPerPersonFromTotal(t *testing.T) {
	got, err := PerPersonFromTotal(100, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 33.33 {
		t.Fatalf("expected 33.33, got %.2f", got)
	}
}

func TestPricing_InvalidHeadcount(t *testing.T) {
	for _, n := range []int{0, -4} {
		if _, err := TotalFromPerPerson(10, n); !errors.Is(err, ErrInvalidHeadcount) {
			t.Fatalf("expected ErrInvalidHeadcount for n=%d, got %v", n, err)
		}
		if _, err := PerPersonFromTotal(10, n); !errors.Is(err, ErrInvalidHeadcount) {
			t.Fatalf("expected ErrInvalidHeadcount for n=%d, got %v", n, err)
		}
	}
}

func TestPricing_RoundTrip(t *testing.T) {
	prices := []float64{0.01, 7.77, 15, 33.333, 129.99}
	for _, pp := range prices {
		for n := 1; n <= 250; n += 7 {
			total, err := TotalFromPerPerson(pp, n)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			back, err := PerPersonFromTotal(total, n)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if math.Abs(back*float64(n)-total) > 0.01*float64(n)+1e-9 {
				t.Fatalf("round trip drifted for pp=%v n=%d: total=%v back=%v", pp, n, total, back)
			}
			if !PricesConsistent(total, back, n) {
				t.Fatalf("expected %v and %v to be consistent for n=%d", total, back, n)
			}
		}
	}
}

func TestPricesConsistent(t *testing.T) {
	if PricesConsistent(500, 25, 20) != true {
		t.Fatalf("expected exact prices to be consistent")
	}
	if PricesConsistent(510, 25, 20) {
		t.Fatalf("expected a 10 euro gap to be inconsistent")
	}
	if PricesConsistent(100, 10, 0) {
		t.Fatalf("expected zero headcount to be inconsistent")
	}
}
