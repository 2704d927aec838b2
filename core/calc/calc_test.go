package calc_test

import (
	"errors"
	"testing"

	"github.com/mann-127/duoapi/core/calc"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"add", calc.Add(7, 6), 13},
		{"add negative", calc.Add(-7, 6), -1},
		{"subtract", calc.Subtract(7, 78), -71},
		{"multiply", calc.Multiply(4, 11), 44},
		{"multiply by zero", calc.Multiply(4, 0), 0},
		{"cube", calc.Cube(3), 27},
		{"cube negative", calc.Cube(-2), -8},
		{"area", calc.Area(5, 10), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	got, err := calc.Divide(100, 4)
	if err != nil {
		t.Fatalf("Divide(100, 4) returned error: %v", err)
	}
	if got != 25.0 {
		t.Errorf("Divide(100, 4) = %v, want 25.0", got)
	}

	got, err = calc.Divide(5, 2)
	if err != nil {
		t.Fatalf("Divide(5, 2) returned error: %v", err)
	}
	if got != 2.5 {
		t.Errorf("Divide(5, 2) = %v, want 2.5", got)
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := calc.Divide(5, 0)
	if !errors.Is(err, calc.ErrDivideByZero) {
		t.Fatalf("Divide(5, 0) error = %v, want ErrDivideByZero", err)
	}
}
