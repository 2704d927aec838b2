// Package calc implements the arithmetic operations behind the calculator
// service. Handlers parse and encode; everything numeric lives here.
package calc

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("division by zero is not allowed")

func Add(a, b int) int {
	return a + b
}

func Subtract(a, b int) int {
	return a - b
}

func Multiply(a, b int) int {
	return a * b
}

// Divide returns the real valued quotient a/b. Integer operands, float
// result: 100/4 is 25, 5/2 is 2.5.
func Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return float64(a) / float64(b), nil
}

func Cube(x int) int {
	return x * x * x
}

// Area returns the rectangle area for the given integer dimensions.
func Area(width, height int) int {
	return width * height
}
