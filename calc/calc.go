package calc

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when an operation's precondition is
// violated (division by zero, factorial of a negative integer).
var ErrInvalidArgument = errors.New("invalid argument")

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b.
// Returns ErrInvalidArgument when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	}
	return a / b, nil
}

// Power returns base raised to exponent using math.Pow semantics.
// The exponent may be negative or fractional. A negative base with a
// fractional exponent yields NaN, per math.Pow; no error is returned.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// Factorial returns n! computed iteratively as the product of 2..n,
// with Factorial(0) == Factorial(1) == 1.
// Returns ErrInvalidArgument when n is negative. Results beyond the int64
// range wrap with native integer semantics.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial is not defined for negative numbers, got %d", ErrInvalidArgument, n)
	}

	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}
	return result, nil
}
