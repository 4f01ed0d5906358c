// Package gocalc provides basic arithmetic and descriptive statistics.
//
// GoCalc is a small Go library with two independent, stateless components:
// a calculator performing guarded arithmetic and a statistics helper
// computing descriptive statistics over numeric sequences. Both expose pure
// functions; every call is independently reproducible given its inputs.
//
// # Quick Start
//
// Arithmetic:
//
//	sum := calc.Add(5, 3)
//	quot, err := calc.Divide(15, 3)
//	fact, err := calc.Factorial(5)
//
// Descriptive statistics:
//
//	data := []float64{2, 4, 6, 8, 10, 12, 14}
//	m, _ := stats.Mean(data)
//	sd, _ := stats.StdDev(data)
//	norm := stats.MinMaxNormalize(data)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - calc: arithmetic operations (add, subtract, multiply, divide, power, factorial)
//   - stats: descriptive statistics (mean, median, variance, standard deviation, min-max normalization)
//   - dataset: loading numeric sequences from CSV files
//
// # Errors
//
// Each component defines a single sentinel, ErrInvalidArgument, returned
// whenever an operation's precondition is violated (division by zero,
// factorial of a negative integer, statistics over an empty sequence).
// Errors are raised synchronously and never recovered internally; test for
// them with errors.Is.
package gocalc
