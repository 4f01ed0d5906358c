package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidArgument is returned when a statistic is requested over an
// empty sequence.
var ErrInvalidArgument = errors.New("invalid argument")

// Mean calculates the arithmetic mean of data.
// Returns ErrInvalidArgument when data is empty.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate mean of empty sequence", ErrInvalidArgument)
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), nil
}

// Median calculates the median of data from a sorted copy. For an even
// number of elements the two central elements are averaged.
// Returns ErrInvalidArgument when data is empty.
func Median(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate median of empty sequence", ErrInvalidArgument)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// Variance calculates the population variance of data: the mean of squared
// deviations from Mean(data), with divisor n.
// Returns ErrInvalidArgument when data is empty.
func Variance(data []float64) (float64, error) {
	mean, err := Mean(data)
	if err != nil {
		return 0, err
	}

	sumSq := 0.0
	for _, v := range data {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(data)), nil
}

// StdDev calculates the population standard deviation of data as the square
// root of Variance(data).
// Returns ErrInvalidArgument when data is empty.
func StdDev(data []float64) (float64, error) {
	variance, err := Variance(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Min returns the smallest value in data.
// Returns ErrInvalidArgument when data is empty.
func Min(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate min of empty sequence", ErrInvalidArgument)
	}

	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the largest value in data.
// Returns ErrInvalidArgument when data is empty.
func Max(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate max of empty sequence", ErrInvalidArgument)
	}

	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}
