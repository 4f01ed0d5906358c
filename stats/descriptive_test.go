package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3},
		{"single", []float64{10}, 10},
		{"fractions", []float64{1.5, 2.5, 3.5}, 2.5},
		{"negative", []float64{-1, -2, -3}, -2},
		{"even spread", []float64{2, 4, 6, 8, 10, 12, 14}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Mean(tt.data)
			require.NoError(t, err)
			require.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"odd length", []float64{1, 2, 3, 4, 5}, 3},
		{"even length", []float64{1, 2, 3, 4}, 2.5},
		{"unsorted", []float64{5, 1, 3, 2, 4}, 3},
		{"single", []float64{10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Median(tt.data)
			require.NoError(t, err)
			require.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	data := []float64{5, 1, 3, 2, 4}
	_, err := Median(data)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 1, 3, 2, 4}, data)
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"constant", []float64{1, 1, 1, 1}, 0},
		{"simple", []float64{1, 2, 3, 4, 5}, 2},
		{"thirds", []float64{2, 4, 6}, 2.6666666666666665},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Variance(tt.data)
			require.NoError(t, err)
			require.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"constant", []float64{5, 5, 5}, 0},
		{"known", []float64{2, 4, 6, 8}, 2.2360679774997896},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := StdDev(tt.data)
			require.NoError(t, err)
			require.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestVarianceNonNegativeAndStdDevConsistent(t *testing.T) {
	sequences := [][]float64{
		{1},
		{-5, 5},
		{1, 2, 3, 4, 5},
		{0.1, 0.2, 0.3},
		{-100, 0, 100, 3.5},
	}

	for _, data := range sequences {
		v, err := Variance(data)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0.0)

		sd, err := StdDev(data)
		require.NoError(t, err)
		require.InDelta(t, math.Sqrt(v), sd, 1e-12)
	}
}

func TestMinMax(t *testing.T) {
	data := []float64{5, 2, 8, 1, 9, 3}

	min, err := Min(data)
	require.NoError(t, err)
	require.Equal(t, 1.0, min)

	max, err := Max(data)
	require.NoError(t, err)
	require.Equal(t, 9.0, max)
}

func TestEmptySequence(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]float64) (float64, error)
	}{
		{"mean", Mean},
		{"median", Median},
		{"variance", Variance},
		{"std dev", StdDev},
		{"min", Min},
		{"max", Max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn([]float64{})
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
