// Package stats provides descriptive statistics over numeric sequences.
//
// All functions are pure: the input slice is never mutated and results are
// newly allocated. Sequences are finite, ordered slices of float64.
//
// # Summary Statistics
//
// Calculate summary statistics:
//
//	data := []float64{2, 4, 6, 8, 10, 12, 14}
//	m, err := stats.Mean(data)
//	med, err := stats.Median(data)
//	v, err := stats.Variance(data)   // population variance, divisor n
//	sd, err := stats.StdDev(data)
//	lo, err := stats.Min(data)
//	hi, err := stats.Max(data)
//
// Every summary statistic returns ErrInvalidArgument for an empty sequence.
//
// # Normalization
//
// Rescale values into [0, 1] using the sequence's own minimum and maximum:
//
//	norm := stats.MinMaxNormalize(data)
//
// Unlike the summary statistics, MinMaxNormalize accepts an empty sequence
// and returns an empty one; when all elements are equal, every output
// element is 0.5.
package stats
