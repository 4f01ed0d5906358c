package stats

// MinMaxNormalize rescales data into [0, 1] using the sequence's own
// minimum and maximum as the scale endpoints, preserving order and length.
// An empty sequence yields an empty result, not an error. When all elements
// are equal, every output element is 0.5.
func MinMaxNormalize(data []float64) []float64 {
	result := make([]float64, len(data))
	if len(data) == 0 {
		return result
	}

	min := data[0]
	max := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		for i := range result {
			result[i] = 0.5
		}
		return result
	}

	for i, v := range data {
		result[i] = (v - min) / (max - min)
	}
	return result
}
