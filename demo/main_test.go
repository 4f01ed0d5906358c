package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gocalc/calc"
	"github.com/sartorproj/gocalc/stats"
)

func TestWriteSummary(t *testing.T) {
	mean, err := stats.Mean(defaultData)
	require.NoError(t, err)
	require.Equal(t, 8.0, mean)
	require.Equal(t, 8.0, calc.Add(5, 3))

	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, writeSummary(path, defaultData, mean))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"Calculator: 5 + 3 = 8\nStatistics: Mean of [2 4 6 8 10 12 14] = 8\n",
		string(content))
}
