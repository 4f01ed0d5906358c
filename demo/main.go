// Package main demonstrates the calc and stats packages on a sample dataset.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gocalc/calc"
	"github.com/sartorproj/gocalc/dataset"
	"github.com/sartorproj/gocalc/stats"
)

const (
	flagInput     = "input"
	flagColumn    = "column"
	flagOutput    = "output"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	logFormatJSON = "json"
	logFormatText = "text"
)

// defaultData is the sample sequence used when no input file is given.
var defaultData = []float64{2, 4, 6, 8, 10, 12, 14}

func main() {
	if err := newDemoCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Runs the calculator and statistics demos and writes a summary file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			data, err := loadData(cmd, logger)
			if err != nil {
				return err
			}

			if err := runCalculatorDemo(); err != nil {
				return err
			}
			mean, err := runStatisticsDemo(data)
			if err != nil {
				return err
			}

			outPath, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}
			if err := writeSummary(outPath, data, mean); err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}

			logger.Info().Str("path", outPath).Msg("results written")
			return nil
		},
	}

	cmd.Flags().String(flagInput, "", "CSV file to load the sample data from")
	cmd.Flags().String(flagColumn, "y", "value column to read from the CSV file")
	cmd.Flags().String(flagOutput, "output.txt", "file to write the summary lines to")
	cmd.Flags().String(flagLogLevel, zerolog.InfoLevel.String(), "logging level")
	cmd.Flags().String(flagLogFormat, logFormatText, "logging format (text|json)")

	return cmd
}

func newLogger(cmd *cobra.Command) (zerolog.Logger, error) {
	logLvlStr, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	logLvl, err := zerolog.ParseLevel(logLvlStr)
	if err != nil {
		return zerolog.Nop(), err
	}

	logFormatStr, err := cmd.Flags().GetString(flagLogFormat)
	if err != nil {
		return zerolog.Nop(), err
	}

	var logWriter io.Writer
	switch strings.ToLower(logFormatStr) {
	case logFormatJSON:
		logWriter = os.Stderr

	case logFormatText:
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr}

	default:
		return zerolog.Nop(), fmt.Errorf("invalid logging format: %s", logFormatStr)
	}

	return zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger(), nil
}

func loadData(cmd *cobra.Command, logger zerolog.Logger) ([]float64, error) {
	input, err := cmd.Flags().GetString(flagInput)
	if err != nil {
		return nil, err
	}
	if input == "" {
		return defaultData, nil
	}

	column, err := cmd.Flags().GetString(flagColumn)
	if err != nil {
		return nil, err
	}

	data, err := dataset.LoadCSVColumn(input, column)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", input, err)
	}

	logger.Info().Str("file", input).Str("column", column).Int("n", len(data)).Msg("loaded dataset")
	return data, nil
}

func runCalculatorDemo() error {
	fmt.Println("=== Calculator Demo ===")
	fmt.Printf("5 + 3 = %g\n", calc.Add(5, 3))
	fmt.Printf("10 - 4 = %g\n", calc.Subtract(10, 4))
	fmt.Printf("6 * 7 = %g\n", calc.Multiply(6, 7))

	quot, err := calc.Divide(15, 3)
	if err != nil {
		return err
	}
	fmt.Printf("15 / 3 = %g\n", quot)

	fmt.Printf("2^8 = %g\n", calc.Power(2, 8))

	fact, err := calc.Factorial(5)
	if err != nil {
		return err
	}
	fmt.Printf("5! = %d\n", fact)

	return nil
}

func runStatisticsDemo(data []float64) (float64, error) {
	fmt.Println("\n=== Statistics Demo ===")
	fmt.Printf("Data: %v\n", data)

	mean, err := stats.Mean(data)
	if err != nil {
		return 0, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return 0, err
	}
	variance, err := stats.Variance(data)
	if err != nil {
		return 0, err
	}
	stdDev, err := stats.StdDev(data)
	if err != nil {
		return 0, err
	}

	fmt.Printf("Mean: %g\n", mean)
	fmt.Printf("Median: %g\n", median)
	fmt.Printf("Variance: %g\n", variance)
	fmt.Printf("Std Dev: %.2f\n", stdDev)

	normalized := stats.MinMaxNormalize(data)
	formatted := make([]string, len(normalized))
	for i, v := range normalized {
		formatted[i] = fmt.Sprintf("%.2f", v)
	}
	fmt.Printf("Normalized: [%s]\n", strings.Join(formatted, " "))

	return mean, nil
}

func writeSummary(path string, data []float64, mean float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "Calculator: 5 + 3 = %g\n", calc.Add(5, 3)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(file, "Statistics: Mean of %v = %g\n", data, mean); err != nil {
		return err
	}

	return nil
}
