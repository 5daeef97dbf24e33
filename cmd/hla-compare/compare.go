package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hlatools/hla-compare/internal/aggregate"
	"github.com/hlatools/hla-compare/internal/hla"
	"github.com/hlatools/hla-compare/internal/report"
)

// topRanks is the consumption policy for ranked-report calls in the
// comparison view: only the two most confident calls per gene are shown.
const topRanks = 2

func newCompareCmd(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Render per-sample method comparison tables",
		Long:  "For every sample under the HISAT-genotype root, collect the output of all four typing methods and render one HTML comparison table per sample, with genes as rows and methods as columns.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindDirFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(*verbose)
		},
	}

	addDirFlags(cmd)

	return cmd
}

func runCompare(verbose bool) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	loc := newLocator()
	builder := aggregate.New(loc)
	builder.SetLogger(logger)

	samples, err := loc.Samples()
	if err != nil {
		return err
	}

	outDir := viper.GetString(keyOutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Printf("Processing %d samples...\n", len(samples))

	for _, sample := range samples {
		fmt.Printf("Processing %s...\n", sample)

		rec, err := builder.BuildSample(sample)
		if err != nil {
			return err
		}

		// Keep only the best two ranked calls per gene in this view.
		if res := rec.Method(hla.MethodHISAT); res != nil {
			rec.Results[hla.MethodHISAT] = res.TopRanked(topRanks)
		}

		outputFile := filepath.Join(outDir, sample+"_comparison.html")
		if err := writeComparison(rec, outputFile); err != nil {
			return err
		}

		fmt.Printf("Generated: %s\n", outputFile)
	}

	fmt.Printf("Done! Generated %d comparison files in %s\n", len(samples), outDir)
	return nil
}

func writeComparison(rec *hla.SampleRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	return report.NewComparisonWriter(f).Write(rec)
}
