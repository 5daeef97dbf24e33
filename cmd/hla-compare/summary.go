package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hlatools/hla-compare/internal/aggregate"
	"github.com/hlatools/hla-compare/internal/locate"
	"github.com/hlatools/hla-compare/internal/report"
)

// addDirFlags registers the input/output directory flags.
func addDirFlags(cmd *cobra.Command) {
	cmd.Flags().String("hisat-dir", "", "HISAT-genotype output root (one subdirectory per sample)")
	cmd.Flags().String("estimation-dir", "", "HLA-HD estimation output root")
	cmd.Flags().String("optitype-dir", "", "OptiType output root")
	cmd.Flags().String("hlala-dir", "", "HLA-LA working root")
	cmd.Flags().String("output-dir", "", "Directory for generated HTML documents")
}

// bindDirFlags binds the directory flags to their configuration keys. Bound
// per invocation so each subcommand's own flag set is the one viper reads.
func bindDirFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		keyHISATDir:      "hisat-dir",
		keyEstimationDir: "estimation-dir",
		keyOptiTypeDir:   "optitype-dir",
		keyHLALADir:      "hlala-dir",
		keyOutputDir:     "output-dir",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// newLocator builds a Locator from the effective configuration.
func newLocator() *locate.Locator {
	return locate.New(locate.Config{
		HISATDir:      viper.GetString(keyHISATDir),
		EstimationDir: viper.GetString(keyEstimationDir),
		OptiTypeDir:   viper.GetString(keyOptiTypeDir),
		HLALADir:      viper.GetString(keyHLALADir),
	})
}

func newSummaryCmd(verbose *bool) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Render the cross-sample results matrix",
		Long:  "Parse every sample's primary (HISAT-genotype) ranked report and render one HTML table with genes as rows and samples as columns.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindDirFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(outputFile, *verbose)
		},
	}

	addDirFlags(cmd)
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: <output-dir>/hisat_results_table.html)")

	return cmd
}

func runSummary(outputFile string, verbose bool) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	loc := newLocator()
	builder := aggregate.New(loc)
	builder.SetLogger(logger)

	fmt.Printf("Parsing results from %s...\n", viper.GetString(keyHISATDir))

	samples, err := loc.Samples()
	if err != nil {
		return err
	}

	corpus, err := builder.Build(samples)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d samples and %d genes\n", len(corpus.SampleIDs()), len(corpus.Genes()))

	if outputFile == "" {
		outDir := viper.GetString(keyOutputDir)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		outputFile = filepath.Join(outDir, "hisat_results_table.html")
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := report.NewSummaryWriter(f).Write(corpus); err != nil {
		return err
	}

	fmt.Printf("HTML table generated: %s\n", outputFile)
	return nil
}
