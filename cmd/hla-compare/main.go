// Package main provides the hla-compare command-line tool: it aggregates
// HLA typing results from several tools and renders them as static HTML
// tables.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Configuration keys. Every input root is supplied through configuration
// (flag, environment, or config file); only the defaults live here.
const (
	keyHISATDir      = "dirs.hisat"
	keyEstimationDir = "dirs.estimation"
	keyOptiTypeDir   = "dirs.optitype"
	keyHLALADir      = "dirs.hlala"
	keyOutputDir     = "dirs.output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "hla-compare",
		Short:   "Aggregate and compare HLA typing results",
		Long:    "hla-compare collects per-sample HLA typing output from HISAT-genotype, HLA-HD, OptiType, and HLA-LA, normalizes the allele calls, and renders static HTML summary and comparison tables.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newSummaryCmd(&verbose))
	cmd.AddCommand(newCompareCmd(&verbose))
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig wires viper: optional ~/.hla-compare.yaml config file plus
// HLA_COMPARE_* environment overrides for every key.
func initConfig() error {
	viper.SetDefault(keyHISATDir, "hisat.output")
	viper.SetDefault(keyEstimationDir, "estimation")
	viper.SetDefault(keyOptiTypeDir, "optitype_output")
	viper.SetDefault(keyHLALADir, "hla-la.working")
	viper.SetDefault(keyOutputDir, "comparison_results")

	viper.SetEnvPrefix("HLA_COMPARE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".hla-compare")
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}
	return nil
}

// newLogger builds the stderr logger used for warnings and progress detail.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
