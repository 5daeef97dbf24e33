// Package locate discovers per-sample input artifacts for each typing
// method. Every method is optional per sample: a missing artifact is "no
// data", not an error. Only a missing top-level root is fatal.
package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Config holds the input roots, one per typing method. Each is supplied by
// the caller (flags, environment, or config file); nothing here is
// hardcoded.
type Config struct {
	HISATDir      string
	EstimationDir string
	OptiTypeDir   string
	HLALADir      string
}

// Locator resolves sample identifiers to per-method artifact paths.
type Locator struct {
	cfg    Config
	logger *zap.Logger
}

// New returns a Locator over the given roots.
func New(cfg Config) *Locator {
	return &Locator{cfg: cfg, logger: zap.NewNop()}
}

// SetLogger sets the logger used for discovery warnings and progress.
func (l *Locator) SetLogger(logger *zap.Logger) {
	l.logger = logger
}

// Samples lists the sample identifiers under the primary (HISAT) root: one
// per subdirectory, sorted. A missing root is fatal to the run.
func (l *Locator) Samples() ([]string, error) {
	entries, err := os.ReadDir(l.cfg.HISATDir)
	if err != nil {
		return nil, fmt.Errorf("input root %s: %w", l.cfg.HISATDir, err)
	}

	var samples []string
	for _, e := range entries {
		if e.IsDir() {
			samples = append(samples, e.Name())
		}
	}
	sort.Strings(samples)
	return samples, nil
}

// HISATReport finds the ranked-report file for a sample: the first
// *.report in the sample's directory, in lexicographic order.
func (l *Locator) HISATReport(sample string) (string, bool) {
	return l.firstMatch(sample, filepath.Join(l.cfg.HISATDir, sample, "*.report"))
}

// EstimationResult returns the fixed templated path of a sample's
// final-result file.
func (l *Locator) EstimationResult(sample string) (string, bool) {
	path := filepath.Join(l.cfg.EstimationDir, sample, "result", sample+"_final.result.txt")
	return path, fileExists(path)
}

// OptiTypeResult finds the genotype TSV for a sample anywhere under the
// sample's directory: the first *_result.tsv in lexicographic path order.
func (l *Locator) OptiTypeResult(sample string) (string, bool) {
	root := filepath.Join(l.cfg.OptiTypeDir, sample)
	if _, err := os.Stat(root); err != nil {
		return "", false
	}

	var matches []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), "_result.tsv") {
			matches = append(matches, path)
		}
		return nil
	})
	return l.pickOne(sample, matches)
}

// HLALABestGuess returns the fixed templated path of a sample's best-guess
// file.
func (l *Locator) HLALABestGuess(sample string) (string, bool) {
	path := filepath.Join(l.cfg.HLALADir, sample, "hla", "R1_bestguess_G.txt")
	return path, fileExists(path)
}

func (l *Locator) firstMatch(sample, pattern string) (string, bool) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		// Only malformed patterns error, and ours are fixed.
		return "", false
	}
	return l.pickOne(sample, matches)
}

// pickOne resolves a multi-match ambiguity deterministically: sort, take
// the first, and warn so a wrongly chosen file is at least visible.
func (l *Locator) pickOne(sample string, matches []string) (string, bool) {
	if len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	if len(matches) > 1 {
		l.logger.Warn("multiple candidate artifacts, using first",
			zap.String("sample", sample),
			zap.String("chosen", matches[0]),
			zap.Int("candidates", len(matches)))
	}
	return matches[0], true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
