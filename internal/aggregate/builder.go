// Package aggregate assembles a Corpus from discovered input artifacts.
// Aggregation is a pure merge: one artifact per (sample, method), inserted
// once and never edited afterwards.
package aggregate

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hlatools/hla-compare/internal/extract"
	"github.com/hlatools/hla-compare/internal/hla"
	"github.com/hlatools/hla-compare/internal/locate"
)

// Builder runs discovery and extraction for samples and assembles the
// results into the normalized model.
type Builder struct {
	loc    *locate.Locator
	logger *zap.Logger
}

// New returns a Builder over the given locator.
func New(loc *locate.Locator) *Builder {
	return &Builder{loc: loc, logger: zap.NewNop()}
}

// SetLogger sets the logger used for per-sample progress.
func (b *Builder) SetLogger(logger *zap.Logger) {
	b.logger = logger
	b.loc.SetLogger(logger)
}

// Build aggregates every listed sample into a Corpus. A sample with no
// artifacts at all still contributes an empty record. Extraction errors
// abort the build; a fabricated value is worse than a failed run.
func (b *Builder) Build(samples []string) (*hla.Corpus, error) {
	corpus := hla.NewCorpus()
	for _, sample := range samples {
		rec, err := b.BuildSample(sample)
		if err != nil {
			return nil, err
		}
		corpus.Insert(rec)
	}
	return corpus, nil
}

// BuildSample locates and extracts every method's artifact for one sample.
// A method with no artifact is left out of the record's results entirely,
// which keeps "not attempted" distinguishable from "attempted, no calls".
func (b *Builder) BuildSample(sample string) (*hla.SampleRecord, error) {
	rec := hla.NewSampleRecord(sample)

	if path, ok := b.loc.HISATReport(sample); ok {
		text, err := readArtifact(path)
		if err != nil {
			return nil, err
		}
		res, err := extract.RankedReport(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rec.Results[hla.MethodHISAT] = res
	} else {
		b.logger.Info("no ranked report found", zap.String("sample", sample))
	}

	if path, ok := b.loc.EstimationResult(sample); ok {
		text, err := readArtifact(path)
		if err != nil {
			return nil, err
		}
		rec.Results[hla.MethodEstimation] = extract.FinalResult(text)
	} else {
		b.logger.Debug("no final-result file", zap.String("sample", sample))
	}

	if path, ok := b.loc.OptiTypeResult(sample); ok {
		text, err := readArtifact(path)
		if err != nil {
			return nil, err
		}
		rec.Results[hla.MethodOptiType] = extract.GenotypeTSV(text)
	} else {
		b.logger.Debug("no genotype TSV", zap.String("sample", sample))
	}

	if path, ok := b.loc.HLALABestGuess(sample); ok {
		text, err := readArtifact(path)
		if err != nil {
			return nil, err
		}
		rec.Results[hla.MethodHLALA] = extract.BestGuess(text)
	} else {
		b.logger.Debug("no best-guess file", zap.String("sample", sample))
	}

	b.logger.Debug("aggregated sample",
		zap.String("sample", sample),
		zap.Int("methods", len(rec.Results)))

	return rec, nil
}

func readArtifact(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}
	return string(data), nil
}
