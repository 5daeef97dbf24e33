package hla

import "sort"

// Typing method identifiers. These are the internal keys on SampleRecord;
// the renderer maps them to display names.
const (
	MethodHISAT      = "hisat"
	MethodEstimation = "estimation"
	MethodOptiType   = "optitype"
	MethodHLALA      = "hlala"
)

// DisplayName returns the human-readable name of a typing method.
func DisplayName(method string) string {
	switch method {
	case MethodHISAT:
		return "HISAT-genotype"
	case MethodEstimation:
		return "HLA-HD"
	case MethodOptiType:
		return "OptiType"
	case MethodHLALA:
		return "HLA-LA"
	}
	return method
}

// ComparisonMethods is the fixed column order of the per-sample comparison
// view.
var ComparisonMethods = []string{MethodOptiType, MethodHLALA, MethodEstimation, MethodHISAT}

// SampleRecord holds every method's result for one sample. A method key is
// absent when no artifact was found for it; a present-but-empty MethodResult
// means the artifact existed but yielded no calls.
type SampleRecord struct {
	Sample  string
	Results map[string]*MethodResult
}

// NewSampleRecord returns a record with no method results. A sample with
// zero discoverable outputs is still a valid record.
func NewSampleRecord(sample string) *SampleRecord {
	return &SampleRecord{Sample: sample, Results: make(map[string]*MethodResult)}
}

// Method returns the result for a method, or nil when the method was not
// attempted for this sample.
func (s *SampleRecord) Method(method string) *MethodResult {
	return s.Results[method]
}

// Genes returns the sorted union of genes across every method present on
// this sample.
func (s *SampleRecord) Genes() []string {
	seen := make(map[string]bool)
	for _, r := range s.Results {
		for _, g := range r.Genes() {
			seen[g] = true
		}
	}
	return sortedKeys(seen)
}

// Corpus is the full normalized dataset for one run. It is built once,
// consumed by the renderer, and discarded; the derived sample and gene sets
// are recomputed on every call rather than cached.
type Corpus struct {
	Samples map[string]*SampleRecord
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{Samples: make(map[string]*SampleRecord)}
}

// Insert adds a sample record. Aggregation only ever inserts; records are
// immutable once built.
func (c *Corpus) Insert(rec *SampleRecord) {
	c.Samples[rec.Sample] = rec
}

// SampleIDs returns every sample identifier, sorted.
func (c *Corpus) SampleIDs() []string {
	seen := make(map[string]bool, len(c.Samples))
	for id := range c.Samples {
		seen[id] = true
	}
	return sortedKeys(seen)
}

// Genes returns the sorted union of genes across every sample and method in
// the corpus.
func (c *Corpus) Genes() []string {
	seen := make(map[string]bool)
	for _, rec := range c.Samples {
		for _, g := range rec.Genes() {
			seen[g] = true
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
