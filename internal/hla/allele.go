// Package hla defines the normalized record form shared by every typing
// method parser: allele calls, per-method results, per-sample records, and
// the corpus built from one run.
package hla

import "strings"

// Prefix is the normalization prefix applied to every allele name.
const Prefix = "HLA-"

// AlleleCall is one typed allele for a gene, as reported by a single method.
type AlleleCall struct {
	Gene      string  // HLA locus (e.g. "A", "DRB1")
	Allele    string  // normalized allele name (e.g. "HLA-A*02:01"), never empty
	Rank      int     // 1 = most confident; meaningful only when Ranked
	Abundance float64 // percentage in [0,100]; meaningful only when Ranked
	Ranked    bool    // whether the source format carried rank/abundance
}

// Normalize prepends the HLA prefix to an allele name unless it already
// carries it.
func Normalize(allele string) string {
	if strings.HasPrefix(allele, Prefix) {
		return allele
	}
	return Prefix + allele
}
