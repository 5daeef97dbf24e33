package hla

import "sort"

// MethodResult holds the allele calls one typing method produced for one
// sample, keyed by gene. Gene order reflects source file encounter order;
// any sorting (by rank or by name) is a rendering-time choice.
type MethodResult struct {
	genes []string
	calls map[string][]AlleleCall
}

// NewMethodResult returns an empty result.
func NewMethodResult() *MethodResult {
	return &MethodResult{calls: make(map[string][]AlleleCall)}
}

// Add appends a call to its gene, registering the gene on first sight.
func (r *MethodResult) Add(c AlleleCall) {
	if _, ok := r.calls[c.Gene]; !ok {
		r.genes = append(r.genes, c.Gene)
	}
	r.calls[c.Gene] = append(r.calls[c.Gene], c)
}

// Set replaces the calls for a gene, keeping its encounter-order position
// if already registered.
func (r *MethodResult) Set(gene string, calls []AlleleCall) {
	if _, ok := r.calls[gene]; !ok {
		r.genes = append(r.genes, gene)
	}
	r.calls[gene] = calls
}

// Genes returns the genes in source encounter order.
func (r *MethodResult) Genes() []string {
	out := make([]string, len(r.genes))
	copy(out, r.genes)
	return out
}

// Calls returns the calls recorded for a gene, in insertion order.
// Returns nil for a gene the method never reported.
func (r *MethodResult) Calls(gene string) []AlleleCall {
	return r.calls[gene]
}

// Has reports whether the method produced at least one call for the gene.
func (r *MethodResult) Has(gene string) bool {
	return len(r.calls[gene]) > 0
}

// Empty reports whether the method produced no calls at all.
func (r *MethodResult) Empty() bool {
	return len(r.calls) == 0
}

// TopRanked returns a copy keeping only calls whose rank is n or better.
// Unranked calls are kept unconditionally; duplicate ranks survive. A gene
// whose calls are all filtered out is dropped from the copy.
func (r *MethodResult) TopRanked(n int) *MethodResult {
	out := NewMethodResult()
	for _, gene := range r.genes {
		for _, c := range r.calls[gene] {
			if c.Ranked && c.Rank > n {
				continue
			}
			out.Add(c)
		}
	}
	return out
}

// SortedByRank returns the calls for a gene ordered by ascending rank.
// Unranked calls sort after ranked ones; the sort is stable so duplicate
// ranks keep their encounter order.
func (r *MethodResult) SortedByRank(gene string) []AlleleCall {
	calls := append([]AlleleCall(nil), r.calls[gene]...)
	sort.SliceStable(calls, func(i, j int) bool {
		a, b := calls[i], calls[j]
		if a.Ranked != b.Ranked {
			return a.Ranked
		}
		return a.Rank < b.Rank
	})
	return calls
}

// SortedByAllele returns the calls for a gene ordered lexicographically by
// allele name.
func (r *MethodResult) SortedByAllele(gene string) []AlleleCall {
	calls := append([]AlleleCall(nil), r.calls[gene]...)
	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].Allele < calls[j].Allele
	})
	return calls
}
