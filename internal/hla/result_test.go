package hla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ranked(gene, allele string, rank int, abundance float64) AlleleCall {
	return AlleleCall{Gene: gene, Allele: allele, Rank: rank, Abundance: abundance, Ranked: true}
}

func unranked(gene, allele string) AlleleCall {
	return AlleleCall{Gene: gene, Allele: allele}
}

func TestMethodResult_EncounterOrder(t *testing.T) {
	r := NewMethodResult()
	r.Add(unranked("DRB1", "HLA-DRB1*15:01"))
	r.Add(unranked("A", "HLA-A*01:01"))
	r.Add(unranked("DRB1", "HLA-DRB1*04:01"))

	assert.Equal(t, []string{"DRB1", "A"}, r.Genes())
	assert.Len(t, r.Calls("DRB1"), 2)
}

func TestMethodResult_SetReplaces(t *testing.T) {
	r := NewMethodResult()
	r.Add(unranked("A", "HLA-A*01:01"))
	r.Add(unranked("B", "HLA-B*07:02"))
	r.Set("A", []AlleleCall{unranked("A", "HLA-A*03:01")})

	assert.Equal(t, []string{"A", "B"}, r.Genes())
	require.Len(t, r.Calls("A"), 1)
	assert.Equal(t, "HLA-A*03:01", r.Calls("A")[0].Allele)
}

func TestMethodResult_TopRanked(t *testing.T) {
	r := NewMethodResult()
	r.Add(ranked("A", "HLA-A*02:01", 1, 55.5))
	r.Add(ranked("A", "HLA-A*03:01", 2, 44.0))
	r.Add(ranked("A", "HLA-A*11:01", 3, 0.5))
	r.Add(ranked("B", "HLA-B*07:02", 1, 50.0))
	r.Add(ranked("B", "HLA-B*07:03", 1, 50.0)) // duplicate rank
	r.Add(unranked("DRB1", "HLA-DRB1*15:01"))

	top := r.TopRanked(2)

	// Rank 3 dropped, duplicate rank 1 kept, unranked kept.
	assert.Len(t, top.Calls("A"), 2)
	assert.Len(t, top.Calls("B"), 2)
	assert.Len(t, top.Calls("DRB1"), 1)

	// The receiver is untouched.
	assert.Len(t, r.Calls("A"), 3)
}

func TestMethodResult_TopRankedDropsEmptiedGene(t *testing.T) {
	r := NewMethodResult()
	r.Add(ranked("C", "HLA-C*04:01", 5, 0.2))

	top := r.TopRanked(2)
	assert.NotContains(t, top.Genes(), "C")
}

func TestMethodResult_SortedByRank(t *testing.T) {
	r := NewMethodResult()
	r.Add(ranked("A", "HLA-A*03:01", 2, 44.0))
	r.Add(unranked("A", "HLA-A*99:99"))
	r.Add(ranked("A", "HLA-A*02:01", 1, 55.5))

	sorted := r.SortedByRank("A")
	require.Len(t, sorted, 3)
	assert.Equal(t, 1, sorted[0].Rank)
	assert.Equal(t, 2, sorted[1].Rank)
	assert.False(t, sorted[2].Ranked)
}

func TestMethodResult_SortedByAllele(t *testing.T) {
	r := NewMethodResult()
	r.Add(unranked("A", "HLA-A*03:01"))
	r.Add(unranked("A", "HLA-A*01:01"))

	sorted := r.SortedByAllele("A")
	assert.Equal(t, "HLA-A*01:01", sorted[0].Allele)

	// Storage order is untouched.
	assert.Equal(t, "HLA-A*03:01", r.Calls("A")[0].Allele)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "HLA-A*01:01", Normalize("A*01:01"))
	assert.Equal(t, "HLA-A*01:01", Normalize("HLA-A*01:01"))
}
