package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlatools/hla-compare/internal/hla"
)

func rankedCall(gene, allele string, rank int, abundance float64) hla.AlleleCall {
	return hla.AlleleCall{Gene: gene, Allele: allele, Rank: rank, Abundance: abundance, Ranked: true}
}

func summaryCorpus() *hla.Corpus {
	corpus := hla.NewCorpus()

	s1 := hla.NewSampleRecord("S1")
	r1 := hla.NewMethodResult()
	r1.Add(rankedCall("A", "HLA-A*02:01", 2, 44.5))
	r1.Add(rankedCall("A", "HLA-A*01:01", 1, 55.5))
	r1.Add(rankedCall("B", "HLA-B*07:02", 1, 99.0))
	s1.Results[hla.MethodHISAT] = r1

	s2 := hla.NewSampleRecord("S2")
	r2 := hla.NewMethodResult()
	r2.Add(rankedCall("A", "HLA-A*03:01", 1, 80.0))
	s2.Results[hla.MethodHISAT] = r2

	corpus.Insert(s1)
	corpus.Insert(s2)
	return corpus
}

func TestSummaryWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryWriter(&buf).Write(summaryCorpus()))
	html := buf.String()

	assert.Contains(t, html, "<th>S1</th>")
	assert.Contains(t, html, "<th>S2</th>")
	assert.Contains(t, html, "<td><strong>A</strong></td>")
	assert.Contains(t, html, "<td><strong>B</strong></td>")

	// Cells list calls in rank order regardless of file order.
	a1 := strings.Index(html, "1. HLA-A*01:01 (55.5%)")
	a2 := strings.Index(html, "2. HLA-A*02:01 (44.5%)")
	require.Greater(t, a1, 0)
	require.Greater(t, a2, 0)
	assert.Less(t, a1, a2)

	// S2 has no calls for gene B: sentinel cell, never an empty string.
	assert.Contains(t, html, `<span class="no-data">-</span>`)
}

func TestSummaryWriter_AbundanceFormatting(t *testing.T) {
	// 55.50 in the source renders without the trailing zero.
	var buf bytes.Buffer
	corpus := hla.NewCorpus()
	rec := hla.NewSampleRecord("S1")
	res := hla.NewMethodResult()
	res.Add(rankedCall("A", "HLA-A*01:01", 1, 55.50))
	rec.Results[hla.MethodHISAT] = res
	corpus.Insert(rec)

	require.NoError(t, NewSummaryWriter(&buf).Write(corpus))
	assert.Contains(t, buf.String(), "(55.5%)")
	assert.NotContains(t, buf.String(), "(55.50%)")
}

func TestSummaryWriter_EmptyCorpus(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryWriter(&buf).Write(hla.NewCorpus()))
	html := buf.String()

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<tbody>")
	assert.Contains(t, html, "</table>")
	assert.NotContains(t, html, "<td>")
}

func TestSummaryWriter_NonPrimaryMethodsIgnored(t *testing.T) {
	// The summary matrix is the primary method's view; another method's
	// genes still widen the row universe but render as sentinel cells.
	corpus := hla.NewCorpus()
	rec := hla.NewSampleRecord("S1")
	other := hla.NewMethodResult()
	other.Add(hla.AlleleCall{Gene: "C", Allele: "HLA-C*04:01"})
	rec.Results[hla.MethodOptiType] = other
	corpus.Insert(rec)

	var buf bytes.Buffer
	require.NoError(t, NewSummaryWriter(&buf).Write(corpus))
	html := buf.String()

	assert.Contains(t, html, "<td><strong>C</strong></td>")
	assert.Contains(t, html, `<span class="no-data">-</span>`)
	assert.NotContains(t, html, "HLA-C*04:01")
}
