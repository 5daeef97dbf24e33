// Package report renders the normalized model as self-contained static
// HTML documents: inline styling, no scripts, no external resources.
package report

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/hlatools/hla-compare/internal/hla"
)

// formatAbundance renders an abundance percentage without trailing zeros,
// so 55.50 in the source displays as 55.5.
func formatAbundance(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

type summaryCall struct {
	Rank      int
	Allele    string
	Abundance string
}

type summaryCell struct {
	Calls []summaryCall
}

type summaryRow struct {
	Gene  string
	Cells []summaryCell
}

type summaryData struct {
	Title   string
	Samples []string
	Rows    []summaryRow
}

// SummaryWriter renders the cross-sample matrix: one row per gene, one
// column per sample, cells listing the primary method's calls in rank
// order.
type SummaryWriter struct {
	w io.Writer
}

// NewSummaryWriter returns a writer emitting the summary document to w.
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return &SummaryWriter{w: w}
}

// Write renders the corpus. An empty corpus yields a well-formed document
// with an empty table body.
func (sw *SummaryWriter) Write(corpus *hla.Corpus) error {
	samples := corpus.SampleIDs()

	data := summaryData{
		Title:   "HISAT-genotype Results Summary",
		Samples: samples,
	}

	for _, gene := range corpus.Genes() {
		row := summaryRow{Gene: gene}
		for _, sample := range samples {
			row.Cells = append(row.Cells, summaryCellFor(corpus.Samples[sample], gene))
		}
		data.Rows = append(data.Rows, row)
	}

	if err := summaryTmpl.Execute(sw.w, data); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	return nil
}

// summaryCellFor builds one cell: the sample's primary-method calls for the
// gene, sorted by rank. No calls means the sentinel cell, never an empty
// string.
func summaryCellFor(rec *hla.SampleRecord, gene string) summaryCell {
	if rec == nil {
		return summaryCell{}
	}
	res := rec.Method(hla.MethodHISAT)
	if res == nil || !res.Has(gene) {
		return summaryCell{}
	}

	var cell summaryCell
	for _, c := range res.SortedByRank(gene) {
		cell.Calls = append(cell.Calls, summaryCall{
			Rank:      c.Rank,
			Allele:    c.Allele,
			Abundance: formatAbundance(c.Abundance),
		})
	}
	return cell
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
        h1 { color: #333; text-align: center; }
        .table-container { overflow-x: auto; background-color: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        table { border-collapse: collapse; width: 100%; min-width: 800px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; font-size: 12px; }
        th { background-color: #4CAF50; color: white; position: sticky; top: 0; }
        th.gene-col { background-color: #2196F3; min-width: 100px; }
        tr:nth-child(even) { background-color: #f2f2f2; }
        .allele { display: block; margin: 2px 0; }
        .no-data { color: #999; font-style: italic; }
        .rank-1 { color: #d32f2f; font-weight: bold; }
        .rank-2 { color: #f57c00; font-weight: bold; }
        .rank-3 { color: #7b1fa2; }
        .rank-4 { color: #1976d2; }
        .rank-5 { color: #388e3c; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="table-container">
        <table>
            <thead>
                <tr>
                    <th class="gene-col">Gene</th>
{{- range .Samples}}
                    <th>{{.}}</th>
{{- end}}
                </tr>
            </thead>
            <tbody>
{{- range .Rows}}
                <tr>
                    <td><strong>{{.Gene}}</strong></td>
{{- range .Cells}}
                    <td>{{if .Calls}}{{range .Calls}}<span class="allele rank-{{.Rank}}">{{.Rank}}. {{.Allele}} ({{.Abundance}}%)</span>{{end}}{{else}}<span class="no-data">-</span>{{end}}</td>
{{- end}}
                </tr>
{{- end}}
            </tbody>
        </table>
    </div>
</body>
</html>
`))
