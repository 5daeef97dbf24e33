package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/hlatools/hla-compare/internal/hla"
)

// methodClass maps a method to the CSS class of its allele spans.
var methodClass = map[string]string{
	hla.MethodOptiType:   "optitype-allele",
	hla.MethodHLALA:      "hlala-allele",
	hla.MethodEstimation: "estimation-allele",
}

type comparisonCall struct {
	Allele string
	Class  string
	Detail string // rank/abundance annotation, ranked methods only
}

type comparisonCell struct {
	Calls []comparisonCall
}

type comparisonRow struct {
	Gene  string
	Cells []comparisonCell
}

type comparisonData struct {
	Sample  string
	Methods []string
	Rows    []comparisonRow
}

// ComparisonWriter renders the per-sample method-comparison matrix: one row
// per gene seen for the sample, one column per typing method in a fixed
// order, cells sorted lexicographically by allele name.
type ComparisonWriter struct {
	w io.Writer
}

// NewComparisonWriter returns a writer emitting a comparison document to w.
func NewComparisonWriter(w io.Writer) *ComparisonWriter {
	return &ComparisonWriter{w: w}
}

// Write renders one sample's record. A record with no methods, or no
// genes, yields a well-formed document with an empty table body.
func (cw *ComparisonWriter) Write(rec *hla.SampleRecord) error {
	data := comparisonData{Sample: rec.Sample}
	for _, m := range hla.ComparisonMethods {
		data.Methods = append(data.Methods, hla.DisplayName(m))
	}

	for _, gene := range rec.Genes() {
		row := comparisonRow{Gene: gene}
		for _, method := range hla.ComparisonMethods {
			row.Cells = append(row.Cells, comparisonCellFor(rec.Method(method), method, gene))
		}
		data.Rows = append(data.Rows, row)
	}

	if err := comparisonTmpl.Execute(cw.w, data); err != nil {
		return fmt.Errorf("render comparison for %s: %w", rec.Sample, err)
	}
	return nil
}

// comparisonCellFor builds one cell. "Method not attempted" (nil result)
// and "attempted, no calls" both render the sentinel.
func comparisonCellFor(res *hla.MethodResult, method, gene string) comparisonCell {
	if res == nil || !res.Has(gene) {
		return comparisonCell{}
	}

	var cell comparisonCell
	for _, c := range res.SortedByAllele(gene) {
		call := comparisonCall{Allele: c.Allele, Class: methodClass[method]}
		if c.Ranked {
			call.Detail = fmt.Sprintf("(rank: %d, %s%%)", c.Rank, formatAbundance(c.Abundance))
		}
		cell.Calls = append(cell.Calls, call)
	}
	return cell
}

var comparisonTmpl = template.Must(template.New("comparison").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>HLA Typing Results - {{.Sample}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
        h1 { color: #333; text-align: center; }
        .sample-info { text-align: center; margin-bottom: 20px; font-size: 18px; color: #666; }
        .table-container { overflow-x: auto; background-color: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); max-width: 1200px; margin: 0 auto; }
        table { border-collapse: collapse; width: 100%; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background-color: #4CAF50; color: white; font-weight: bold; }
        th.gene-col { background-color: #2196F3; width: 100px; }
        th.method-col { background-color: #FF9800; width: 350px; }
        tr:nth-child(even) { background-color: #f9f9f9; }
        .allele { display: block; margin: 3px 0; padding: 2px 5px; background-color: #e3f2fd; border-radius: 3px; font-family: monospace; }
        .optitype-allele { background-color: #f3e5f5; }
        .hlala-allele { background-color: #e8f5e9; }
        .estimation-allele { background-color: #fff3e0; }
        .rank-info { color: #666; font-size: 11px; }
        .no-data { color: #999; font-style: italic; }
    </style>
</head>
<body>
    <h1>HLA Typing Results Comparison</h1>
    <div class="sample-info">Sample: <strong>{{.Sample}}</strong></div>
    <div class="table-container">
        <table>
            <thead>
                <tr>
                    <th class="gene-col">Gene</th>
{{- range .Methods}}
                    <th class="method-col">{{.}}</th>
{{- end}}
                </tr>
            </thead>
            <tbody>
{{- range .Rows}}
                <tr>
                    <td><strong>{{.Gene}}</strong></td>
{{- range .Cells}}
                    <td>{{if .Calls}}{{range .Calls}}<span class="allele{{if .Class}} {{.Class}}{{end}}">{{.Allele}}{{if .Detail}} <span class="rank-info">{{.Detail}}</span>{{end}}</span>{{end}}{{else}}<span class="no-data">No data</span>{{end}}</td>
{{- end}}
                </tr>
{{- end}}
            </tbody>
        </table>
    </div>
</body>
</html>
`))
