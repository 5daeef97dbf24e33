package extract

import (
	"bufio"
	"strings"

	"github.com/hlatools/hla-compare/internal/hla"
)

// genotypeGenes are the loci a six-column genotype table reports, two
// allele columns each ("A1"/"A2", ...).
var genotypeGenes = []string{"A", "B", "C"}

// GenotypeTSV parses a tab-separated genotype table whose header names the
// columns A1, A2, B1, B2, C1, C2. For each gene the non-empty allele
// columns are collected in column order; a gene with no non-empty column is
// left out of the result entirely. Duplicate allele values are preserved.
func GenotypeTSV(text string) *hla.MethodResult {
	res := hla.NewMethodResult()

	sc := bufio.NewScanner(strings.NewReader(text))

	// Header line: map column name to index.
	var cols map[string]int
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols = make(map[string]int)
		for i, name := range strings.Split(line, "\t") {
			cols[strings.TrimSpace(name)] = i
		}
		break
	}
	if cols == nil {
		return res
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")

		for _, gene := range genotypeGenes {
			var calls []hla.AlleleCall
			for _, suffix := range []string{"1", "2"} {
				idx, ok := cols[gene+suffix]
				if !ok || idx >= len(fields) {
					continue
				}
				allele := strings.TrimSpace(fields[idx])
				if allele == "" {
					continue
				}
				calls = append(calls, hla.AlleleCall{Gene: gene, Allele: hla.Normalize(allele)})
			}
			if len(calls) > 0 {
				res.Set(gene, calls)
			}
		}
	}

	return res
}
