package extract

import (
	"bufio"
	"strings"

	"github.com/hlatools/hla-compare/internal/hla"
)

// BestGuess parses a best-guess file: one header line (skipped regardless
// of content), then tab-separated lines whose column 0 is the gene and
// column 2 the allele call. A trailing G or N marking a group-level or null
// allele is stripped before normalization. Repeated genes append.
func BestGuess(text string) *hla.MethodResult {
	res := hla.NewMethodResult()

	sc := bufio.NewScanner(strings.NewReader(text))
	first := true
	for sc.Scan() {
		if first {
			first = false
			continue
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}

		gene := strings.TrimSpace(parts[0])
		allele := stripGroupSuffix(strings.TrimSpace(parts[2]))
		if allele == "" {
			continue
		}

		res.Add(hla.AlleleCall{Gene: gene, Allele: hla.Normalize(allele)})
	}

	return res
}

// stripGroupSuffix removes a single trailing G (group-level) or N (null)
// marker from an allele name.
func stripGroupSuffix(allele string) string {
	if strings.HasSuffix(allele, "G") || strings.HasSuffix(allele, "N") {
		return strings.TrimSpace(allele[:len(allele)-1])
	}
	return allele
}
