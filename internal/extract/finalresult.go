package extract

import (
	"bufio"
	"strings"

	"github.com/hlatools/hla-compare/internal/hla"
)

// Sentinel allele values meaning "no call" in final-result files. They are
// omitted from the extracted sequence, not kept as placeholders.
const (
	sentinelDash     = "-"
	sentinelNotTyped = "Not typed"
)

// FinalResult parses a tab-separated final-result file. Columns 0, 1, 2 of
// each line are gene, allele 1, allele 2; lines with fewer than three
// columns, and blank lines, are skipped. A repeated gene replaces the
// earlier line's calls.
func FinalResult(text string) *hla.MethodResult {
	res := hla.NewMethodResult()

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}

		gene := strings.TrimSpace(parts[0])
		calls := make([]hla.AlleleCall, 0, 2)
		for _, raw := range parts[1:3] {
			allele := strings.TrimSpace(raw)
			if allele == "" || allele == sentinelDash || allele == sentinelNotTyped {
				continue
			}
			calls = append(calls, hla.AlleleCall{Gene: gene, Allele: hla.Normalize(allele)})
		}
		res.Set(gene, calls)
	}

	return res
}
