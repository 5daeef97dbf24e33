// Package extract turns the raw text output of each supported typing tool
// into the normalized record form. Extractors are pure: raw text in,
// MethodResult out. Zero matches is a valid, empty result, never an error;
// errors are reserved for malformed numeric fields where the producing
// format guarantees well-formed ones.
package extract

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hlatools/hla-compare/internal/hla"
)

// ParseError reports a malformed field at a specific input line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// rankedCall selects candidate call occurrences on a line. The rank and
// abundance groups are matched loosely on purpose: the numeric parse below
// is the authority, so a token like "12.3.4" is caught as a loud error
// instead of being silently skipped by a stricter pattern.
var rankedCall = regexp.MustCompile(`([\d.]+) ranked ([A-Z0-9]+)\*(\S+) \(abundance: ([\d.]+)%\)`)

// RankedReport parses ranked-report text of the form
//
//	1 ranked A*02:01:01:01 (abundance: 55.50%)
//
// line by line, collecting every match regardless of rank. Filtering to the
// top ranks is the caller's policy, not the extractor's.
func RankedReport(text string) (*hla.MethodResult, error) {
	res := hla.NewMethodResult()

	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		for _, m := range rankedCall.FindAllStringSubmatch(sc.Text(), -1) {
			rankTok, gene, allele, abundanceTok := m[1], m[2], m[3], m[4]

			rank, err := strconv.Atoi(rankTok)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("invalid rank %q", rankTok)}
			}
			abundance, err := strconv.ParseFloat(abundanceTok, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("invalid abundance %q", abundanceTok)}
			}

			res.Add(hla.AlleleCall{
				Gene:      gene,
				Allele:    hla.Prefix + gene + "*" + allele,
				Rank:      rank,
				Abundance: abundance,
				Ranked:    true,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan ranked report: %w", err)
	}

	return res, nil
}
