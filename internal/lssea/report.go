// Package lssea extracts the Shared Ethernet Adapter topology of a
// VIOS host from the plain-text output of the lssea diagnostic
// command. The report format is semi-structured: whitespace-delimited
// columns, inconsistent section markers, and freely omitted sections.
// Parsing is a forward-only scan over an explicit line slice and
// cursor; missing markers and malformed lines degrade to absent or
// empty fields, never errors.
package lssea

import (
	"strings"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

// Lines splits raw report text into lines for the parser. Windows
// line endings are tolerated.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// ParseReport extracts the full host configuration from a report's
// lines: the hostname, then every SEA block in order of appearance.
// Stray non-header lines between blocks are skipped one at a time
// until the next header or end of input.
func ParseReport(lines []string) *model.HostConfig {
	hc := model.NewHostConfig()

	if name, ok := ExtractHostname(lines); ok {
		hc.SetHostname(name)
	}

	cur := 0
	for cur < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[cur]), seaHeaderPrefix) {
			if rec, next, ok := ParseSeaSection(lines, cur); ok && next > cur {
				hc.SeaSections = append(hc.SeaSections, rec)
				cur = next
				continue
			}
		}
		cur++
	}

	return hc
}
