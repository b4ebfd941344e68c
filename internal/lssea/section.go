package lssea

import (
	"regexp"
	"strings"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

const seaHeaderPrefix = "SEA :"

var seaNamePattern = regexp.MustCompile(`SEA\s*:\s*(\S+)`)

// ParseSeaSection locates the next SEA block at or after start, parses
// it fully, and returns the record together with the index just past
// the consumed block. When no header exists from start onward it
// returns (nil, start, false).
//
// The function is a pure forward scan over (lines, start): re-running
// it with the same inputs yields the same record and cursor.
func ParseSeaSection(lines []string, start int) (*model.SeaRecord, int, bool) {
	rec, cur := seekHeader(lines, start)
	if rec == nil {
		return nil, start, false
	}

	cur = parseProperties(lines, cur, rec)

	// Sub-section scans are bounded by the next SEA header so a block
	// without its own ETHERCHANNEL or adapter sections can never pick
	// up the next block's.
	end := nextHeader(lines, cur)

	if idx, ok := findMarker(lines, cur, end, "ETHERCHANNEL"); ok {
		rec.Etherchannel, cur = parseEtherchannelSection(lines, idx, end)
	}

	if idx, ok := findMarker(lines, cur, end, "REAL ADAPTERS"); ok {
		rec.RealAdapters, cur = parseAdapterSection(lines, idx, end, realAdapterStops)
	}

	if idx, ok := findMarker(lines, cur, end, "VIRTUAL ADAPTERS"); ok {
		rec.VirtualAdapters, cur = parseAdapterSection(lines, idx, end, virtualAdapterStops)
	}

	return rec, cur, true
}

// seekHeader advances to the next `SEA :` header and captures the SEA
// name. Returns (nil, start) when no header is found.
func seekHeader(lines []string, start int) (*model.SeaRecord, int) {
	for i := start; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], seaHeaderPrefix) {
			continue
		}
		if m := seaNamePattern.FindStringSubmatch(lines[i]); m != nil {
			return model.NewSeaRecord(m[1]), i + 1
		}
	}
	return nil, start
}

// sectionMarkers open the sub-sections that follow the property
// block. Reports usually separate them with a blank line, but not
// always, so they terminate property consumption too.
var sectionMarkers = []string{"ETHERCHANNEL", "REAL ADAPTERS", "VIRTUAL ADAPTERS"}

// parseProperties consumes `key: value` lines following the header
// until the next header, a `+--` divider, a blank line, or a
// sub-section marker. The first colon splits key from value; later
// values for the same key win. Non-matching lines are skipped with
// the cursor still advancing.
func parseProperties(lines []string, cur int, rec *model.SeaRecord) int {
	for cur < len(lines) {
		line := strings.TrimSpace(lines[cur])

		if strings.HasPrefix(line, seaHeaderPrefix) || strings.HasPrefix(line, "+--") || line == "" {
			break
		}
		if hasAnyPrefix(line, sectionMarkers) {
			break
		}

		if !strings.HasPrefix(line, "+") {
			if key, value, ok := strings.Cut(line, ":"); ok {
				rec.Properties.Set(strings.TrimSpace(key), strings.TrimSpace(value))
			}
		}

		cur++
	}
	return cur
}

// nextHeader returns the index of the next SEA header at or after cur,
// or len(lines) when none exists.
func nextHeader(lines []string, cur int) int {
	for i := cur; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], seaHeaderPrefix) {
			return i
		}
	}
	return len(lines)
}

// findMarker inspects lines[cur:end] for one containing marker. The
// scan never moves the cursor: a missing marker is a normal outcome
// and parsing resumes from the same point for the next lookup.
func findMarker(lines []string, cur, end int, marker string) (int, bool) {
	for i := cur; i < end; i++ {
		if strings.Contains(lines[i], marker) {
			return i, true
		}
	}
	return 0, false
}
