package lssea

import (
	"strings"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

var (
	realAdapterStops    = []string{"VIRTUAL ADAPTERS", "+--", "NO CONTROL CHANNEL"}
	virtualAdapterStops = []string{"+--", "NO CONTROL CHANNEL"}
)

// parseEtherchannelSection parses the ETHERCHANNEL block starting at
// the marker line. Adapter identifiers are the first whitespace token
// of each data line, kept only when they carry the `ent` prefix.
func parseEtherchannelSection(lines []string, start, end int) (*model.Etherchannel, int) {
	group := &model.Etherchannel{Adapters: []string{}}
	cur := skipColumnHeaders(lines, start+1, end)

	for cur < end {
		line := strings.TrimSpace(lines[cur])

		if line == "" || strings.HasPrefix(line, "REAL ADAPTERS") ||
			strings.HasPrefix(line, "VIRTUAL ADAPTERS") || strings.HasPrefix(line, "+--") {
			break
		}

		if !strings.HasPrefix(line, "-------") {
			fields := strings.Fields(line)
			if len(fields) >= 1 && strings.HasPrefix(fields[0], "ent") {
				group.Adapters = append(group.Adapters, fields[0])
			}
		}

		cur++
	}

	return group, cur
}

// parseAdapterSection parses a REAL ADAPTERS or VIRTUAL ADAPTERS block
// starting at the marker line. A data line must have at least three
// whitespace tokens and an `ent`-prefixed first token; the adapter
// name is the first token and the hardware path the third. Anything
// else is skipped with the cursor still advancing.
func parseAdapterSection(lines []string, start, end int, stops []string) ([]model.AdapterRef, int) {
	adapters := []model.AdapterRef{}
	cur := skipColumnHeaders(lines, start+1, end)

	for cur < end {
		line := strings.TrimSpace(lines[cur])

		if line == "" || hasAnyPrefix(line, stops) {
			break
		}

		if !strings.HasPrefix(line, "-------") {
			fields := strings.Fields(line)
			if len(fields) >= 3 && strings.HasPrefix(fields[0], "ent") {
				adapters = append(adapters, model.AdapterRef{
					AdapterName:  fields[0],
					HardwarePath: fields[2],
				})
			}
		}

		cur++
	}

	return adapters, cur
}

// skipColumnHeaders advances past all-dash separator rows and
// `adapter` column-header lines at the top of a sub-section.
func skipColumnHeaders(lines []string, cur, end int) int {
	for cur < end && (strings.HasPrefix(lines[cur], "-------") || strings.HasPrefix(lines[cur], "adapter")) {
		cur++
	}
	return cur
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
