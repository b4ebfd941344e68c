package lssea

import "strings"

// hostnameMarker is the exact line (after trimming) that precedes the
// hostname in an lssea report.
const hostnameMarker = "VIOS hostname:"

// ExtractHostname scans lines for the hostname marker and returns the
// following non-blank line. Only the first marker is honored: a marker
// followed by a blank line or end of input yields not-found, even if a
// second marker exists later.
func ExtractHostname(lines []string) (string, bool) {
	for i, line := range lines {
		if strings.TrimSpace(line) != hostnameMarker {
			continue
		}
		if i+1 >= len(lines) {
			return "", false
		}
		next := strings.TrimSpace(lines[i+1])
		if next == "" {
			return "", false
		}
		return next, true
	}
	return "", false
}
