package extract

import (
	"strings"
)

// refineNameAnchor resolves an ambiguous name by positional anchoring: the
// line immediately preceding the first birth-date marker is the likely full
// name. The candidate is accepted only when it contains the partial name
// (case-insensitive), guarding against anchoring on an unrelated line.
func refineNameAnchor(lines []string, partialName string) string {
	if partialName == "" {
		return partialName
	}
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if strings.Contains(line, "DOB") || strings.Contains(line, "Year of Birth") {
			candidate := strings.TrimSpace(lines[i-1])
			if strings.Contains(strings.ToLower(candidate), strings.ToLower(partialName)) {
				return candidate
			}
			return partialName
		}
	}
	return partialName
}
