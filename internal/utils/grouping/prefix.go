package grouping

import (
	"regexp"
	"strings"
)

// Vehicle codes open with a state code and a district digit run, e.g.
// "UP-25C-1234" or "up 25 c 1234". Separators between the two vary in
// legacy data.
var codePrefixRe = regexp.MustCompile(`^([A-Z]+)[-\s]*([0-9]+)`)

// CodePrefix extracts the grouping key (state code + digit run, normalised to
// "UP-25") from a vehicle code. Codes that do not match the pattern group
// under their whole upper-cased code.
func CodePrefix(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	m := codePrefixRe.FindStringSubmatch(normalized)
	if m == nil {
		return normalized
	}
	return m[1] + "-" + m[2]
}
