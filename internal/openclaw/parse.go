package openclaw

import "strings"

// ParseStatus turns line-oriented "key: value" text into a map. Each line
// is split on its first colon only and both sides are trimmed; lines
// without a colon are dropped. Later duplicates overwrite earlier ones.
func ParseStatus(text string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}
