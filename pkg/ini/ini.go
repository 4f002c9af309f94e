// Package ini scans the key=value lines of game configuration files.
// Sections are ignored; keys from every section share one namespace.
package ini

import "strings"

// Pair is one key=value assignment with surrounding whitespace trimmed.
type Pair struct {
	Key   string
	Value string
	Line  int
}

// Scan returns the assignments in lines. Empty lines, ';' comments and
// '[section]' headers are skipped, as are lines with no '=' or an empty
// key. Values may contain further '=' characters.
func Scan(lines []string) []Pair {
	var pairs []Pair
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "[") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		if key == "" {
			continue
		}
		pairs = append(pairs, Pair{
			Key:   key,
			Value: strings.TrimSpace(line[eq+1:]),
			Line:  i + 1,
		})
	}
	return pairs
}

// Lookup returns the value of the first pair whose key matches
// case-insensitively.
func Lookup(lines []string, key string) (string, bool) {
	for _, p := range Scan(lines) {
		if strings.EqualFold(p.Key, key) {
			return p.Value, true
		}
	}
	return "", false
}

// HasValue reports whether any assignment of key has exactly value.
func HasValue(lines []string, key, value string) bool {
	for _, p := range Scan(lines) {
		if strings.EqualFold(p.Key, key) && p.Value == value {
			return true
		}
	}
	return false
}

// SplitList splits a comma separated value, trimming entries and dropping
// empty ones.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
