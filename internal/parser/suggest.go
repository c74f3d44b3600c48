package parser

import "strings"

const (
	maxSuggestions     = 3
	suggestPrefixLen   = 20
	suggestMaxDistance = 3
)

// Suggest proposes up to three "did you mean" benchmark names for the whole
// input, comparing only a short prefix of it against each name by raw edit
// distance. Results keep catalogue iteration order; they are not ranked by
// closeness.
func Suggest(rawText string, names []string) []string {
	prefix := strings.ToLower(rawText)
	if len(prefix) > suggestPrefixLen {
		prefix = prefix[:suggestPrefixLen]
	}

	var out []string
	for _, name := range names {
		if levenshtein(prefix, strings.ToLower(name)) <= suggestMaxDistance {
			out = append(out, name)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
