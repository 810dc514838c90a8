package keyfilter

import (
	"slices"
	"strings"
)

// Separators lists the characters that split an allow-list string.
const Separators = ",:/"

// Parse splits raw on any of Separators. Segments that are blank after
// trimming are dropped; retained segments are returned exactly as supplied,
// surrounding whitespace included. Empty input yields an empty list.
func Parse(raw string) []string {
	if raw == "" {
		return []string{}
	}

	segments := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(Separators, r)
	})

	keys := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		keys = append(keys, seg)
	}
	return keys
}

// Allowed reports whether key may produce output under allowedKeys.
// Matching is case- and whitespace-sensitive with no prefix matching.
func Allowed(key string, allowedKeys []string) bool {
	if len(allowedKeys) == 0 {
		return true
	}
	return slices.Contains(allowedKeys, key)
}
