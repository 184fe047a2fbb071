package sinks

import "sort"

// sortedKeys returns the tag keys in order so bridge output is stable.
func sortedKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
