package syslog

import "regexp"

var (
	// One bracket block; \] inside a quoted value does not end the block.
	blockPattern = regexp.MustCompile(`\[(?:\\.|[^\\\]])+\]`)

	// Identity: 1-32 chars directly after the opening bracket, excluding
	// brackets, equals sign, double quote and space, followed by whitespace.
	identityPattern = regexp.MustCompile(`\[([^\[="\] ]{1,32})\s`)

	// key="value" where value is any run of non-quote characters.
	paramPattern = regexp.MustCompile(`(\w+)="([^"]*)"`)
)

// ExtractStructured decomposes a raw structured-data blob (already confirmed
// non-placeholder) into one StructuredEntry per bracket block. A block whose
// identity cannot be matched yields a nil Identity; a block with no
// key/value pairs yields an empty parameter map.
func ExtractStructured(raw string) []StructuredEntry {
	blocks := blockPattern.FindAllString(raw, -1)
	entries := make([]StructuredEntry, 0, len(blocks))

	for _, block := range blocks {
		entry := StructuredEntry{Parameters: make(map[string]string)}

		if m := identityPattern.FindStringSubmatch(block); m != nil {
			id := m[1]
			entry.Identity = &id
		}

		for _, kv := range paramPattern.FindAllStringSubmatch(block, -1) {
			entry.Parameters[kv[1]] = Unescape(kv[2])
		}

		entries = append(entries, entry)
	}
	return entries
}
