// Package schema is the Go replacement for the source's compile-time derive macro: it uses
// reflect and struct tags to turn a Go struct type into the declared field list package
// layout consumes, caching the result per reflect.Type the first time a type is seen.
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// tag is one field's parsed `wgsl:"..."` struct tag.
type tag struct {
	align   uint64
	hasAlign bool
	size    uint64
	hasSize bool
	runtime bool
}

// parseTag parses a comma-separated `wgsl:"align=16,size=32"` tag value. An empty tag is
// valid and produces no overrides. `wgsl:"size=runtime"` marks a trailing array field as
// runtime-sized.
func parseTag(raw string) (tag, error) {
	var t tag
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return t, nil
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return t, fmt.Errorf("schema: malformed wgsl tag clause %q", part)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "align":
			n, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return t, fmt.Errorf("schema: bad align value %q: %w", val, err)
			}
			t.align = n
			t.hasAlign = true
		case "size":
			if val == "runtime" {
				t.runtime = true
				continue
			}
			n, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return t, fmt.Errorf("schema: bad size value %q: %w", val, err)
			}
			t.size = n
			t.hasSize = true
		default:
			return t, fmt.Errorf("schema: unknown wgsl tag key %q", key)
		}
	}
	return t, nil
}
