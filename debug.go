package arkparser

import (
	"fmt"
	"strings"
)

// DebugContext renders a hex dump of width bytes before and after the
// reader's current position, with the current byte prefixed by '>',
// adapted from the teacher's own debug-dump idiom for diagnosing decode
// desyncs in the property/struct registries.
func (r *Reader) DebugContext(width int) string {
	start := r.pos - width
	if start < 0 {
		start = 0
	}
	end := r.pos + width
	if end > len(r.buf) {
		end = len(r.buf)
	}
	window := r.buf[start:end]

	var sb strings.Builder
	for i, b := range window {
		offset := start + i
		if offset%16 == 0 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%08x  ", offset)
		}
		marker := byte(' ')
		if offset == r.pos {
			marker = '>'
		}
		fmt.Fprintf(&sb, "%c%02x", marker, b)
	}
	return sb.String()
}
