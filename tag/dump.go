package tag

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders the tree rooted at t as indented text, one tag per line,
// with two spaces of indentation per nesting level and child counts for
// List and Compound tags.
//
// Dump is a pure formatting function: it writes to no sink and has no side
// effects, so output can be asserted on directly in tests. String payloads
// and names are quoted with Go escaping, which keeps non-UTF-8 wire bytes
// printable instead of emitting them raw.
func Dump(t Tag) string {
	var sb strings.Builder

	// Walk only errors when the callback errors; this one never does.
	_ = Walk(t, func(t Tag, depth int) error {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(line(t))
		sb.WriteByte('\n')

		return nil
	})

	return sb.String()
}

func line(t Tag) string {
	head := fmt.Sprintf("%s(%s)", t.Type(), strconv.Quote(t.TagName()))

	switch v := t.(type) {
	case End:
		return "End"
	case Byte:
		return fmt.Sprintf("%s: %d", head, v.Value)
	case Short:
		return fmt.Sprintf("%s: %d", head, v.Value)
	case Int:
		return fmt.Sprintf("%s: %d", head, v.Value)
	case Long:
		return fmt.Sprintf("%s: %d", head, v.Value)
	case Float:
		return fmt.Sprintf("%s: %g", head, v.Value)
	case Double:
		return fmt.Sprintf("%s: %g", head, v.Value)
	case ByteArray:
		return fmt.Sprintf("%s: %d bytes", head, len(v.Value))
	case String:
		return fmt.Sprintf("%s: %s", head, strconv.Quote(v.Value))
	case List:
		return fmt.Sprintf("%s: %d entries of %s", head, len(v.Items), v.Elem)
	case Compound:
		return fmt.Sprintf("%s: %d entries", head, len(v.Items))
	case IntArray:
		return fmt.Sprintf("%s: %d ints", head, len(v.Value))
	case LongArray:
		return fmt.Sprintf("%s: %d longs", head, len(v.Value))
	default:
		// Unreachable: the Tag set is sealed.
		return head
	}
}
