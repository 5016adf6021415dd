package bbcode

import (
	"fmt"
	"io"
	"strings"
)

// Trace the parse to "w".
//
// Each line reports the cursor position and a dispatch event, indented by
// nesting depth.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

func (s *state) tracef(depth int, format string, args ...interface{}) {
	if s.p.trace == nil {
		return
	}
	fmt.Fprintf(s.p.trace, "%s%s: %s\n", strings.Repeat("  ", depth), s.cur.pos,
		fmt.Sprintf(format, args...))
}
