package trimesh

import (
	"fmt"
	"log"
	"strings"
)

// unusedMark is printed for the implicit hexagon corners that the
// compact rows never touch.
const unusedMark = "   x   "

// Render returns a multi-line text picture of the stencil: the upper
// half of the hexagon in reverse row order, then the lower half, with
// odd rows indented half a cell to show the lattice phase. Diagnostic
// only.
func (s *Stencil) Render() string {
	halfLines := make([]string, s.n)
	for jp := 0; jp < s.n; jp++ {
		padding := s.n + s.startIP[jp]
		var b strings.Builder
		if jp%2 != 0 {
			b.WriteString("    ")
		}
		b.WriteString(strings.Repeat(unusedMark, padding))
		for _, v := range s.weights[jp] {
			fmt.Fprintf(&b, " %6.3f", v)
		}
		b.WriteString(strings.Repeat(unusedMark, padding))
		halfLines[jp] = b.String()
	}

	var lines []string
	for jp := s.n - 1; jp >= 1; jp-- {
		lines = append(lines, halfLines[jp], "")
	}
	for jp := 0; jp < s.n; jp++ {
		lines = append(lines, halfLines[jp])
		if jp < s.n-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// DebugLog writes the rendered stencil picture line by line through the
// standard logger.
func (s *Stencil) DebugLog() {
	for _, line := range strings.Split(s.Render(), "\n") {
		log.Print(line)
	}
}
