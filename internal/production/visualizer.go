package production

import (
	"bytes"
	"fmt"

	"github.com/comalice/statekit"
)

// ExportDOT generates Graphviz DOT source for a machine's state set. Every
// state may transition to every other, so only nodes are rendered; the
// current state is highlighted.
func ExportDOT(m *statekit.Machine) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Machine {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")

	current := m.Current()
	for _, s := range m.States() {
		if s == current {
			buf.WriteString(fmt.Sprintf("  %q [style=\"rounded,filled\", fillcolor=lightblue];\n", s.Name))
			continue
		}
		buf.WriteString(fmt.Sprintf("  %q;\n", s.Name))
	}

	buf.WriteString("}\n")
	return buf.String()
}
