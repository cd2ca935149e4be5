package driver

import (
	"fmt"
	"io"

	"github.com/appengine-ltd/homespring/internal/parser"
	"github.com/appengine-ltd/homespring/internal/river"
)

// Check reports every node of r whose name is not an instruction and returns
// how many there were. Unknown names are legal; the report is advisory.
func Check(w io.Writer, r *river.River, v *parser.Vocabulary) (int, error) {
	findings := v.Lint(r)
	for _, f := range findings {
		var err error
		if f.Suggestion != "" {
			_, err = fmt.Fprintf(w, "node %d: %q is not an instruction (did you mean %q?)\n", f.Node, f.Name, f.Suggestion)
		} else {
			_, err = fmt.Fprintf(w, "node %d: %q is not an instruction\n", f.Node, f.Name)
		}
		if err != nil {
			return 0, err
		}
	}
	return len(findings), nil
}
