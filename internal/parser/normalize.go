package parser

import "strings"

// normaliseName lowercases a node name and collapses runs of spaces so that
// "Hydro.  Power" compares equal to "hydro. power".
func normaliseName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// squash drops the escape markers and spaces from a normalised name; typing
// "hydropower" for "hydro. power" is the most common slip.
func squash(name string) string {
	return strings.NewReplacer(".", "", " ", "").Replace(name)
}
