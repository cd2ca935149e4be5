// Package river holds the tree model and tick engine of the Homespring
// language.
//
// A program is a tree of named nodes. Execution is a sequence of ticks; each
// tick walks the whole tree in a fixed order and applies, at every node, the
// rule registered for that tick kind and node type. Snow, water, power and
// salmon move between parents and children one edge at a time, so effects
// climb the tree one level per tick.
package river
