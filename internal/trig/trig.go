// Copyright Science Live Hub, 2026. All rights reserved.

// Package trig provides the TriG serialization primitives used to assemble
// nanopublication documents: literal escaping, term formatting, prefix
// declarations, and named-graph blocks.
package trig

import (
	"fmt"
	"sort"
	"strings"
)

// EscapeLiteral escapes backslashes, double quotes, newlines, and carriage
// returns for use inside a double-quoted TriG literal.
func EscapeLiteral(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
	)
	return r.Replace(s)
}

// Literal formats a plain string literal.
func Literal(v string) string {
	return `"` + EscapeLiteral(v) + `"`
}

// TypedLiteral formats a literal with a datatype annotation. The datatype is
// a CURIE or a full IRI reference, e.g. "xsd:dateTime".
func TypedLiteral(v, datatype string) string {
	return Literal(v) + "^^" + datatype
}

// IRI wraps a full IRI in angle brackets.
func IRI(v string) string {
	return "<" + v + ">"
}

// CURIE formats a prefixed name.
func CURIE(prefix, local string) string {
	return prefix + ":" + local
}

// FormatPrefixes renders @prefix declarations for the named prefixes,
// sorted alphabetically, resolving each against table. Unknown prefixes are
// skipped so a renderer can declare a prefix without registering it twice.
func FormatPrefixes(names []string, table map[string]string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	var b strings.Builder
	for _, name := range sorted {
		uri, ok := table[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "@prefix %s: <%s> .\n", name, uri)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Graph accumulates statements for one named graph and renders them as a
// TriG graph block. Statements are emitted in insertion order.
type Graph struct {
	name  string
	lines []string
}

// NewGraph creates a graph block named by a prefixed name or IRI reference.
func NewGraph(name string) *Graph {
	return &Graph{name: name}
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// Empty reports whether no statements have been added.
func (g *Graph) Empty() bool { return len(g.lines) == 0 }

// Add appends one complete triple. Terms must already be formatted.
func (g *Graph) Add(subject, predicate, object string) {
	g.lines = append(g.lines, fmt.Sprintf("  %s %s %s .", subject, predicate, object))
}

// AddBlock appends a subject with a predicate-object list, rendered with
// semicolon continuation and a closing period.
func (g *Graph) AddBlock(subject string, pairs []Pair) {
	if len(pairs) == 0 {
		return
	}
	for i, p := range pairs {
		term := " ;"
		if i == len(pairs)-1 {
			term = " ."
		}
		if i == 0 {
			g.lines = append(g.lines, fmt.Sprintf("  %s %s %s%s", subject, p.Predicate, p.Object, term))
		} else {
			g.lines = append(g.lines, fmt.Sprintf("    %s %s%s", p.Predicate, p.Object, term))
		}
	}
}

// AddBlank inserts an empty line, separating statement groups visually.
func (g *Graph) AddBlank() {
	g.lines = append(g.lines, "")
}

// Pair is one predicate-object entry in a subject block. Both terms must
// already be formatted.
type Pair struct {
	Predicate string
	Object    string
}

// Render produces the graph block. Trailing blank lines are dropped so
// callers can AddBlank unconditionally between groups.
func (g *Graph) Render() string {
	lines := g.lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	b.WriteString(g.name)
	b.WriteString(" {\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
