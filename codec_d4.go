// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const formatD4 = "d4"

// ReadD4 parses the d4 compiler's textual format (§4.F): a run of
// single-letter node-declaration lines (a/o/t/f), each implicitly assigning
// the next d4-id starting at 1, followed by edge lines of the form
// `src dst lit1 … litk 0`. An edge carrying literals synthesizes an AND
// node conjoining the destination with a LITERAL node per literal.
func ReadD4(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError(path, err)
	}
	defer f.Close()
	return readD4(f)
}

func readD4(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	g := NewGraph()
	// mapping[0] is an unused ghost slot so that d4-ids (1-based) index
	// directly into it, per §4.F.
	mapping := []int{noID}
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 1 {
			switch fields[0] {
			case "a", "o", "t", "f":
				kind := map[string]Kind{"a": KindAnd, "o": KindOr, "t": KindTrue, "f": KindFalse}[fields[0]]
				id, err := g.AddNode(kind, 0)
				if err != nil {
					return nil, newFormatError(formatD4, line, err, "%v", err)
				}
				mapping = append(mapping, id)
				continue
			}
		}
		if err := readD4Edge(g, mapping, line, fields); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newIOError("<input>", err)
	}

	rootD4 := noID
	for d4id := 1; d4id < len(mapping); d4id++ {
		n := g.getNode(mapping[d4id])
		if n != nil && len(n.parents) == 0 {
			rootD4 = d4id
			break
		}
	}
	if rootD4 == noID {
		return nil, newFormatError(formatD4, 0, nil, "no root found: every declared node has a parent")
	}
	g.rootID = mapping[rootD4]

	if err := g.Simplify(); err != nil {
		return nil, err
	}
	return g, nil
}

func readD4Edge(g *Graph, mapping []int, line int, fields []string) error {
	if len(fields) < 3 {
		return newFormatError(formatD4, line, nil, "edge line needs at least src, dst and a trailing 0, got %d fields", len(fields))
	}
	if fields[len(fields)-1] != "0" {
		return newFormatError(formatD4, line, nil, "edge line must end with a 0 sentinel")
	}
	src, err := parseFormatInt(formatD4, line, fields[0])
	if err != nil {
		return err
	}
	dst, err := parseFormatInt(formatD4, line, fields[1])
	if err != nil {
		return err
	}
	if src == dst {
		return newFormatError(formatD4, line, nil, "self edge %d -> %d is not allowed", src, dst)
	}
	if src < 1 || src >= len(mapping) || dst < 1 || dst >= len(mapping) {
		return newFormatError(formatD4, line, nil, "edge endpoint out of [1,%d]: src=%d dst=%d", len(mapping)-1, src, dst)
	}
	literalFields := fields[2 : len(fields)-1]
	srcID := mapping[src]
	dstID := mapping[dst]

	if len(literalFields) == 0 {
		if err := g.AddEdge(srcID, dstID); err != nil {
			return newFormatError(formatD4, line, err, "%v", err)
		}
		return nil
	}

	andID, err := g.AddNode(KindAnd, 0)
	if err != nil {
		return newFormatError(formatD4, line, err, "%v", err)
	}
	if err := g.AddEdge(andID, dstID); err != nil {
		return newFormatError(formatD4, line, err, "%v", err)
	}
	for _, lf := range literalFields {
		lit, err := parseFormatInt(formatD4, line, lf)
		if err != nil {
			return err
		}
		if lit == 0 {
			return newFormatError(formatD4, line, nil, "literal 0 is not a valid variable")
		}
		litID := g.GetLiteralID(lit)
		if litID == noID {
			g.PrepareLiterals(abs(lit))
			litID, err = g.AddNode(KindLiteral, lit)
			if err != nil {
				return newFormatError(formatD4, line, err, "%v", err)
			}
		}
		if err := g.AddEdge(andID, litID); err != nil {
			return newFormatError(formatD4, line, err, "%v", err)
		}
	}
	if err := g.AddEdge(srcID, andID); err != nil {
		return newFormatError(formatD4, line, err, "%v", err)
	}
	return nil
}

// WriteD4 writes g in the d4-oriented textual encoding described in §4.G.
// A constant-only graph is special-cased to the single-line forms the
// format uses for bare TRUE/FALSE. Otherwise ids are reversed so the root
// (the highest internal id, by the canonical-form invariant) receives
// d4-id 1, and literal nodes are wrapped as an OR header plus a synthetic
// edge to a fake "true sink" id carrying the variable.
func WriteD4(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return newIOError(path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := writeD4(w, g); err != nil {
		return err
	}
	return w.Flush()
}

func writeD4(w *bufio.Writer, g *Graph) error {
	n := g.getNode(g.rootID)
	if g.NodeCount() == 1 && n != nil {
		switch n.kind {
		case KindTrue:
			fmt.Fprintln(w, "t 1 0")
			return nil
		case KindFalse:
			fmt.Fprintln(w, "f 1 0")
			return nil
		}
	}

	total := g.NodeCount()
	fakeTrueID := total + 1
	d4ID := func(id int) int { return total - id }

	for id := total - 1; id >= 0; id-- {
		cn := g.getNode(id)
		if cn == nil {
			return newInternalError("write d4: node %d missing, graph is not dense", id)
		}
		switch cn.kind {
		case KindAnd:
			fmt.Fprintf(w, "a %d 0\n", d4ID(id))
		case KindOr, KindLiteral:
			fmt.Fprintf(w, "o %d 0\n", d4ID(id))
		case KindTrue:
			fmt.Fprintf(w, "t %d 0\n", d4ID(id))
		case KindFalse:
			fmt.Fprintf(w, "f %d 0\n", d4ID(id))
		}
	}
	for id := total - 1; id >= 0; id-- {
		cn := g.getNode(id)
		if cn.IsLiteral() {
			fmt.Fprintf(w, "%d %d %d 0\n", d4ID(id), fakeTrueID, cn.lit)
			continue
		}
		if !cn.canHaveChildren() {
			continue
		}
		for _, c := range cn.childSlice() {
			fmt.Fprintf(w, "%d %d 0\n", d4ID(id), d4ID(c))
		}
	}
	return nil
}
