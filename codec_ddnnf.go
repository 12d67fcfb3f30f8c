// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const formatDDNNF = "ddnnf"
const formatC2D = "c2d"

// ReadDDNNF parses the library's own permissive textual format (§4.F): a
// header line `nnf N E V` followed by one L/A/O line per node, accepting
// any OR fanout of two or more.
func ReadDDNNF(path string) (*Graph, error) {
	return readNNFFile(path, formatDDNNF, false)
}

// ReadC2D parses the same node-line grammar under the stricter "c2d"
// dialect, which rejects any non-constant OR whose fanout is not exactly
// two.
func ReadC2D(path string) (*Graph, error) {
	return readNNFFile(path, formatC2D, true)
}

func readNNFFile(path, format string, strict bool) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError(path, err)
	}
	defer f.Close()
	return readNNF(f, format, strict)
}

func readNNF(r io.Reader, format string, strict bool) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	g := NewGraph()
	line := 0

	var header []string
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		header = strings.Fields(text)
		break
	}
	if header == nil {
		return nil, newFormatError(format, 0, nil, "missing header line")
	}
	if len(header) != 4 || header[0] != "nnf" {
		return nil, newFormatError(format, line, nil, "malformed header %q, expected \"nnf N E V\"", strings.Join(header, " "))
	}
	numNodes, err := parseFormatInt(format, line, header[1])
	if err != nil {
		return nil, err
	}
	if _, err := parseFormatInt(format, line, header[2]); err != nil {
		return nil, err
	}
	numVars, err := parseFormatInt(format, line, header[3])
	if err != nil {
		return nil, err
	}
	g.PrepareLiterals(numVars)

	lastNonConstant := noID
	for i := 0; i < numNodes; {
		if !scanner.Scan() {
			return nil, newFormatError(format, line, nil, "unexpected end of file, expected %d nodes, got %d", numNodes, i)
		}
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		id, isConstant, err := readNNFNode(g, format, line, fields, i, strict)
		if err != nil {
			return nil, err
		}
		if !isConstant {
			lastNonConstant = id
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return nil, newIOError("<input>", err)
	}

	if lastNonConstant != noID {
		g.rootID = lastNonConstant
	} else if g.NodeCount() > 0 {
		g.rootID = g.NodeCount() - 1
	}

	if err := g.Simplify(); err != nil {
		return nil, err
	}
	return g, nil
}

func readNNFNode(g *Graph, format string, line int, fields []string, id int, strict bool) (int, bool, error) {
	if len(fields) == 0 {
		return noID, false, newFormatError(format, line, nil, "empty node line")
	}
	switch fields[0] {
	case "L":
		if len(fields) != 2 {
			return noID, false, newFormatError(format, line, nil, "L line wants exactly one literal, got %d fields", len(fields)-1)
		}
		v, err := parseFormatInt(format, line, fields[1])
		if err != nil {
			return noID, false, err
		}
		if v == 0 {
			return noID, false, newFormatError(format, line, nil, "literal 0 is not a valid variable")
		}
		nid, nerr := g.AddNode(KindLiteral, v)
		if nerr != nil {
			return noID, false, newFormatError(format, line, nerr, "%s", nerr)
		}
		return nid, false, nil

	case "A":
		if len(fields) < 2 {
			return noID, false, newFormatError(format, line, nil, "A line missing child count")
		}
		k, err := parseFormatInt(format, line, fields[1])
		if err != nil {
			return noID, false, err
		}
		if k == 0 {
			nid, nerr := g.AddNode(KindTrue, 0)
			if nerr != nil {
				return noID, false, newFormatError(format, line, nerr, "%s", nerr)
			}
			return nid, true, nil
		}
		children, err := parseFormatChildren(format, line, fields[2:], k, id)
		if err != nil {
			return noID, false, err
		}
		nid, nerr := g.AddNode(KindAnd, 0)
		if nerr != nil {
			return noID, false, newFormatError(format, line, nerr, "%s", nerr)
		}
		for _, c := range children {
			if err := g.AddEdge(nid, c); err != nil {
				return noID, false, newFormatError(format, line, err, "%s", err)
			}
		}
		return nid, false, nil

	case "O":
		if len(fields) < 3 {
			return noID, false, newFormatError(format, line, nil, "O line missing decision-var hint or child count")
		}
		if _, err := parseFormatInt(format, line, fields[1]); err != nil {
			return noID, false, err
		}
		k, err := parseFormatInt(format, line, fields[2])
		if err != nil {
			return noID, false, err
		}
		if k == 0 {
			nid, nerr := g.AddNode(KindFalse, 0)
			if nerr != nil {
				return noID, false, newFormatError(format, line, nerr, "%s", nerr)
			}
			return nid, true, nil
		}
		if strict && k != 2 {
			return noID, false, newFormatError(format, line, nil, "strict c2d OR must have exactly 2 children, got %d", k)
		}
		children, err := parseFormatChildren(format, line, fields[3:], k, id)
		if err != nil {
			return noID, false, err
		}
		nid, nerr := g.AddNode(KindOr, 0)
		if nerr != nil {
			return noID, false, newFormatError(format, line, nerr, "%s", nerr)
		}
		for _, c := range children {
			if err := g.AddEdge(nid, c); err != nil {
				return noID, false, newFormatError(format, line, err, "%s", err)
			}
		}
		return nid, false, nil

	default:
		return noID, false, newFormatError(format, line, nil, "unknown node prefix %q", fields[0])
	}
}

func parseFormatChildren(format string, line int, fields []string, want, currentID int) ([]int, error) {
	if len(fields) != want {
		return nil, newFormatError(format, line, nil, "expected %d children, found %d", want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		c, err := parseFormatInt(format, line, f)
		if err != nil {
			return nil, err
		}
		if c < 0 || c >= currentID {
			return nil, newFormatError(format, line, nil, "child id %d must refer to an earlier node than %d", c, currentID)
		}
		out[i] = c
	}
	return out, nil
}

func parseFormatInt(format string, line int, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, newFormatError(format, line, err, "expected an integer, got %q", s)
	}
	return v, nil
}

// WriteDDNNF writes g to path in the "ddnnf" surface described in §4.G.
func WriteDDNNF(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return newIOError(path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := writeNNF(w, g); err != nil {
		return err
	}
	return w.Flush()
}

func writeNNF(w *bufio.Writer, g *Graph) error {
	fmt.Fprintf(w, "nnf %d %d %d\n", g.NodeCount(), g.EdgeCount(), g.TotalVariables())
	for id := 0; id < g.NodeCount(); id++ {
		n := g.getNode(id)
		if n == nil {
			return newInternalError("write ddnnf: node %d missing, graph is not dense", id)
		}
		switch n.kind {
		case KindLiteral:
			fmt.Fprintf(w, "L %d\n", n.lit)
		case KindTrue:
			fmt.Fprintln(w, "A 0")
		case KindFalse:
			fmt.Fprintln(w, "O 0 0")
		case KindAnd:
			children := n.childSlice()
			fmt.Fprintf(w, "A %d", len(children))
			for _, c := range children {
				fmt.Fprintf(w, " %d", c)
			}
			fmt.Fprintln(w)
		case KindOr:
			children := n.childSlice()
			fmt.Fprintf(w, "O 0 %d", len(children))
			for _, c := range children {
				fmt.Fprintf(w, " %d", c)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
