package stp

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvsteiner/core"
)

type section int

const (
	sectionNone section = iota
	sectionComment
	sectionGraph
	sectionTerminals
	sectionOther
)

// parser accumulates the instance while scanning lines.
type parser struct {
	line     int
	sec      section
	name     string
	nodes    int
	g        *core.Graph
	terms    []int
	seen     map[int]struct{}
	hasGraph bool
	hasTerms bool
}

// Read parses an STP instance from r.
//
// Errors: ErrSyntax (wrapped with the line number), ErrMissingSection, core
// errors for invalid edges, and I/O errors from r.
func Read(r io.Reader) (*Instance, error) {
	p := &parser{seen: make(map[int]struct{})}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		done, err := p.parse(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", p.line)
		}
		if done {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "stp: read")
	}
	if !p.hasGraph {
		return nil, errors.Wrap(ErrMissingSection, "Graph")
	}
	if !p.hasTerms {
		return nil, errors.Wrap(ErrMissingSection, "Terminals")
	}

	return &Instance{Name: p.name, Graph: p.g, Terminals: p.terms}, nil
}

// parse handles one line and reports true at the EOF marker.
func (p *parser) parse(text string) (bool, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	key := strings.ToUpper(fields[0])

	switch {
	case key == "EOF":
		return true, nil
	case key == "SECTION":
		if len(fields) < 2 {
			return false, errors.Wrap(ErrSyntax, "SECTION without a name")
		}
		p.sec = sectionOf(fields[1])
		if p.sec == sectionGraph {
			p.hasGraph = true
		}
		if p.sec == sectionTerminals {
			p.hasTerms = true
		}
		return false, nil
	case key == "END":
		p.sec = sectionNone
		return false, nil
	}

	switch p.sec {
	case sectionComment:
		if key == "NAME" && len(fields) > 1 {
			p.name = strings.Trim(strings.Join(fields[1:], " "), `"`)
		}
	case sectionGraph:
		return false, p.graphLine(key, fields)
	case sectionTerminals:
		return false, p.terminalLine(key, fields)
	}

	return false, nil
}

func sectionOf(name string) section {
	switch strings.ToUpper(name) {
	case "COMMENT":
		return sectionComment
	case "GRAPH":
		return sectionGraph
	case "TERMINALS":
		return sectionTerminals
	default:
		return sectionOther
	}
}

func (p *parser) graphLine(key string, fields []string) error {
	switch key {
	case "NODES":
		n, err := ints(fields, 1)
		if err != nil {
			return err
		}
		p.nodes = n[0]
		p.g = core.NewGraph(p.nodes, core.WithMultiEdges())
	case "EDGES", "ARCS":
	case "E":
		if p.g == nil {
			return errors.Wrap(ErrSyntax, "edge before Nodes")
		}
		v, err := ints(fields, 3)
		if err != nil {
			return err
		}
		if _, err := p.g.AddEdge(v[0]-1, v[1]-1, int64(v[2])); err != nil {
			return errors.Wrapf(err, "edge %d-%d", v[0], v[1])
		}
	default:
		return errors.Wrapf(ErrSyntax, "unexpected %q in Graph section", fields[0])
	}

	return nil
}

func (p *parser) terminalLine(key string, fields []string) error {
	switch key {
	case "TERMINALS":
	case "T":
		v, err := ints(fields, 1)
		if err != nil {
			return err
		}
		x := v[0] - 1
		if x < 0 || x >= p.nodes {
			return errors.Wrapf(core.ErrNodeOutOfRange, "terminal %d", v[0])
		}
		if _, dup := p.seen[x]; !dup {
			p.seen[x] = struct{}{}
			p.terms = append(p.terms, x)
		}
	default:
		return errors.Wrapf(ErrSyntax, "unexpected %q in Terminals section", fields[0])
	}

	return nil
}

// ints parses the k integer fields following the keyword.
func ints(fields []string, k int) ([]int, error) {
	if len(fields) < k+1 {
		return nil, errors.Wrapf(ErrSyntax, "%s needs %d values", fields[0], k)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "%s: %v", fields[0], err)
		}
		out[i] = v
	}

	return out, nil
}
