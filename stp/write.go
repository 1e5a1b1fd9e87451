package stp

import (
	"bufio"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvsteiner/tree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewSolution converts t into its serialized form. A nil tree yields an
// infeasible solution with no edges.
func NewSolution(name, algorithm string, t *tree.Tree) Solution {
	s := Solution{Name: name, Algorithm: algorithm, Edges: []SolutionEdge{}}
	if t == nil {
		return s
	}
	s.Feasible = true
	s.Value = t.Cost()
	for _, e := range t.Edges() {
		s.Edges = append(s.Edges, SolutionEdge{U: e.U + 1, V: e.V + 1, Weight: e.Weight})
	}

	return s
}

// Write renders sol to w in the given format.
func Write(w io.Writer, sol Solution, format string) error {
	switch format {
	case FormatText, "":
		bw := bufio.NewWriter(w)
		fmt.Fprintf(bw, "VALUE %d\n", sol.Value)
		for _, e := range sol.Edges {
			fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
		}
		return errors.Wrap(bw.Flush(), "stp: write text")
	case FormatJSON:
		b, err := json.MarshalIndent(sol, "", "  ")
		if err != nil {
			return errors.Wrap(err, "stp: encode json")
		}
		_, err = w.Write(append(b, '\n'))
		return errors.Wrap(err, "stp: write json")
	case FormatYAML:
		b, err := yaml.Marshal(&sol)
		if err != nil {
			return errors.Wrap(err, "stp: encode yaml")
		}
		_, err = w.Write(b)
		return errors.Wrap(err, "stp: write yaml")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// WriteInstance renders inst in STP format with 1-based node IDs.
func WriteInstance(w io.Writer, inst *Instance) error {
	g := inst.Graph
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "33D32945 STP File, STP Format Version 1.0")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "SECTION Comment")
	fmt.Fprintf(bw, "Name %q\n", inst.Name)
	fmt.Fprintln(bw, "END")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "SECTION Graph")
	fmt.Fprintf(bw, "Nodes %d\n", g.NodeCount())
	fmt.Fprintf(bw, "Edges %d\n", g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "E %d %d %d\n", e.From+1, e.To+1, e.Weight)
	}
	fmt.Fprintln(bw, "END")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "SECTION Terminals")
	fmt.Fprintf(bw, "Terminals %d\n", len(inst.Terminals))
	for _, x := range inst.Terminals {
		fmt.Fprintf(bw, "T %d\n", x+1)
	}
	fmt.Fprintln(bw, "END")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "EOF")

	return errors.Wrap(bw.Flush(), "stp: write instance")
}
