package stp

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvsteiner/core"
)

// Sentinel errors.
var (
	// ErrSyntax marks a malformed line.
	ErrSyntax = errors.New("stp: syntax error")

	// ErrMissingSection is returned when the Graph or Terminals section is absent.
	ErrMissingSection = errors.New("stp: missing section")

	// ErrUnknownFormat is returned by Write for an unsupported format name.
	ErrUnknownFormat = errors.New("stp: unknown output format")
)

// Output format names accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Instance is a parsed Steiner tree problem.
type Instance struct {
	Name      string
	Graph     *core.Graph
	Terminals []int
}

// SolutionEdge is one tree edge in 1-based node IDs.
type SolutionEdge struct {
	U      int   `json:"u" yaml:"u"`
	V      int   `json:"v" yaml:"v"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Solution is the serialized form of a Steiner tree.
type Solution struct {
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Algorithm string         `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Value     int64          `json:"value" yaml:"value"`
	Feasible  bool           `json:"feasible" yaml:"feasible"`
	Edges     []SolutionEdge `json:"edges" yaml:"edges"`
}
