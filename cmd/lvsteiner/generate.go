package main

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/stp"
)

// Generator kinds accepted by --kind.
const (
	kindPath   = "path"
	kindGrid   = "grid"
	kindRandom = "random"
)

var errUnknownKind = errors.New("unknown generator kind")

// GenerateOptions holds the generate sub-command configuration.
type GenerateOptions struct {
	Output    string `json:"output"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Nodes     int    `json:"nodes"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Extra     int    `json:"extra"`
	Terminals int    `json:"terminals"`
	Seed      int64  `json:"seed"`
	MinWeight int64  `json:"minWeight"`
	MaxWeight int64  `json:"maxWeight"`
}

var genOpts GenerateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random STP instance",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		dumpConfig(&genOpts)
		out, closeOut, err := openOutput(genOpts.Output)
		if err != nil {
			return err
		}
		defer closeOut()

		return runGenerate(out, genOpts)
	},
}

func initGenerateFlags() {
	f := generateCmd.Flags()
	f.StringVarP(&genOpts.Output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&genOpts.Name, "name", "generated", "instance name")
	f.StringVar(&genOpts.Kind, "kind", kindRandom, "topology: path, grid, random")
	f.IntVar(&genOpts.Nodes, "nodes", 100, "node count (path, random)")
	f.IntVar(&genOpts.Rows, "rows", 10, "grid rows")
	f.IntVar(&genOpts.Cols, "cols", 10, "grid columns")
	f.IntVar(&genOpts.Extra, "extra", 200, "extra random edges on top of the spanning tree")
	f.IntVar(&genOpts.Terminals, "terminals", 10, "terminal count")
	f.Int64Var(&genOpts.Seed, "seed", 1, "random seed")
	f.Int64Var(&genOpts.MinWeight, "min-weight", 1, "smallest edge weight")
	f.Int64Var(&genOpts.MaxWeight, "max-weight", 100, "largest edge weight")
}

// runGenerate builds the configured instance and writes it in STP format.
func runGenerate(out io.Writer, o GenerateOptions) error {
	if o.MinWeight < 1 || o.MaxWeight < o.MinWeight {
		return errors.Errorf("invalid weight range [%d,%d]", o.MinWeight, o.MaxWeight)
	}
	var con builder.Constructor
	switch o.Kind {
	case kindPath:
		con = builder.Path(o.Nodes)
	case kindGrid:
		con = builder.Grid(o.Rows, o.Cols)
	case kindRandom:
		con = builder.RandomConnected(o.Nodes, o.Extra)
	default:
		return errors.Wrapf(errUnknownKind, "%q", o.Kind)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(o.Seed), builder.WithUniformWeight(o.MinWeight, o.MaxWeight)}
	g, err := builder.BuildGraph(nil, bopts, con)
	if err != nil {
		return errors.Wrap(err, "build graph")
	}
	terms, err := builder.PickTerminals(g.NodeCount(), o.Terminals, rngFor(o.Seed))
	if err != nil {
		return errors.Wrap(err, "pick terminals")
	}

	return stp.WriteInstance(out, &stp.Instance{Name: o.Name, Graph: g, Terminals: terms})
}

// rngFor derives the terminal sampling stream from the instance seed.
func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + 1))
}
