package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/bfs"
	"github.com/katalvlaran/lvsteiner/branchbound"
	"github.com/katalvlaran/lvsteiner/kou"
	"github.com/katalvlaran/lvsteiner/localsearch"
	"github.com/katalvlaran/lvsteiner/mehlhorn"
	"github.com/katalvlaran/lvsteiner/stp"
	"github.com/katalvlaran/lvsteiner/tree"
)

// Strategy names accepted by --strategies.
const (
	strategyMehlhorn    = "mehlhorn"
	strategyKou         = "kou"
	strategyLocalSearch = "localsearch"
	strategyBranchBound = "branchbound"
)

// errUnknownStrategy is returned for an unsupported --strategies entry.
var errUnknownStrategy = errors.New("unknown strategy")

// SolveOptions holds the solve sub-command configuration.
type SolveOptions struct {
	Input      string        `json:"input"`
	Output     string        `json:"output"`
	Format     string        `json:"format"`
	Seed       int64         `json:"seed"`
	TimeLimit  time.Duration `json:"timeLimit"`
	Strategies []string      `json:"strategies"`
	Iterations int           `json:"iterations"`
	BBNodes    int           `json:"bbNodes"`
	AddProb    float64       `json:"addProb"`
}

var solveOpts SolveOptions

var solveCmd = &cobra.Command{
	Use:   "solve [file.stp]",
	Short: "Read an STP instance and print the best Steiner tree found",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			solveOpts.Input = args[0]
		}
		dumpConfig(&solveOpts)

		in, closeIn, err := openInput(solveOpts.Input)
		if err != nil {
			return err
		}
		defer closeIn()
		out, closeOut, err := openOutput(solveOpts.Output)
		if err != nil {
			return err
		}
		defer closeOut()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return runSolve(ctx, in, out, solveOpts, clock.New())
	},
}

func initSolveFlags() {
	f := solveCmd.Flags()
	f.StringVarP(&solveOpts.Output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&solveOpts.Format, "format", stp.FormatText, "output format: text, json, yaml")
	f.Int64Var(&solveOpts.Seed, "seed", localsearch.DefaultSeed, "random seed of the local search")
	f.DurationVar(&solveOpts.TimeLimit, "time-limit", 10*time.Second, "overall time budget (0 = none)")
	f.StringSliceVar(&solveOpts.Strategies, "strategies",
		[]string{strategyMehlhorn, strategyKou, strategyLocalSearch, strategyBranchBound}, "strategies to run, in order")
	f.IntVar(&solveOpts.Iterations, "iterations", localsearch.DefaultMaxIterations, "local search moves (0 = until time limit)")
	f.IntVar(&solveOpts.BBNodes, "bb-nodes", 10000, "branch and bound search nodes (0 = unlimited)")
	f.Float64Var(&solveOpts.AddProb, "add-prob", localsearch.DefaultAddProb, "local search probability of an add move")
}

// runSolve reads an instance, runs the configured strategies in order under
// the shared time budget and writes the cheapest tree.
func runSolve(ctx context.Context, in io.Reader, out io.Writer, o SolveOptions, clk clock.Clock) error {
	if o.AddProb < 0 || o.AddProb > 1 {
		return errors.Errorf("add-prob %g not in [0,1]", o.AddProb)
	}
	if o.Iterations < 0 || o.BBNodes < 0 {
		return errors.Errorf("iterations (%d) and bb-nodes (%d) must not be negative", o.Iterations, o.BBNodes)
	}
	inst, err := stp.Read(in)
	if err != nil {
		return errors.Wrap(err, "read instance")
	}
	g := inst.Graph
	logger := log.WithFields(log.Fields{"name": inst.Name, "nodes": g.NodeCount(), "edges": g.EdgeCount(), "terminals": len(inst.Terminals)})
	logger.Info("instance loaded")

	if len(inst.Terminals) == 0 || !bfs.Connected(g, inst.Terminals) {
		logger.Warn("terminals are not connected")
		return stp.Write(out, stp.NewSolution(inst.Name, "", nil), o.Format)
	}

	start := clk.Now()
	remaining := func() time.Duration {
		if o.TimeLimit <= 0 {
			return 0
		}
		left := o.TimeLimit - clk.Since(start)
		if left <= 0 {
			return time.Nanosecond
		}
		return left
	}

	var (
		best     *tree.Tree
		bestAlgo string
	)
	offer := func(algo string, t *tree.Tree) {
		if t == nil || !t.Check(inst.Terminals) {
			return
		}
		if best == nil || t.Cost() < best.Cost() {
			best, bestAlgo = t, algo
			logger.WithFields(log.Fields{"algorithm": algo, "cost": t.Cost()}).Info("new best tree")
		}
	}

	for _, name := range o.Strategies {
		if err := ctx.Err(); err != nil {
			logger.WithError(err).Warn("interrupted")
			break
		}
		if o.TimeLimit > 0 && clk.Since(start) >= o.TimeLimit {
			logger.Info("time limit reached")
			break
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strategyMehlhorn:
			s, err := mehlhorn.New(g, inst.Terminals)
			if err != nil {
				return err
			}
			t, err := s.CurrentTree()
			if err != nil {
				return err
			}
			offer(strategyMehlhorn, t)
		case strategyKou:
			t, _, err := kou.Solve(g, inst.Terminals)
			if err != nil {
				return err
			}
			offer(strategyKou, t)
		case strategyLocalSearch:
			iterations := o.Iterations
			if iterations == 0 && o.TimeLimit <= 0 {
				iterations = localsearch.DefaultMaxIterations
			}
			res, err := localsearch.Run(ctx, g, inst.Terminals, best,
				localsearch.WithSeed(o.Seed),
				localsearch.WithAddProb(o.AddProb),
				localsearch.WithMaxIterations(iterations),
				localsearch.WithTimeLimit(remaining()),
				localsearch.WithClock(clk))
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			offer(strategyLocalSearch, res.Tree)
		case strategyBranchBound:
			res, err := branchbound.Run(ctx, g, inst.Terminals, best,
				branchbound.WithMaxNodes(o.BBNodes),
				branchbound.WithTimeLimit(remaining()),
				branchbound.WithClock(clk))
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			offer(strategyBranchBound, res.Tree)
			logger.WithFields(log.Fields{"nodes": res.Nodes, "pruned": res.Pruned, "complete": res.Complete}).
				Debug("branch and bound done")
		default:
			return errors.Wrapf(errUnknownStrategy, "%q", name)
		}
	}

	return stp.Write(out, stp.NewSolution(inst.Name, bestAlgo, best), o.Format)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}

	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}

	return f, func() {
		if err := f.Close(); err != nil {
			log.Errorf("close output: %v", err)
		}
	}, nil
}
