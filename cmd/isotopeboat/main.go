// Command isotopeboat is the interactive shell around the solver: it
// reads commands from stdin, parses and solves puzzle files, and lets
// the operator swap the active algorithm and heuristic between runs.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/config"
	"github.com/vxm/isotopeboat/cost"
	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/errs"
	"github.com/vxm/isotopeboat/logging"
	"github.com/vxm/isotopeboat/puzzleio"
	"github.com/vxm/isotopeboat/search"
	"github.com/vxm/isotopeboat/solver"
)

const configPath = "isotopeboat.toml"

func main() {
	config.Setup(configPath)
	sh := newShell()
	sh.run(os.Stdin, os.Stdout)
}

// shell holds the state an interactive session carries between
// commands: the selected algorithm and heuristic, and the most recent
// completed search, kept around for "graph".
type shell struct {
	algorithm string
	heuristic string
	last      search.Algorithm
}

func newShell() *shell {
	return &shell{
		algorithm: config.Settings.Search.DefaultAlgorithm,
		heuristic: config.Settings.Search.DefaultHeuristic,
	}
}

func (sh *shell) run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "isotopeboat> solve <in> <out> | heuristic <name> | algorithm <name> | graph <outFile> | exit")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sh.dispatch(line, out)
	}
}

// dispatch runs a single command line. It recovers a panicked
// InternalInvariant only long enough to log it before re-panicking;
// per the error handling design, that error terminates the process
// rather than being swallowed.
func (sh *shell) dispatch(line string, out io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			logging.CLI().Errorf("internal invariant violated: %v", r)
			panic(r)
		}
	}()

	parts := strings.Fields(line)
	switch parts[0] {
	case "exit", "quit":
		os.Exit(0)
	case "solve":
		sh.solve(parts, out)
	case "heuristic":
		sh.setHeuristic(parts, out)
	case "algorithm":
		sh.setAlgorithm(parts, out)
	case "graph":
		sh.graph(parts, out)
	default:
		fmt.Fprintf(out, "unknown command %q\n", parts[0])
	}
}

func (sh *shell) setHeuristic(parts []string, out io.Writer) {
	if len(parts) != 2 {
		fmt.Fprintln(out, "usage: heuristic <smart|admissable|consistent>")
		return
	}
	if _, ok := heuristicFactories[parts[1]]; !ok {
		fmt.Fprintf(out, "unknown heuristic %q, selection unchanged\n", parts[1])
		return
	}
	sh.heuristic = parts[1]
}

func (sh *shell) setAlgorithm(parts []string, out io.Writer) {
	if len(parts) != 2 {
		fmt.Fprintln(out, "usage: algorithm <asgs|grbfgs|id-dfgs|bfts>")
		return
	}
	if _, ok := algorithmNames[parts[1]]; !ok {
		fmt.Fprintf(out, "unknown algorithm %q, selection unchanged\n", parts[1])
		return
	}
	sh.algorithm = parts[1]
}

var heuristicFactories = map[string]func(boardstate.BoardState) cost.Heuristic{
	"smart":      cost.Smart,
	"admissable": cost.Admissible,
	"consistent": cost.Consistent,
}

// algorithmNames is consulted only for membership; the dispatch to a
// concrete search.Run* happens in buildFactory, which also needs the
// puzzle's initial state to size IDDFGS's depth cap.
var algorithmNames = map[string]bool{
	"asgs":    true,
	"grbfgs":  true,
	"id-dfgs": true,
	"bfts":    true,
}

// buildFactory closes over the shell's current algorithm/heuristic
// selection and the puzzle's board size, producing the
// solver.AlgorithmFactory the facade drives.
func (sh *shell) buildFactory(initial boardstate.BoardState) solver.AlgorithmFactory {
	isGoal := func(s boardstate.BoardState) bool { return s.IsGoal() }
	heuristicName := sh.heuristic
	if _, ok := heuristicFactories[heuristicName]; !ok {
		heuristicName = "" // falls through to cost.Greedy below
	}

	switch sh.algorithm {
	case "bfts":
		return func(s boardstate.BoardState) search.Algorithm {
			return search.RunBFTS(s, boardstate.Neighbors, cost.StepCost, isGoal)
		}
	case "id-dfgs":
		depthCap := config.Settings.Search.IDDFGSDepthCap
		if depthCap <= 0 {
			depthCap = initial.Board.Cells()
		}
		return func(s boardstate.BoardState) search.Algorithm {
			return search.RunIDDFGS(s, boardstate.Neighbors, cost.StepCost, isGoal, depthCap)
		}
	case "grbfgs":
		h := cost.Greedy(initial)
		if factory, ok := heuristicFactories[heuristicName]; ok {
			h = factory(initial)
		}
		seed := config.Settings.TieBreak.Seed
		return func(s boardstate.BoardState) search.Algorithm {
			return search.RunGrBFGS(s, boardstate.Neighbors, cost.StepCost, isGoal, h, seed)
		}
	case "asgs":
		h := cost.Consistent(initial)
		if factory, ok := heuristicFactories[heuristicName]; ok {
			h = factory(initial)
		}
		seed := config.Settings.TieBreak.Seed
		return func(s boardstate.BoardState) search.Algorithm {
			return search.RunAStarGS(s, boardstate.Neighbors, cost.StepCost, isGoal, h, seed)
		}
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "cmd/isotopeboat: unrecognized algorithm selection "+sh.algorithm))
	}
}

// solve runs "solve <inFile> <outFile>". Malformed or inconsistent
// input aborts the command with a one-line message, per the error
// handling design; the shell itself stays up for the next command.
func (sh *shell) solve(parts []string, out io.Writer) {
	if len(parts) != 3 {
		fmt.Fprintln(out, "usage: solve <inFile> <outFile>")
		return
	}

	inFile, err := os.Open(parts[1])
	if err != nil {
		fmt.Fprintf(out, "solve: %v\n", err)
		return
	}
	defer inFile.Close()

	initial, err := puzzleio.Parse(inFile)
	if err != nil {
		fmt.Fprintf(out, "solve: %v\n", err)
		return
	}

	s := solver.New(sh.buildFactory(initial))
	result, alg := s.Run(initial)
	sh.last = alg

	if !result.Found {
		fmt.Fprintf(out, "solve: %v\n", errs.ErrUnsolvable)
		return
	}

	outFile, err := os.Create(parts[2])
	if err != nil {
		fmt.Fprintf(out, "solve: %v\n", err)
		return
	}
	defer outFile.Close()

	if err := puzzleio.Write(outFile, result); err != nil {
		fmt.Fprintf(out, "solve: %v\n", err)
	}
}

// graph renders the most recent solve's explored search tree as
// Graphviz DOT: one node per arena entry keyed by its board-state
// hash, one edge per parent/child pair labelled with the action that
// produced the child.
func (sh *shell) graph(parts []string, out io.Writer) {
	if len(parts) != 2 {
		fmt.Fprintln(out, "usage: graph <outFile>")
		return
	}
	if sh.last == nil {
		fmt.Fprintln(out, "graph: no completed search to render yet")
		return
	}

	g := gographviz.NewGraph()
	_ = g.SetName("search")
	_ = g.SetDir(true)

	nodes := sh.last.AllNodes()
	nodeName := func(idx int) string {
		return fmt.Sprintf("n%d_%d", idx, nodes[idx].State.Hash())
	}
	for i, n := range nodes {
		attrs := map[string]string{"label": fmt.Sprintf("%q", fmt.Sprint(n.State.Hash()))}
		if err := g.AddNode("search", nodeName(i), attrs); err != nil {
			fmt.Fprintf(out, "graph: %v\n", err)
			return
		}
	}
	for i, n := range nodes {
		if n.Parent < 0 {
			continue
		}
		attrs := map[string]string{"label": fmt.Sprintf("%q", actionLabel(n.Action))}
		if err := g.AddEdge(nodeName(n.Parent), nodeName(i), true, attrs); err != nil {
			fmt.Fprintf(out, "graph: %v\n", err)
			return
		}
	}

	outFile, err := os.Create(parts[1])
	if err != nil {
		fmt.Fprintf(out, "graph: %v\n", err)
		return
	}
	defer outFile.Close()

	if _, err := io.WriteString(outFile, g.String()); err != nil {
		fmt.Fprintf(out, "graph: %v\n", err)
	}
}

func actionLabel(a entities.Action) string {
	return fmt.Sprintf("%c%d%c", a.Kind.DisplayChar(), a.Index, a.DisplayChar())
}
