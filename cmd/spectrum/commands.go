package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JamhadB/energy-spectrum-analyzer/histogram"
	"github.com/JamhadB/energy-spectrum-analyzer/spectree"

	"github.com/urfave/cli/v2"
)

var boundFlags = []cli.Flag{
	&cli.Float64Flag{
		Name:  "low",
		Usage: "lower energy bound in keV (inclusive); prompted for if unset",
	},
	&cli.Float64Flag{
		Name:  "high",
		Usage: "upper energy bound in keV (inclusive); prompted for if unset",
	},
}

var binsFlag = &cli.IntFlag{
	Name:  "bins",
	Usage: "number of histogram buckets",
	Value: 20,
}

var inorderCmd = &cli.Command{
	Name:  "inorder",
	Usage: "list distinct energies in ascending order with their counts",
	Action: func(cctx *cli.Context) error {
		energies, err := loadEnergies(cctx)
		if err != nil {
			return err
		}
		return printInorder(cctx.App.Writer, buildTree(cctx, energies))
	},
}

var queryCmd = &cli.Command{
	Name:  "query",
	Usage: "count photons with energies in an inclusive range",
	Flags: boundFlags,
	Action: func(cctx *cli.Context) error {
		energies, err := loadEnergies(cctx)
		if err != nil {
			return err
		}
		return runRangeQuery(cctx, buildTree(cctx, energies))
	},
}

var treeCmd = &cli.Command{
	Name:  "tree",
	Usage: "print the shape of the search tree",
	Action: func(cctx *cli.Context) error {
		energies, err := loadEnergies(cctx)
		if err != nil {
			return err
		}
		tree := buildTree(cctx, energies)
		_, err = fmt.Fprintln(cctx.App.Writer, tree.String())
		return err
	},
}

var histCmd = &cli.Command{
	Name:  "hist",
	Usage: "print a histogram of the raw energies",
	Flags: []cli.Flag{binsFlag},
	Action: func(cctx *cli.Context) error {
		energies, err := loadEnergies(cctx)
		if err != nil {
			return err
		}
		return histogram.New(energies, cctx.Int("bins")).Describe(cctx.App.Writer)
	},
}

// analyze runs the whole interactive session: listing, range query and
// histogram.
func analyze(cctx *cli.Context) error {
	w := cctx.App.Writer
	if _, err := fmt.Fprintln(w, "Energy Spectrum Analyzer"); err != nil {
		return err
	}
	energies, err := loadEnergies(cctx)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, sourceSummary(cctx, energies)); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\nBuilding Binary Search Tree...\n\n"); err != nil {
		return err
	}
	tree := buildTree(cctx, energies)
	if err := printInorder(w, tree); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nRange Query"); err != nil {
		return err
	}
	if err := runRangeQuery(cctx, tree); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nSpectrum:"); err != nil {
		return err
	}
	return histogram.New(energies, binsFlag.Value).Describe(w)
}

// sourceSummary describes where the session's energies came from.
func sourceSummary(cctx *cli.Context, energies []float64) string {
	switch cctx.String("source") {
	case "file":
		return fmt.Sprintf("Loaded %d energies from %s", len(energies), cctx.String("file"))
	case "sim":
		return fmt.Sprintf("Generated %d simulated photon energies.", len(energies))
	default:
		return fmt.Sprintf("Using hardcoded sample dataset: %v", energies)
	}
}

func printInorder(w io.Writer, tree *spectree.Tree) error {
	var sb strings.Builder
	fmt.Fprintln(&sb, "Inorder Traversal (energy, count):")
	for _, e := range tree.Inorder() {
		fmt.Fprintf(&sb, "  %v keV -> %d hits\n", e.Energy, e.Count)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func runRangeQuery(cctx *cli.Context, tree *spectree.Tree) error {
	in := bufio.NewReader(cctx.App.Reader)
	low, err := bound(cctx, in, "low", "Enter lower energy bound: ")
	if err != nil {
		return fmt.Errorf("invalid lower bound: %w", err)
	}
	high, err := bound(cctx, in, "high", "Enter upper energy bound: ")
	if err != nil {
		return fmt.Errorf("invalid upper bound: %w", err)
	}
	if low > high {
		log.Warn("lower bound is above upper bound", "low", low, "high", high)
	}
	_, err = fmt.Fprintf(cctx.App.Writer, "Photons in [%v, %v] keV: %d\n", low, high, tree.RangeQuery(low, high))
	return err
}

// bound returns the named flag if it was given, and otherwise prompts for it
// on the app's input.
func bound(cctx *cli.Context, in *bufio.Reader, name string, prompt string) (float64, error) {
	var v float64
	if cctx.IsSet(name) {
		v = cctx.Float64(name)
	} else {
		if _, err := fmt.Fprint(cctx.App.Writer, prompt); err != nil {
			return 0, err
		}
		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, err
		}
		v, err = strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return 0, err
		}
	}
	// NaN compares false against every key and would match the whole tree
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%s bound is NaN", name)
	}
	return v, nil
}
