package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/JamhadB/energy-spectrum-analyzer/dataset"
	"github.com/JamhadB/energy-spectrum-analyzer/spectree"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

var log = slog.Default().With("system", "spectrum")

func main() {
	if err := run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "spectrum"
	app.Usage = "photon energy spectrum analyzer"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "source",
			Usage:   "where energies come from: sample, file or sim",
			Value:   "sample",
			EnvVars: []string{"SPECTRUM_SOURCE"},
		},
		&cli.StringFlag{
			Name:    "file",
			Usage:   "comma-delimited energy file, for --source=file",
			EnvVars: []string{"SPECTRUM_FILE"},
		},
		&cli.IntFlag{
			Name:  "events",
			Usage: "number of simulated events, for --source=sim",
			Value: 1000,
		},
		&cli.Float64Flag{
			Name:  "mu",
			Usage: "mean of simulated energies, in keV",
			Value: 30.0,
		},
		&cli.Float64Flag{
			Name:  "sigma",
			Usage: "standard deviation of simulated energies, in keV",
			Value: 5.0,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "random seed for simulation; 0 picks one from the clock",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "verify tree invariants after building it",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity: debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{"SPECTRUM_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format: text or json",
			Value:   "text",
			EnvVars: []string{"SPECTRUM_LOG_FORMAT"},
		},
	}

	app.Before = func(cctx *cli.Context) error {
		logger, err := setupSlog(cctx.App.ErrWriter, cctx.String("log-level"), cctx.String("log-format"))
		if err != nil {
			return err
		}
		log = logger.With("system", "spectrum")
		return nil
	}

	app.Action = analyze
	app.Commands = []*cli.Command{
		inorderCmd,
		queryCmd,
		treeCmd,
		histCmd,
	}
	return app
}

// loadEnergies returns energies from the source selected by the global flags.
func loadEnergies(cctx *cli.Context) ([]float64, error) {
	switch src := cctx.String("source"); src {
	case "sample":
		energies := dataset.Sample()
		log.Info("using sample dataset", "energies", len(energies))
		return energies, nil
	case "file":
		path := cctx.String("file")
		if path == "" {
			return nil, fmt.Errorf("--file is required with --source=file")
		}
		energies, err := dataset.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading energies: %w", err)
		}
		log.Info("loaded energies", "path", path, "energies", len(energies))
		return energies, nil
	case "sim":
		seed := cctx.Uint64("seed")
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		energies := dataset.Simulate(cctx.Int("events"), cctx.Float64("mu"), cctx.Float64("sigma"), seed)
		log.Info("simulated energies", "energies", len(energies), "mu", cctx.Float64("mu"), "sigma", cctx.Float64("sigma"), "seed", seed)
		return energies, nil
	default:
		return nil, fmt.Errorf("unknown source: %#v", src)
	}
}

func buildTree(cctx *cli.Context, energies []float64) *spectree.Tree {
	start := time.Now()
	tree := dataset.Build(energies)
	log.Debug("built tree", "insertions", tree.Len(), "height", tree.Height(), "duration", time.Since(start))
	if cctx.Bool("check") {
		tree.Check()
		log.Debug("tree invariants hold")
	}
	return tree
}
