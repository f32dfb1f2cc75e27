package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/hexlab/hexlab"
	"github.com/unixpickle/hexlab/internal/config"
	"github.com/unixpickle/hexlab/internal/logger"
	"go.uber.org/zap"
)

func main() {
	var configPath string
	var cellsX, cellsY, cellsZ int
	var jitter float64
	var seed int64
	var measureName string
	var logLevel, logFile string
	var allMeasures bool
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.IntVar(&cellsX, "nx", 0, "override cells along x")
	flag.IntVar(&cellsY, "ny", 0, "override cells along y")
	flag.IntVar(&cellsZ, "nz", 0, "override cells along z")
	flag.Float64Var(&jitter, "jitter", -1, "override relative vertex jitter")
	flag.Int64Var(&seed, "seed", 0, "override jitter random seed")
	flag.StringVar(&measureName, "measure", "", "override quality measure")
	flag.StringVar(&logLevel, "log-level", "", "override log level")
	flag.StringVar(&logFile, "log-file", "", "override log file")
	flag.BoolVar(&allMeasures, "all-measures", false, "print statistics of every measure")
	flag.Parse()

	if len(flag.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: hex_info [flags]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	essentials.Must(err)
	overrideInt(&cfg.Grid.CellsX, cellsX)
	overrideInt(&cfg.Grid.CellsY, cellsY)
	overrideInt(&cfg.Grid.CellsZ, cellsZ)
	if jitter >= 0 {
		cfg.Grid.Jitter = jitter
	}
	if seed != 0 {
		cfg.Grid.Seed = seed
	}
	overrideString(&cfg.View.QualityMeasure, measureName)
	overrideString(&cfg.Logging.Level, logLevel)
	overrideString(&cfg.Logging.LogFile, logFile)
	essentials.Must(cfg.Validate())

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	logger.Log.Info("generating grid",
		zap.Int("nx", cfg.Grid.CellsX),
		zap.Int("ny", cfg.Grid.CellsY),
		zap.Int("nz", cfg.Grid.CellsZ))
	vertices, indices := cfg.Grid.Generate()

	app := hexlab.NewApp()
	app.Logger = logger.Log
	essentials.Must(app.ImportMesh(vertices, indices))
	essentials.Must(app.ApplySettings(cfg.View))

	stats := app.MeshStats()
	fmt.Println("Vertices:", stats.NumVertices)
	fmt.Println("Cells:", stats.NumCells)
	fmt.Println("Faces:", stats.NumFaces, "boundary:", stats.NumBoundaryFaces)
	fmt.Printf("Edge length: min=%f max=%f avg=%f\n",
		stats.MinEdgeLength, stats.MaxEdgeLength, stats.AvgEdgeLength)
	fmt.Println("Average volume:", stats.AvgVolume)
	fmt.Println("Bounds:", stats.Bounds.Min(), stats.Bounds.Max())

	if allMeasures {
		for _, measure := range hexlab.Measures() {
			if !measure.Implemented() {
				continue
			}
			qs := hexlab.EvaluateQuality(app.Mesh(), measure, stats.AvgVolume, app.Concurrency)
			printQuality(qs)
		}
		// Restore the arrays of the configured measure.
		essentials.Must(app.SetQualityMeasure(app.QualityMeasure()))
	} else {
		printQuality(app.QualityStats())
	}

	fmt.Println("Hidden cells:", app.Mesh().NumHidden())
	singular := app.Mesh().SingularEdges()
	fmt.Println("Singular edges:", len(singular))
	for _, e := range singular {
		logger.Log.Debug("singular edge", zap.Int("a", e.A), zap.Int("b", e.B),
			zap.Int("valence", e.Valence))
	}
}

func printQuality(qs hexlab.QualityStats) {
	fmt.Printf("%s: min=%f max=%f mean=%f variance=%f\n",
		qs.Measure, qs.Min, qs.Max, qs.Mean, qs.Variance)
}

func overrideInt(dst *int, value int) {
	if value != 0 {
		*dst = value
	}
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
