package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/hexlab/hexlab"
	"github.com/unixpickle/hexlab/internal/config"
	"github.com/unixpickle/hexlab/internal/logger"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

func main() {
	var configPath string
	var writeConfig string
	var cellsX, cellsY, cellsZ int
	var jitter float64
	var seed int64
	var erodeDilate int
	var peel int
	var planeOffset float64
	var digX, digY float64
	var dig bool
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&writeConfig, "write-config", "", "save the final config to this path")
	flag.IntVar(&cellsX, "nx", 0, "override cells along x")
	flag.IntVar(&cellsY, "ny", 0, "override cells along y")
	flag.IntVar(&cellsZ, "nz", 0, "override cells along z")
	flag.Float64Var(&jitter, "jitter", -1, "override relative vertex jitter")
	flag.Int64Var(&seed, "seed", 0, "override jitter random seed")
	flag.IntVar(&erodeDilate, "erode-dilate", -1, "override erode/dilate strength")
	flag.IntVar(&peel, "peel", -1, "override peeling depth")
	flag.Float64Var(&planeOffset, "plane-offset", -1, "override plane slider in [0, 1]")
	flag.BoolVar(&dig, "dig", false, "dig one cell with a ray cast along +z")
	flag.Float64Var(&digX, "dig-x", 0.5, "x coordinate of the dig ray, relative to the bounds")
	flag.Float64Var(&digY, "dig-y", 0.5, "y coordinate of the dig ray, relative to the bounds")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hex_to_stl [flags] <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputPath := args[0]

	cfg, err := config.Load(configPath)
	essentials.Must(err)
	if cellsX > 0 {
		cfg.Grid.CellsX = cellsX
	}
	if cellsY > 0 {
		cfg.Grid.CellsY = cellsY
	}
	if cellsZ > 0 {
		cfg.Grid.CellsZ = cellsZ
	}
	if jitter >= 0 {
		cfg.Grid.Jitter = jitter
	}
	if seed != 0 {
		cfg.Grid.Seed = seed
	}
	if erodeDilate >= 0 {
		cfg.View.ErodeDilateLevel = erodeDilate
	}
	if peel >= 0 {
		cfg.View.Peeling.Depth = peel
	}
	if planeOffset >= 0 {
		cfg.View.Plane.Offset = planeOffset
	}
	essentials.Must(cfg.Validate())

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	app := hexlab.NewApp()
	app.Logger = logger.Log

	logger.Log.Info("creating mesh")
	vertices, indices := cfg.Grid.Generate()
	essentials.Must(app.ImportMesh(vertices, indices))
	essentials.Must(app.ApplySettings(cfg.View))

	if dig {
		mesh := app.Mesh()
		size := mesh.Max().Sub(mesh.Min())
		ray := &model3d.Ray{
			Origin:    mesh.Min().Add(model3d.XYZ(size.X*digX, size.Y*digY, -1)),
			Direction: model3d.Z(1),
		}
		cell, err := app.Dig(ray)
		essentials.Must(err)
		logger.Log.Info("dug cell", zap.Int("cell", cell))
	}

	logger.Log.Info("saving visible surface",
		zap.Int("visible", len(app.Mesh().VisibleCells())),
		zap.String("path", outputPath))
	surface := hexlab.VisibleSurface(app.Mesh())
	essentials.Must(surface.SaveGroupedSTL(outputPath))

	if writeConfig != "" {
		cfg.View = app.Settings()
		essentials.Must(cfg.SaveTo(writeConfig))
	}
}
