// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command terragen generates 3D Tiles terrain artifacts (tileset JSON or
// a single tile's b3dm payload) from the terra3d library. File I/O,
// logging, and configuration loading are ambient concerns that live here,
// outside the core generator.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/tilecraft/terra3d"
	"github.com/tilecraft/terra3d/internal/debugviz"
	"github.com/tilecraft/terra3d/quadtree"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("terragen failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("terragen", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a terragen yaml configuration file")
	hemisphere := fs.String("hemisphere", "west", "west or east")
	index := fs.Uint64("index", 0, "tile index within the hemisphere")
	out := fs.String("out", "", "output file path (required)")
	tilesetOnly := fs.Bool("tileset", false, "emit the root tileset JSON instead of a single tile's b3dm")
	debugHeightmap := fs.String("debug-heightmap", "", "optional path to write a debug heightmap PNG")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []terra3d.Option
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		opts = loaded
	}

	gen, err := terra3d.NewGenerator(opts...)
	if err != nil {
		return fmt.Errorf("terragen: construct generator: %w", err)
	}

	hemi := quadtree.West
	if *hemisphere == "east" {
		hemi = quadtree.East
	}
	addr := quadtree.Address{Hemisphere: hemi, Index: *index}

	if *tilesetOnly {
		root := gen.GetRoot()
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("terragen: encode tileset json: %w", err)
		}
		return writeOutput(*out, data)
	}

	payload, err := gen.GenerateTerrain(addr)
	if err != nil {
		return fmt.Errorf("terragen: generate terrain: %w", err)
	}
	if err := writeOutput(*out, payload); err != nil {
		return err
	}

	if *debugHeightmap != "" {
		if err := writeDebugHeightmap(gen, addr, *debugHeightmap); err != nil {
			return err
		}
	}
	slog.Info("terragen: wrote tile", "hemisphere", *hemisphere, "index", *index, "bytes", len(payload))
	return nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("terragen: -out is required")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("terragen: write %s: %w", path, err)
	}
	return nil
}

func writeDebugHeightmap(gen *terra3d.Generator, addr quadtree.Address, path string) error {
	reg, err := gen.GenerateBoundingRegion(addr)
	if err != nil {
		return fmt.Errorf("terragen: bounding region for heightmap: %w", err)
	}
	const grid = 32
	heights := make([][]float64, grid)
	for i := range heights {
		heights[i] = make([]float64, grid)
		lon := reg.West + (reg.East-reg.West)*float64(i)/float64(grid-1)
		for j := range heights[i] {
			lat := reg.South + (reg.North-reg.South)*float64(j)/float64(grid-1)
			heights[i][j] = gen.SampleHeight(lon, lat, 6)
		}
	}
	img := debugviz.Render(heights, (reg.MinHeight+reg.MaxHeight)/2, gen.Seed(), 512, 512)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("terragen: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("terragen: encode png: %w", err)
	}
	return nil
}
