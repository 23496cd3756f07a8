// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vlplot resolves the axes of a declarative chart and plots
// it.
//
// vlplot reads a chart specification in YAML or JSON, resolves its x
// and y axes against the chart's data, and writes an SVG plot. With
// -table it instead prints the resolved axis configuration.
//
// The data is the file named on the command line if given, otherwise
// the chart's data.url (relative to the specification file), otherwise
// its inline data.values. Data files may be .csv, .json or .xlsx.
//
// Default flags may be given in the VLPLOT_FLAGS environment variable,
// which is split like a shell command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/vlaxis/axis"
	"github.com/aclements/vlaxis/chart"
	"github.com/aclements/vlaxis/datasource"
	"github.com/aclements/vlaxis/ggrender"
	"github.com/kballard/go-shellquote"
)

func main() {
	log.SetPrefix("vlplot: ")
	log.SetFlags(0)

	var (
		flagSpec    = flag.String("spec", "-", "read the chart specification from `file`")
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable   = flag.Bool("table", false, "output the resolved axes instead of a plot")
		flagVerbose = flag.Bool("v", false, "log axis resolution to stderr")
		flagWidth   = flag.Int("width", 500, "plot width in `pixels`")
		flagHeight  = flag.Int("height", 350, "plot height in `pixels`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [data]\n", os.Args[0])
		flag.PrintDefaults()
	}
	envArgs, err := shellquote.Split(os.Getenv("VLPLOT_FLAGS"))
	if err != nil {
		log.Fatalf("bad VLPLOT_FLAGS: %v", err)
	}
	flag.CommandLine.Parse(append(envArgs, os.Args[1:]...))
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagVerbose {
		axis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Read the chart.
	spec, err := readSpec(*flagSpec)
	if err != nil {
		log.Fatal(err)
	}
	c, err := chart.Compile(spec)
	if err != nil {
		log.Fatal(err)
	}
	data, err := loadData(c, *flagSpec, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	// Resolve axes.
	axes, err := axis.Assemble(c, data)
	if err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(f, axesTable(axes))
		return
	}

	// Plot.
	p, err := ggrender.NewPlot(c, axes)
	if err != nil {
		log.Fatal(err)
	}
	if *flagSpec != "-" {
		p.Add(gg.Title(*flagSpec))
	}
	if err := p.WriteSVG(f, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
}

func readSpec(path string) (*chart.Spec, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}
	spec, err := chart.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// loadData returns the data of chart c, whose specification was read
// from specPath. If dataPath is not "", it overrides the chart's own
// data.
func loadData(c *chart.Chart, specPath, dataPath string) (*table.Table, error) {
	if dataPath != "" {
		return datasource.Load(dataPath)
	}
	switch {
	case c.Data == nil:
	case c.Data.URL != "":
		path := c.Data.URL
		if !filepath.IsAbs(path) && specPath != "-" {
			path = filepath.Join(filepath.Dir(specPath), path)
		}
		return datasource.Load(path)
	case c.Data.Values != nil:
		return datasource.FromRecords(c.Data.Values), nil
	}
	// Literal-only charts need no data.
	return new(table.Table), nil
}

// axesTable summarizes axes as a table with one row per axis.
func axesTable(axes *axis.Axes) *table.Table {
	var names, types, mins, maxs, transforms, ticks, labels []string
	for _, cfg := range []*axis.Config{axes.X, axes.Y} {
		names = append(names, cfg.Channel)
		types = append(types, cfg.Type.String())
		mins = append(mins, cfg.Labels.Format(cfg.Min))
		maxs = append(maxs, cfg.Labels.Format(cfg.Max))
		transforms = append(transforms, cfg.Transform.String())
		ticks = append(ticks, cfg.Ticks.String())

		var ls []string
		for _, x := range cfg.Ticks.Positions {
			ls = append(ls, cfg.Labels.Format(x))
		}
		switch {
		case !cfg.LabelsVisible:
			labels = append(labels, "hidden")
		case cfg.Ticks.Auto:
			labels = append(labels, "auto")
		default:
			labels = append(labels, strings.Join(ls, "; "))
		}
	}
	return table.NewBuilder(nil).
		Add("axis", names).
		Add("type", types).
		Add("min", mins).
		Add("max", maxs).
		Add("transform", transforms).
		Add("ticks", ticks).
		Add("labels", labels).
		Done()
}
