// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ctltest provides the test harness's building blocks as a
// command line tool, for generating probe ramps, driving ctlrender,
// and inspecting result images outside of go test:
//
//	ctltest ramp [flags] output.exr
//	ctltest render [flags] input.exr output.exr script.ctl...
//	ctltest stats image.exr...
//
// Configuration is read from ctltest.toml in the current directory if
// present, with the CTL_ROOT, CTLRENDER, and CTL_MODULE_PATH
// environment variables as fallbacks.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/ctlkit/ctltest/base/exec"
	"github.com/ctlkit/ctltest/base/iox/exrx"
	"github.com/ctlkit/ctltest/base/logx"
	"github.com/ctlkit/ctltest/ctltest"
	"github.com/ctlkit/ctltest/ramp"
	"github.com/ctlkit/ctltest/render"
)

func main() {
	flag.Usage = usage
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Parse()
	if *verbose {
		logx.UserLevelFromString("info")
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "ramp":
		err = rampCmd(args[1:])
	case "render":
		err = renderCmd(args[1:])
	case "stats":
		err = statsCmd(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "ctltest: unknown command %q\n", args[0])
		usage()
		os.Exit(2)
	}
	if err != nil {
		logx.PrintlnError("ctltest: ", err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: ctltest [-v] command [arguments]

commands:
	ramp [-space linear|log2|log10] [-start r,g,b] [-end r,g,b] [-samples n] output.exr
		generate a probe ramp image
	render [-ctl script]... input.exr output.exr
		run ctlrender over an image with the configured module path
	stats image.exr...
		print per-channel statistics of EXR images
`)
}

// triple parses a comma-separated R,G,B value list; a single value
// applies to all three channels.
func triple(s string) ([3]float32, error) {
	var v [3]float32
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 3 {
		return v, fmt.Errorf("expected 1 or 3 comma-separated values, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return v, fmt.Errorf("invalid value %q: %w", p, err)
		}
		v[i] = float32(f)
	}
	if len(parts) == 1 {
		v[1], v[2] = v[0], v[0]
	}
	return v, nil
}

func rampCmd(args []string) error {
	fs := flag.NewFlagSet("ramp", flag.ExitOnError)
	space := fs.String("space", "linear", "sample spacing: linear, log2, or log10")
	start := fs.String("start", "0", "first sample values as r,g,b")
	end := fs.String("end", "1", "last sample values as r,g,b")
	samples := fs.Int("samples", ramp.DefaultSamples, "number of samples")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("ramp: expected exactly one output file, got %d arguments", fs.NArg())
	}

	sp := ramp.Spec{Samples: *samples}
	var err error
	if sp.Space, err = ramp.ParseSpace(*space); err != nil {
		return err
	}
	if sp.Start, err = triple(*start); err != nil {
		return fmt.Errorf("ramp: -start: %w", err)
	}
	if sp.End, err = triple(*end); err != nil {
		return fmt.Errorf("ramp: -end: %w", err)
	}

	img, err := sp.Image(1)
	if err != nil {
		return err
	}
	out := fs.Arg(0)
	logx.PrintlnInfo("writing ", out)
	return exrx.Save(img, out)
}

func renderCmd(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var ctls stringList
	fs.Var(&ctls, "ctl", "CTL script file to apply, repeatable, applied in order")
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("render: expected input and output files, got %d arguments", fs.NArg())
	}

	cfg, err := ctltest.LoadConfig()
	if err != nil {
		return err
	}
	rc := &render.Config{Command: cfg.Command, ModulePath: cfg.ModulePath, Exec: exec.Major()}
	res, err := rc.Render(fs.Arg(0), fs.Arg(1), ctls...)
	if res != nil && res.Stdout != "" {
		logx.PrintlnInfo(res.Stdout)
	}
	// ctlrender writes its diagnostics to stderr even on success
	if err == nil && res.Stderr != "" {
		logx.PrintlnWarn(res.Stderr)
	}
	return err
}

func statsCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("stats: expected at least one image file")
	}
	for _, path := range args {
		img, err := exrx.Open(path)
		if err != nil {
			return err
		}
		printStats(path, img)
	}
	return nil
}

func printStats(path string, img *exr.RGBAImage) {
	b := img.Bounds()
	fmt.Printf("%s: %dx%d\n", path, b.Dx(), b.Dy())

	names := [4]string{"R", "G", "B", "A"}
	var min, max, sum [4]float64
	for c := range min {
		min[c] = math.Inf(1)
		max[c] = math.Inf(-1)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.RGBA(x, y)
			for c, v := range [4]float64{float64(r), float64(g), float64(bl), float64(a)} {
				min[c] = math.Min(min[c], v)
				max[c] = math.Max(max[c], v)
				sum[c] += v
			}
		}
	}
	n := float64(b.Dx() * b.Dy())
	for c, name := range names {
		fmt.Printf("  %s: min %g  max %g  mean %g\n", name, min[c], max[c], sum[c]/n)
	}
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
