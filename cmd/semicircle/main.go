// seehuhn.de/go/semicircle - elliptical wedges and arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command semicircle renders the wedges and arcs of a scene file.
//
// Usage:
//
//	semicircle [-o out.svg|out.png|out.pdf] [-hit x,y] scene.yaml
//
// The output format is chosen by the file name extension.  With -hit, the
// names of all shapes containing the given pixel are printed.  Defaults
// are read from the environment variables SEMICIRCLE_CLICK_TOLERANCE,
// SEMICIRCLE_LOG_LEVEL, SEMICIRCLE_WIDTH and SEMICIRCLE_HEIGHT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle"
	"seehuhn.de/go/semicircle/internal/scene"
)

func main() {
	out := flag.String("o", "", "output file (.svg, .png or .pdf)")
	hit := flag.String("hit", "", "report the shapes containing pixel `x,y`")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 || *out == "" && *hit == "" {
		flag.Usage()
		os.Exit(2)
	}

	set, err := scene.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := set.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, set, flag.Arg(0), *out, *hit); err != nil {
		logger.Error("failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, set *scene.Settings, sceneFile, out, hit string) error {
	sc, err := scene.Load(sceneFile, set)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("scene file %q not found", sceneFile)
	} else if err != nil {
		return err
	}
	logger.Debug("scene loaded",
		"file", sceneFile, "width", sc.Width, "height", sc.Height, "shapes", len(sc.Shapes))

	d, err := sc.Build(set)
	if err != nil {
		return err
	}
	d.Host.OnRedraw = func(s *semicircle.Shape) {
		logger.Debug("redraw", "start", s.StartAngle(), "stop", s.StopAngle())
	}
	for _, item := range d.Items {
		logger.Debug("shape",
			"name", item.Name,
			"direction", item.Shape.Direction(),
			"semicircle", item.Shape.IsSemicircle())
	}

	if hit != "" {
		p, err := parsePoint(hit)
		if err != nil {
			return err
		}
		names := d.HitTest(p)
		logger.Debug("hit test", "x", p.X, "y", p.Y, "hits", len(names))
		for _, name := range names {
			fmt.Println(name)
		}
	}

	if out != "" {
		if err := write(d, out); err != nil {
			return err
		}
		logger.Info("wrote output", "file", out)
	}
	return nil
}

func write(d *scene.Drawing, fname string) (err error) {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext == ".pdf" {
		return d.WritePDF(fname)
	}
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("%s: unsupported output format %q", fname, ext)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if ext == ".svg" {
		return d.WriteSVG(f)
	}
	return d.WritePNG(f)
}

// parsePoint parses "x,y".
func parsePoint(s string) (vec.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return vec.Vec2{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return vec.Vec2{X: x, Y: y}, nil
}
