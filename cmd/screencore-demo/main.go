// Copyright (c) 2023  The Go-Curses Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	screencore "github.com/go-curses/screencore"
	"github.com/go-curses/screencore/ansiencoder"
	"github.com/go-curses/screencore/log"
	"github.com/go-curses/screencore/paint"
)

// ttySink is the reference WriterSink: raw stdout with the terminal placed
// into raw mode for the duration of the program.
type ttySink struct {
	mu      sync.Mutex
	restore func() error
	cols    int
	rows    int
}

func newTTYSink() (*ttySink, error) {
	fd := int(os.Stdout.Fd())
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = 80, 24
	}
	var restore func() error
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err == nil {
			restore = func() error { return term.Restore(fd, state) }
		}
	}
	return &ttySink{restore: restore, cols: cols, rows: rows}, nil
}

func (s *ttySink) Write(b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := os.Stdout.Write(b)
	return err
}

func (s *ttySink) Flush() error {
	return nil
}

func (s *ttySink) Columns() int { return s.cols }
func (s *ttySink) Rows() int    { return s.rows }

func (s *ttySink) Close() {
	if s.restore != nil {
		_ = s.restore()
	}
}

// bannerDrawable writes a single line of text at the vertical center of its
// bounds, demonstrating the minimal Drawable contract.
type bannerDrawable struct {
	bounds Rect
	text   string
	style  paint.Style
}

type Rect = screencore.Rect

func (b *bannerDrawable) Bounds() Rect {
	return b.bounds
}

func (b *bannerDrawable) Draw(ctx *screencore.DrawContext) {
	y := b.bounds.Y + b.bounds.H/2
	ctx.Buffer.WriteText(b.bounds.X, y, b.text, b.style)
}

func main() {
	app := &cli.App{
		Name:  "screencore-demo",
		Usage: "render a static scene through the screencore compositor",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "frame-rate", Value: 30, Usage: "target frames per second"},
			&cli.BoolFlag{Name: "profile", Usage: "enable CPU profiling for the run"},
			&cli.StringFlag{Name: "message", Value: "Hello, screencore", Usage: "text to render"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("profile") {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	sink, err := newTTYSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	opts := screencore.DefaultOptions()
	opts.FrameRate = c.Int("frame-rate")
	opts.InitialWidth = sink.Columns()
	opts.InitialHeight = sink.Rows()

	encoder := ansiencoder.NewEncoder()
	compositor := screencore.NewCompositor(opts, sink, encoder)
	compositor.EnableProfiling(c.Bool("profile"))

	layer := compositor.CreateLayer(0)
	layer.Add(&bannerDrawable{
		bounds: Rect{X: 0, Y: 0, W: opts.InitialWidth, H: opts.InitialHeight},
		text:   c.String("message"),
		style:  paint.StyleDefault.Foreground(paint.ColorWhite).Bold(true),
	})

	scene := &screencore.Scene{
		Layers:     compositor.Layers(),
		Viewport:   Rect{X: 0, Y: 0, W: opts.InitialWidth, H: opts.InitialHeight},
		ClearColor: paint.ColorBlack,
		HasClear:   true,
	}

	if err := compositor.Render(scene); err != nil {
		log.ErrorF("render failed: %v", err)
		return err
	}

	m := compositor.Metrics()
	log.InfoF("rendered %dx%d frame, %d draw calls", m.BufferWidth, m.BufferHeight, m.DrawCalls)
	return nil
}
