// Copyright (c) 2023  The Go-Curses Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package screencore

import "github.com/go-curses/screencore/paint"

// WriterSink is the boundary the Writer Pipeline emits bytes to. Columns
// and Rows report the terminal's size; the pipeline itself never reads
// them, and callers use them to choose the initial grid size.
type WriterSink interface {
	Write(b []byte) error
	Flush() error
	Columns() int
	Rows() int
}

// StyleEncoder is the only thing the Writer Pipeline requires from the
// outside world to turn cursor moves and style changes into bytes; the
// exact escape sequences are entirely the encoder's concern.
type StyleEncoder interface {
	MoveTo(x, y int) []byte
	ApplyStyle(style paint.Style) []byte
	ResetAttributes() []byte
}

// writerPipeline tracks cursor position and current style across calls so
// it only emits moves and style changes when they actually change,
// mirroring the cursor/style-diffing a terminal driver performs per cell.
type writerPipeline struct {
	sink    WriterSink
	encoder StyleEncoder
	metrics *metricsCollector

	lastX, lastY int
	lastStyle    paint.Style
	haveStyle    bool

	buf []byte
}

func newWriterPipeline(sink WriterSink, encoder StyleEncoder, metrics *metricsCollector) *writerPipeline {
	return &writerPipeline{
		sink:    sink,
		encoder: encoder,
		metrics: metrics,
		lastX:   -1,
		lastY:   -1,
	}
}

// writeGrid diffs old against new (already computed as patches by the
// caller), optimizes, and emits. It does not itself swap grids; the
// Compositor does that only after a successful flush.
func (w *writerPipeline) writeGrid(old, next *CellGrid, patches []Patch) error {
	return w.emit(patches)
}

// writePatches emits an explicit patch list directly, skipping the
// Compositing state entirely (the renderPartial path).
func (w *writerPipeline) writePatches(patches []Patch) error {
	return w.emit(patches)
}

func (w *writerPipeline) emit(patches []Patch) error {
	opt := OptimizePatches(patches)

	w.buf = w.buf[:0]
	cursorX, cursorY := w.lastX, w.lastY
	style := w.lastStyle
	haveStyle := w.haveStyle

	for _, p := range opt {
		if p.X != cursorX || p.Y != cursorY {
			w.buf = append(w.buf, w.encoder.MoveTo(p.X, p.Y)...)
			cursorX, cursorY = p.X, p.Y
		}
		for _, c := range p.Cells {
			if c.Width == 0 {
				continue
			}
			if !haveStyle || !stylesEqual(c.Style, style) {
				w.buf = append(w.buf, w.encoder.ResetAttributes()...)
				if c.Style != paint.StyleDefault {
					w.buf = append(w.buf, w.encoder.ApplyStyle(c.Style)...)
				}
				style = c.Style
				haveStyle = true
			}
			w.buf = append(w.buf, []byte(string(c.Ch))...)
			cursorX += c.Width
		}
		if haveStyle && !stylesEqual(style, paint.StyleDefault) {
			w.buf = append(w.buf, w.encoder.ResetAttributes()...)
			style = paint.StyleDefault
		}
	}

	if len(w.buf) == 0 {
		return nil
	}

	if err := w.sink.Write(w.buf); err != nil {
		return &SinkWriteError{Err: err}
	}
	if err := w.sink.Flush(); err != nil {
		return &SinkWriteError{Err: err}
	}

	w.lastX, w.lastY = cursorX, cursorY
	w.lastStyle = style
	w.haveStyle = haveStyle
	return nil
}

func stylesEqual(a, b paint.Style) bool {
	return a == b
}
