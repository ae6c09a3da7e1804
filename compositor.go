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

import (
	"sync"

	"github.com/gofrs/uuid"

	"github.com/go-curses/screencore/log"
	"github.com/go-curses/screencore/paint"
)

// Compositor owns the displayed grid, the layer set, and the Writer
// Pipeline that turns renders into sink output. It is the sole owner of
// both the displayed and scratch grids; callers interact with it only
// through createLayer/removeLayer/render/renderPartial/batches.
type Compositor struct {
	mu sync.Mutex

	displayed *CellGrid
	layers    []*Layer
	nextOrder int

	openBatch *BatchContext

	writer  *writerPipeline
	metrics *metricsCollector
}

// NewCompositor creates a Compositor with a displayed grid sized per opts
// and writing through sink using encoder to produce bytes.
func NewCompositor(opts Options, sink WriterSink, encoder StyleEncoder) *Compositor {
	c := &Compositor{
		displayed: NewCellGrid(opts.InitialWidth, opts.InitialHeight),
		metrics:   newMetricsCollector(),
	}
	c.writer = newWriterPipeline(sink, encoder, c.metrics)
	c.metrics.setBufferSize(opts.InitialWidth, opts.InitialHeight)
	return c
}

// EnableProfiling turns the accumulation of detailed metrics on or off.
func (c *Compositor) EnableProfiling(on bool) {
	c.metrics.setProfiling(on)
}

// Metrics returns a read-only snapshot of current rendering counters.
func (c *Compositor) Metrics() Metrics {
	return c.metrics.snapshot()
}

// CreateLayer allocates a new Layer at zIndex and inserts it into the
// compositor's layer list, kept sorted by (zIndex, insertion order).
func (c *Compositor) CreateLayer(zIndex int) *Layer {
	c.mu.Lock()
	defer c.mu.Unlock()
	l := newLayer(zIndex, c.nextOrder)
	c.nextOrder++

	i := 0
	for i < len(c.layers) && layerLess(c.layers[i], l) {
		i++
	}
	c.layers = append(c.layers, nil)
	copy(c.layers[i+1:], c.layers[i:])
	c.layers[i] = l
	return l
}

// RemoveLayer removes layer from the compositor's set. Its prior bounds
// are not automatically known once removed, so callers that need exact
// minimal invalidation should mark the viewport (or the layer's last known
// bounds) dirty before the next render; passing a full-viewport Scene is
// always sufficient.
func (c *Compositor) RemoveLayer(layer *Layer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.layers {
		if l == layer {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

// Layers returns a snapshot of the compositor's layers in z-order.
func (c *Compositor) Layers() []*Layer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Render executes one full composite pass against scene: builds a scratch
// grid, draws every visible layer's elements that intersect the viewport,
// diffs against the displayed grid, and pushes the result through the
// Writer Pipeline. On a successful flush the scratch grid becomes the new
// displayed grid; on failure the displayed grid, and thus the next diff,
// is unaffected.
func (c *Compositor) Render(scene *Scene) error {
	c.mu.Lock()
	displayed := c.displayed
	layers := scene.sortedLayers()
	c.mu.Unlock()

	vw, vh := scene.Viewport.W, scene.Viewport.H
	scratch := NewCellGrid(vw, vh)
	if scene.HasClear {
		scratch.Clear(paint.StyleDefault.Background(scene.ClearColor))
	}

	for _, l := range layers {
		l.mu.Lock()
		visible := l.Visible
		opacity := l.Opacity
		blend := l.Blend
		els := make([]Drawable, len(l.elements))
		for i, e := range l.elements {
			els[i] = e.drawable
		}
		l.mu.Unlock()

		if !visible || opacity <= 0 {
			continue
		}
		// opacity < 0.5 under normal blend preserves the destination cell;
		// skip the draw entirely rather than composite a half-transparent
		// element the writer cannot express at the cell level.
		if blend == BlendNormal && opacity < 0.5 {
			continue
		}

		for _, d := range els {
			bounds := d.Bounds()
			if !bounds.Intersects(scene.Viewport) {
				continue
			}
			clip := bounds.Intersect(scene.Viewport)
			ctx := &DrawContext{
				Buffer:    scratch,
				Viewport:  scene.Viewport,
				Opacity:   opacity,
				BlendMode: blend,
				Clip:      clip,
			}
			d.Draw(ctx)
			c.metrics.recordDrawCall()
		}
	}

	patches := Diff(displayed, scratch)
	c.metrics.recordDirtyRegions(len(patches))

	if err := c.writer.writeGrid(displayed, scratch, patches); err != nil {
		return err
	}

	c.mu.Lock()
	c.displayed = scratch
	c.metrics.setBufferSize(vw, vh)
	c.mu.Unlock()
	return nil
}

// RenderPartial bypasses layer composition entirely and pushes patches
// directly through the Writer Pipeline against the displayed grid. Per the
// recommended resolution to the renderPartial open question, a successful
// flush also applies the patches to the displayed grid so subsequent
// full-grid diffs see the patched state.
func (c *Compositor) RenderPartial(patches []Patch) error {
	c.mu.Lock()
	displayed := c.displayed
	c.mu.Unlock()

	if err := c.writer.writePatches(patches); err != nil {
		return err
	}

	c.mu.Lock()
	if err := ApplyPatches(displayed, patches); err != nil {
		log.WarnF("renderPartial: %v", err)
	}
	displayed.ClearDirty()
	c.mu.Unlock()
	return nil
}

// StartBatch opens a new BatchContext for recording draw/clear/updateRegion
// operations. Only one batch may be open at a time; a nested StartBatch
// fails with ErrBatchInProgress.
func (c *Compositor) StartBatch() (*BatchContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.openBatch != nil {
		return nil, ErrBatchInProgress
	}
	id, _ := uuid.NewV4()
	b := &BatchContext{id: id, c: c}
	c.openBatch = b
	return b, nil
}

// CommitBatch applies every operation recorded in ctx to its respective
// layers atomically with respect to other Compositor callers, then closes
// the batch. A ctx that did not originate from this Compositor's
// StartBatch fails with ErrInvalidBatchContext.
func (c *Compositor) CommitBatch(ctx *BatchContext) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx == nil || c.openBatch == nil || ctx.id != c.openBatch.id || ctx.c != c {
		return ErrInvalidBatchContext
	}
	for _, op := range ctx.ops {
		switch op.kind {
		case batchOpDraw:
			op.layer.Add(op.drawable)
		case batchOpClear:
			op.layer.Clear()
		case batchOpUpdateRegion:
			op.layer.mu.Lock()
			op.layer.dirtyRegions = append(op.layer.dirtyRegions, op.region)
			op.layer.mu.Unlock()
		}
	}
	c.openBatch = nil
	return nil
}
