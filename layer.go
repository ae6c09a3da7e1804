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
)

// BlendMode is carried on Layer and DrawContext. At the cell level the only
// mode that changes the result is BlendNormal, under which a layer with
// opacity below 0.5 is skipped; every other mode overwrites destination
// cells. No RGB blending is performed, and Metrics does not record the mode.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendAdd
	BlendSubtract
	BlendReplace
)

func (b BlendMode) String() string {
	switch b {
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendAdd:
		return "add"
	case BlendSubtract:
		return "subtract"
	case BlendReplace:
		return "replace"
	default:
		return "normal"
	}
}

// element wraps a Drawable with the dirty bit the Layer tracks for it.
type element struct {
	id       uuid.UUID
	drawable Drawable
	dirty    bool
}

// Layer is an ordered collection of Drawables composited together under a
// shared opacity and blend mode, at a fixed position in z-order. Layers do
// not hold a pointer back to their owning Compositor. The Compositor keeps
// its layers as pointers (the id is not used as a lookup key), and
// Drawables are added and removed through the Layer's own methods.
type Layer struct {
	mu sync.Mutex

	id       uuid.UUID
	zIndex   int
	order    int // insertion order, used to break zIndex ties
	Visible  bool
	Opacity  float64
	Blend    BlendMode
	elements []*element

	dirtyRegions []Rect
	fullyDirty   bool
}

func newLayer(zIndex, order int) *Layer {
	id, _ := uuid.NewV4()
	return &Layer{
		id:      id,
		zIndex:  zIndex,
		order:   order,
		Visible: true,
		Opacity: 1.0,
		Blend:   BlendNormal,
	}
}

// ID returns the layer's unique identifier.
func (l *Layer) ID() uuid.UUID {
	return l.id
}

// ZIndex returns the layer's ordering key.
func (l *Layer) ZIndex() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zIndex
}

// Add appends a Drawable to the layer and marks its bounds dirty.
func (l *Layer) Add(d Drawable) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id, _ := uuid.NewV4()
	l.elements = append(l.elements, &element{id: id, drawable: d, dirty: true})
	l.dirtyRegions = append(l.dirtyRegions, d.Bounds())
}

// Remove removes a Drawable from the layer and marks its bounds dirty.
func (l *Layer) Remove(d Drawable) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.elements {
		if e.drawable == d {
			l.elements = append(l.elements[:i], l.elements[i+1:]...)
			l.dirtyRegions = append(l.dirtyRegions, d.Bounds())
			return
		}
	}
}

// Clear removes every Drawable and marks the entire layer dirty.
func (l *Layer) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.elements = nil
	l.fullyDirty = true
	l.dirtyRegions = nil
}

// Elements returns a snapshot of the layer's current Drawables.
func (l *Layer) Elements() []Drawable {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Drawable, len(l.elements))
	for i, e := range l.elements {
		out[i] = e.drawable
	}
	return out
}

// takeDirtyRegions returns and clears the layer's accumulated dirty
// rectangles, merging overlapping ones. If the layer was marked fully
// dirty, the given viewport rectangle alone is returned instead.
func (l *Layer) takeDirtyRegions(viewport Rect) []Rect {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fullyDirty {
		l.fullyDirty = false
		l.dirtyRegions = nil
		return []Rect{viewport}
	}
	regions := mergeRects(l.dirtyRegions)
	l.dirtyRegions = nil
	return regions
}
