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

// Scene bundles the ordered layer set, the viewport rectangle, and an
// optional clear color for a single render pass.
type Scene struct {
	Layers     []*Layer
	Viewport   Rect
	ClearColor paint.Color
	HasClear   bool
}

// sortedLayers returns the scene's layers ordered by (zIndex, insertion
// order) ascending.
func (s *Scene) sortedLayers() []*Layer {
	out := make([]*Layer, len(s.Layers))
	copy(out, s.Layers)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && layerLess(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func layerLess(a, b *Layer) bool {
	if a.zIndex != b.zIndex {
		return a.zIndex < b.zIndex
	}
	return a.order < b.order
}
