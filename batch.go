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

import "github.com/gofrs/uuid"

type batchOpKind int

const (
	batchOpDraw batchOpKind = iota
	batchOpClear
	batchOpUpdateRegion
)

type batchOp struct {
	kind  batchOpKind
	layer *Layer
	// draw
	drawable Drawable
	// clear: no extra fields, clears layer
	// updateRegion
	region Rect
}

// BatchContext is the token returned by Compositor.StartBatch and required
// by CommitBatch. It is opaque to callers; passing a foreign or stale token
// to CommitBatch fails with ErrInvalidBatchContext.
type BatchContext struct {
	id uuid.UUID
	c  *Compositor
	ops []batchOp
}

// Draw records a draw operation: adding d to layer, applied when the batch
// commits.
func (b *BatchContext) Draw(layer *Layer, d Drawable) {
	b.ops = append(b.ops, batchOp{kind: batchOpDraw, layer: layer, drawable: d})
}

// Clear records a clear operation against layer, applied when the batch
// commits.
func (b *BatchContext) Clear(layer *Layer) {
	b.ops = append(b.ops, batchOp{kind: batchOpClear, layer: layer})
}

// UpdateRegion records marking a rectangular region of layer dirty,
// applied when the batch commits.
func (b *BatchContext) UpdateRegion(layer *Layer, region Rect) {
	b.ops = append(b.ops, batchOp{kind: batchOpUpdateRegion, layer: layer, region: region})
}
