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
	"errors"
	"fmt"
)

// ErrBatchInProgress is returned by Compositor.StartBatch when a batch is
// already open.
var ErrBatchInProgress = errors.New("screencore: batch already in progress")

// ErrInvalidBatchContext is returned by Compositor.CommitBatch when the
// supplied BatchContext did not originate from that Compositor's StartBatch.
var ErrInvalidBatchContext = errors.New("screencore: invalid batch context")

// SinkWriteError wraps a failure reported by a WriterSink's Write or Flush.
type SinkWriteError struct {
	Err error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("screencore: sink write failed: %v", e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

// BufferDimensionMismatchError reports that a patch referenced coordinates
// outside the target grid. The offending patch is dropped and this error is
// logged, not propagated; callers that want to observe it may inspect the
// value returned alongside a partial apply.
type BufferDimensionMismatchError struct {
	Patch Patch
	Width int
	Height int
}

func (e *BufferDimensionMismatchError) Error() string {
	return fmt.Sprintf(
		"screencore: patch at (%d,%d) with %d cells exceeds grid %dx%d",
		e.Patch.X, e.Patch.Y, len(e.Patch.Cells), e.Width, e.Height,
	)
}

// IntegerOverflowError reports that requested grid dimensions exceed
// implementation limits. Surfaced as a creation-time failure; never
// ignored.
type IntegerOverflowError struct {
	Width, Height int
}

func (e *IntegerOverflowError) Error() string {
	return fmt.Sprintf("screencore: grid dimensions %dx%d overflow", e.Width, e.Height)
}

// maxGridDimension bounds CellGrid width/height to keep width*height free of
// int overflow on 32-bit platforms.
const maxGridDimension = 1 << 15
