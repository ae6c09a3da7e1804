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

import "sync"

// Metrics is a read-only snapshot of rendering and scheduling activity.
// When profiling is disabled, FPS, FrameCount, DroppedFrames and the buffer
// size are still maintained; AvgFrameTimeMs, DrawCalls and DirtyRegions stay
// at zero (turning profiling off also resets them).
type Metrics struct {
	FPS             float64
	FrameCount      int64
	AvgFrameTimeMs  float64
	DrawCalls       int64
	DirtyRegions    int64
	BufferWidth     int
	BufferHeight    int
	DroppedFrames   int64
}

// metricsCollector accumulates the raw counters Metrics is snapshotted
// from. It is safe for concurrent use, though the core's own single-owner
// contract means contention is only expected from callers inspecting
// metrics mid-frame.
type metricsCollector struct {
	mu sync.Mutex

	profiling bool

	frameCount    int64
	droppedFrames int64
	drawCalls     int64
	dirtyRegions  int64

	totalFrameTimeMs float64
	lastFPSWindow    int64
	fps              float64

	bufferWidth  int
	bufferHeight int
}

func newMetricsCollector() *metricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) setProfiling(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiling = on
	if !on {
		m.drawCalls = 0
		m.dirtyRegions = 0
		m.totalFrameTimeMs = 0
	}
}

func (m *metricsCollector) recordFrame(frameTimeMs float64, fps float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frameCount++
	m.fps = fps
	if m.profiling {
		m.totalFrameTimeMs += frameTimeMs
	}
}

func (m *metricsCollector) recordDroppedFrame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.droppedFrames++
}

func (m *metricsCollector) recordDrawCall() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profiling {
		m.drawCalls++
	}
}

func (m *metricsCollector) recordDirtyRegions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profiling {
		m.dirtyRegions += int64(n)
	}
}

func (m *metricsCollector) setBufferSize(w, h int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bufferWidth = w
	m.bufferHeight = h
}

func (m *metricsCollector) snapshot() Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	avg := 0.0
	if m.profiling && m.frameCount > 0 {
		avg = m.totalFrameTimeMs / float64(m.frameCount)
	}
	return Metrics{
		FPS:            m.fps,
		FrameCount:     m.frameCount,
		AvgFrameTimeMs: avg,
		DrawCalls:      m.drawCalls,
		DirtyRegions:   m.dirtyRegions,
		BufferWidth:    m.bufferWidth,
		BufferHeight:   m.bufferHeight,
		DroppedFrames:  m.droppedFrames,
	}
}
