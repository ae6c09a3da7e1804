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
	"time"

	"github.com/gofrs/uuid"

	"github.com/go-curses/screencore/internal/math"
	"github.com/go-curses/screencore/log"
)

// FrameCallback is invoked once per rendered frame with the current
// timestamp in milliseconds.
type FrameCallback func(nowMs int64)

type frameRegistration struct {
	id uuid.UUID
	cb FrameCallback
}

// FrameScheduler drives a single-threaded, cooperative tick loop: one
// goroutine sleeps until the next frame boundary, invokes every registered
// callback, and stops entirely once the last callback is canceled. It
// never runs more than one tick concurrently, matching the "one owner at a
// time" contract grid mutation relies on.
type FrameScheduler struct {
	mu sync.Mutex

	clock     Clock
	frameRate int

	callbacks []frameRegistration

	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}

	lastFrameTime int64
	metrics       *metricsCollector
}

// NewFrameScheduler creates a scheduler targeting frameRate frames per
// second, clamped to [1, 240], driven by clock.
func NewFrameScheduler(frameRate int, clock Clock) *FrameScheduler {
	frameRate = math.ClampI(frameRate, 1, 240)
	return &FrameScheduler{
		clock:     clock,
		frameRate: frameRate,
		metrics:   newMetricsCollector(),
	}
}

// SetFrameRate updates the target frame rate, clamped to [1, 240]. Takes
// effect on the next tick.
func (s *FrameScheduler) SetFrameRate(frameRate int) {
	frameRate = math.ClampI(frameRate, 1, 240)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frameRate = frameRate
}

func (s *FrameScheduler) targetPeriodMs() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(1000 / s.frameRate)
}

// RequestFrame registers cb and, if the loop is idle, starts it. Returns a
// unique id usable with CancelFrame.
func (s *FrameScheduler) RequestFrame(cb FrameCallback) uuid.UUID {
	id, _ := uuid.NewV4()

	s.mu.Lock()
	s.callbacks = append(s.callbacks, frameRegistration{id: id, cb: cb})
	needStart := !s.running
	s.mu.Unlock()

	if needStart {
		s.Start()
	}
	return id
}

// CancelFrame removes the callback registered under id. The loop keeps
// running if other callbacks remain.
func (s *FrameScheduler) CancelFrame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.callbacks {
		if reg.id == id {
			s.callbacks = append(s.callbacks[:i], s.callbacks[i+1:]...)
			return
		}
	}
}

// Start begins the tick loop if it is not already running.
func (s *FrameScheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.lastFrameTime = s.clock.Now()
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stopCh := s.stopCh
	doneCh := s.doneCh
	s.mu.Unlock()

	go s.loop(stopCh, doneCh)
}

// Stop halts the loop and removes all registered callbacks.
func (s *FrameScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	doneCh := s.doneCh
	s.mu.Unlock()

	<-doneCh

	s.mu.Lock()
	s.callbacks = nil
	s.mu.Unlock()
}

// Metrics returns a read-only snapshot of the scheduler's frame counters.
func (s *FrameScheduler) Metrics() Metrics {
	return s.metrics.snapshot()
}

// EnableProfiling turns detailed metric accumulation on or off.
func (s *FrameScheduler) EnableProfiling(on bool) {
	s.metrics.setProfiling(on)
}

func (s *FrameScheduler) loop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	for {
		period := s.targetPeriodMs()
		select {
		case <-stopCh:
			return
		case <-time.After(time.Duration(period) * time.Millisecond):
		}

		now := s.clock.Now()

		s.mu.Lock()
		delta := now - s.lastFrameTime
		target := int64(1000 / s.frameRate)
		s.mu.Unlock()

		if delta < target {
			continue
		}

		s.mu.Lock()
		cbs := make([]frameRegistration, len(s.callbacks))
		copy(cbs, s.callbacks)
		s.mu.Unlock()

		if len(cbs) == 0 {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
			return
		}

		for _, reg := range cbs {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.ErrorF("frame callback panicked: %v", r)
					}
				}()
				reg.cb(now)
			}()
		}

		if delta > 2*target {
			s.metrics.recordDroppedFrame()
		}

		fps := 1000.0 / float64(target)
		if delta > 0 {
			fps = 1000.0 / float64(delta)
		}
		s.metrics.recordFrame(float64(delta), fps)

		s.mu.Lock()
		s.lastFrameTime = now - (delta % target)
		s.mu.Unlock()
	}
}
