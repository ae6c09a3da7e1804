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

import "time"

// Clock abstracts monotonic time so FrameScheduler can be driven by a fake
// clock in tests instead of real wall time.
type Clock interface {
	// Now returns a monotonic timestamp in milliseconds.
	Now() int64
}

// SystemClock is the default Clock. It reports the milliseconds elapsed
// since package initialization, measured with time's monotonic clock.
type SystemClock struct{}

// systemClockStart anchors SystemClock readings; time.Since uses the
// monotonic reading carried by this value, so wall-clock jumps are ignored.
var systemClockStart = time.Now()

func (SystemClock) Now() int64 {
	return time.Since(systemClockStart).Milliseconds()
}
