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
	"strconv"

	"github.com/iancoleman/strcase"

	"github.com/go-curses/screencore/env"
	"github.com/go-curses/screencore/paint"
	cstrings "github.com/go-curses/screencore/internal/strings"
)

// Options is the explicit configuration record for a Compositor and its
// FrameScheduler, replacing any dynamic configuration bag with a fixed set
// of recognized fields.
type Options struct {
	FrameRate     int
	Profiling     bool
	InitialWidth  int
	InitialHeight int
	ClearColor    paint.Color
	DefaultBlend  BlendMode
}

// DefaultOptions returns the baseline configuration: 60fps, profiling off,
// an 80x24 initial grid, default clear color, normal blending.
func DefaultOptions() Options {
	return Options{
		FrameRate:     60,
		Profiling:     false,
		InitialWidth:  80,
		InitialHeight: 24,
		ClearColor:    paint.ColorDefault,
		DefaultBlend:  BlendNormal,
	}
}

// envPrefix is prepended to every field-derived environment variable name.
const envPrefix = "SCREENCORE_"

// OptionsFromEnv returns DefaultOptions with any recognized
// SCREENCORE_<FIELD_NAME> environment variable overriding its field. Field
// names are converted to SCREAMING_SNAKE_CASE via strcase, e.g. FrameRate
// becomes SCREENCORE_FRAME_RATE.
func OptionsFromEnv() Options {
	opts := DefaultOptions()

	if v := env.Get(envKey("FrameRate"), ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.FrameRate = n
		}
	}
	if v := env.Get(envKey("Profiling"), ""); v != "" {
		if cstrings.IsTrue(v) {
			opts.Profiling = true
		} else if cstrings.IsFalse(v) {
			opts.Profiling = false
		}
	}
	if v := env.Get(envKey("InitialWidth"), ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.InitialWidth = n
		}
	}
	if v := env.Get(envKey("InitialHeight"), ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.InitialHeight = n
		}
	}
	if v := env.Get(envKey("ClearColor"), ""); v != "" {
		if c, ok := paint.ParseColor(v); ok {
			opts.ClearColor = c
		}
	}

	return opts
}

// envKey derives the SCREENCORE_<FIELD_NAME> environment variable name for
// an Options struct field name.
func envKey(field string) string {
	return envPrefix + strcase.ToScreamingSnake(field)
}
