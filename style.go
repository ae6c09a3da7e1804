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

// Style, Color, and AttrMask are re-exported from paint so callers that
// only need the grid/compositor API do not also need to import paint
// directly for everyday style construction.
type (
	Style    = paint.Style
	Color    = paint.Color
	AttrMask = paint.AttrMask
)

var (
	StyleDefault = paint.StyleDefault
	ColorDefault = paint.ColorDefault
)
