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

// Drawable is anything a Layer can hold. Draw must only touch cells within
// bounds ∩ ctx.Clip; the Compositor relies on that contract to skip
// off-viewport elements without calling Draw at all.
type Drawable interface {
	Bounds() Rect
	Draw(ctx *DrawContext)
}
