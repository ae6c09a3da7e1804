// Copyright 2021  The CDK Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package strings provides small text helpers shared by the log and
// options packages.
package strings

import (
	"fmt"
	"regexp"
	"strings"
)

// IsBoolean returns true if text parses as a recognized boolean token.
func IsBoolean(text string) bool {
	switch strings.ToLower(text) {
	case "1", "on", "yes", "y", "true":
		fallthrough
	case "0", "nil", "off", "no", "n", "false":
		return true
	}
	return false
}

// IsTrue returns true if text parses as a recognized truthy token.
func IsTrue(text string) bool {
	switch strings.ToLower(text) {
	case "1", "on", "yes", "y", "true":
		return true
	}
	return false
}

// IsFalse returns true if text parses as a recognized falsy token.
func IsFalse(text string) bool {
	switch strings.ToLower(text) {
	case "0", "nil", "off", "no", "n", "false":
		return true
	}
	return false
}

var rxIsEmpty = regexp.MustCompile(`^\s*$`)

// IsEmpty returns true if text is empty or consists only of whitespace.
func IsEmpty(text string) bool {
	return len(text) == 0 || rxIsEmpty.MatchString(text)
}

// CleanCRLF trims trailing carriage-return/newline characters from s.
func CleanCRLF(s string) string {
	length := len(s)
	var last int
	for last = length - 1; last >= 0; last-- {
		if s[last] != '\r' && s[last] != '\n' {
			break
		}
	}
	return s[:last+1]
}

// NLSprintf formats like fmt.Sprintf and strips a trailing newline, so log
// format strings can be composed without worrying about double newlines.
func NLSprintf(format string, argv ...interface{}) string {
	return CleanCRLF(fmt.Sprintf(format, argv...))
}
