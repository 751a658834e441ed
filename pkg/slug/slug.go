// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug normalizes free-form user input into post tags.
//
// # Usage
//
// Tags are typed by the author ("Go Lang!", "Web-Dev") and stored by the
// backend in a canonical form ("golang", "web-dev"). This package applies the
// same normalization the editor always has, so that what the author sees is
// exactly what the backend stores.
package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// disallowed matches anything outside the tag alphabet.
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)
	// lower is the locale-independent lowercase mapper.
	lower = cases.Lower(language.Und)
)

// Tag converts raw input into a tag.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Lowercases (locale independent).
// 3. Drops every character outside [a-z0-9-], including inner spaces and
// accented letters.
//
// The result may be empty; callers reject empty tags.
func Tag(raw string) string {
	tag := lower.String(strings.TrimSpace(raw))
	return disallowed.ReplaceAllString(tag, "")
}
