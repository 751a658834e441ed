// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"errors"
	"slices"

	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/pkg/slice"
	"github.com/taibuivan/phoenix/pkg/slug"
)

var (
	// ErrTagEmpty is returned when input normalizes to nothing.
	ErrTagEmpty = errors.New("tag is empty after normalization")

	// ErrTagDuplicate is returned when the tag is already present.
	ErrTagDuplicate = errors.New("tag already added")

	// ErrTagLimit is returned when the post already carries the maximum.
	ErrTagLimit = errors.New("a post can have at most 5 tags")
)

// TagSet is the ordered, de-duplicated tag list of a post being edited.
//
// The zero value is an empty set. TagSet is not safe for concurrent use.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set from existing tags (e.g. a fetched post). Entries
// are normalized; invalid or surplus entries are dropped.
func NewTagSet(tags []string) TagSet {
	var set TagSet
	for _, tag := range tags {
		_, _ = set.Add(tag)
	}
	return set
}

// Add normalizes raw and appends it. It returns the normalized tag.
func (s *TagSet) Add(raw string) (string, error) {
	tag := slug.Tag(raw)

	switch {
	case tag == "":
		return "", ErrTagEmpty
	case slices.Contains(s.tags, tag):
		return tag, ErrTagDuplicate
	case len(s.tags) >= constants.MaxTags:
		return tag, ErrTagLimit
	}

	s.tags = append(s.tags, tag)
	return tag, nil
}

// Remove deletes tag if present.
func (s *TagSet) Remove(tag string) {
	s.tags = slice.Filter(s.tags, func(t string) bool { return t != tag })
}

// Pop removes the most recently added tag, mirroring backspace on an empty
// tag input. It reports false when the set is empty.
func (s *TagSet) Pop() (string, bool) {
	if len(s.tags) == 0 {
		return "", false
	}
	last := s.tags[len(s.tags)-1]
	s.tags = s.tags[:len(s.tags)-1]
	return last, true
}

// Len returns the number of tags.
func (s TagSet) Len() int { return len(s.tags) }

// Values returns a copy of the tags; never nil.
func (s TagSet) Values() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}
