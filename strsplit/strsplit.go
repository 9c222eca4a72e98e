// Copyright 2025 go-orst Authors
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

// Package strsplit splits a string into the pieces between occurrences of a
// delimiter, lazily and without copying.
//
// Every piece is a substring of the original haystack. A trailing delimiter
// produces a final empty piece and an empty haystack produces a single empty
// piece, matching strings.Split.
//
//	for word := range strsplit.New("a b c", strsplit.String(" ")).All() {
//	    fmt.Println(word)
//	}
package strsplit

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// ErrInvalidRune is returned by NewRune for a rune that cannot be encoded as
// UTF-8.
var ErrInvalidRune = errors.New("invalid delimiter rune")

// Delimiter locates the next delimiter in a string.
type Delimiter interface {
	// FindNext returns the byte offsets [start, end) of the first delimiter
	// in s, or ok=false if s contains none.
	FindNext(s string) (start, end int, ok bool)
}

// String is a substring delimiter. The empty String never matches.
type String string

// FindNext implements Delimiter.
func (d String) FindNext(s string) (int, int, bool) {
	if d == "" {
		return 0, 0, false
	}
	start := strings.Index(s, string(d))
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(d), true
}

// Rune is a single scalar-value delimiter.
type Rune rune

// NewRune returns r as a Delimiter, rejecting surrogates and values outside
// the Unicode range.
func NewRune(r rune) (Rune, error) {
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("%w: %U", ErrInvalidRune, r)
	}
	return Rune(r), nil
}

// FindNext implements Delimiter.
func (d Rune) FindNext(s string) (int, int, bool) {
	if !utf8.ValidRune(rune(d)) {
		return 0, 0, false
	}
	// strings.IndexRune would also match invalid bytes for utf8.RuneError.
	enc := string(rune(d))
	start := strings.Index(s, enc)
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(enc), true
}

// Split is a lazy iterator over the pieces of a haystack.
type Split struct {
	remainder string
	done      bool
	delimiter Delimiter
}

// New returns an iterator over the pieces of haystack separated by d.
func New(haystack string, d Delimiter) *Split {
	return &Split{
		remainder: haystack,
		delimiter: d,
	}
}

// Next returns the next piece. Once the final piece has been returned, Next
// returns ok=false on every call.
func (s *Split) Next() (piece string, ok bool) {
	if s.done {
		return "", false
	}

	if start, end, found := s.delimiter.FindNext(s.remainder); found {
		piece = s.remainder[:start]
		s.remainder = s.remainder[end:]
		return piece, true
	}

	piece = s.remainder
	s.remainder = ""
	s.done = true
	return piece, true
}

// All returns an iterator over the remaining pieces.
func (s *Split) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			piece, ok := s.Next()
			if !ok || !yield(piece) {
				return
			}
		}
	}
}

// Collect returns the remaining pieces as a slice.
func (s *Split) Collect() []string {
	var pieces []string
	for piece := range s.All() {
		pieces = append(pieces, piece)
	}
	return pieces
}

// UntilRune returns the part of s before the first r, or all of s when r
// does not occur.
func UntilRune(s string, r rune) string {
	piece, _ := New(s, Rune(r)).Next()
	return piece
}
