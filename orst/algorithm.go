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

package orst

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithm names one of the sorting strategies.
type Algorithm int

const (
	// Quick selects QuickSort.
	Quick Algorithm = iota

	// Insertion selects InsertionSort.
	Insertion

	// Selection selects SelectionSort.
	Selection

	// ParallelQuick selects ParallelQuickSort.
	ParallelQuick
)

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Quick:
		return "quick"
	case Insertion:
		return "insertion"
	case Selection:
		return "selection"
	case ParallelQuick:
		return "parallel-quick"
	default:
		return "unknown"
	}
}

// Sorter returns the strategy for a. ParallelQuick has no pool attached and
// therefore sorts sequentially; set ParallelQuickSort.Pool to run it
// concurrently. Unknown values return DefaultSorter.
func (a Algorithm) Sorter() Sorter {
	switch a {
	case Insertion:
		return InsertionSort{}
	case Selection:
		return SelectionSort{}
	case Quick:
		return QuickSort{}
	case ParallelQuick:
		return ParallelQuickSort{}
	default:
		return DefaultSorter
	}
}

// Algorithms returns the sequential strategies in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Quick, Insertion, Selection}
}

// ParseAlgorithm returns the Algorithm with the given name. Matching ignores
// case, surrounding space and an optional "sort" suffix, so "Quick",
// "quicksort" and "quick-sort" all select Quick.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimSuffix(key, "-")
	key = strings.TrimSuffix(key, "_")

	switch key {
	case "quick":
		return Quick, nil
	case "insertion":
		return Insertion, nil
	case "selection":
		return Selection, nil
	case "parallel-quick", "parallel_quick", "parallelquick":
		return ParallelQuick, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
