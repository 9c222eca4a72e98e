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
	"sort"

	"github.com/ajroetker/go-orst/orst/contrib/workerpool"
)

const (
	// defaultParallelCutoff: ranges this size or smaller are not split further.
	defaultParallelCutoff = 2048

	// rangesPerWorker: how many disjoint ranges to hand each worker, so that
	// unbalanced partitions still keep every worker busy.
	rangesPerWorker = 4
)

// ParallelQuickSort partitions the top levels of the quicksort recursion on
// the calling goroutine, then sorts the resulting disjoint ranges on Pool.
//
// The partition step and pivot choice are those of QuickSort, so the result
// is identical. data must allow Less and Swap on disjoint indices to run
// concurrently, which holds for Slice, SliceFunc and Counter.
//
// A nil Pool, or a pool with a single worker, sorts sequentially.
type ParallelQuickSort struct {
	Pool *workerpool.Pool

	// Cutoff is the largest range that is sorted without further splitting.
	// Zero uses a default of 2048.
	Cutoff int
}

type span struct {
	lo, hi int
}

// Sort implements Sorter.
func (s ParallelQuickSort) Sort(data sort.Interface) {
	n := data.Len()
	cutoff := s.Cutoff
	if cutoff <= 0 {
		cutoff = defaultParallelCutoff
	}

	if s.Pool == nil || s.Pool.NumWorkers() < 2 || n <= cutoff {
		quickSort(data, 0, n)
		return
	}

	spans := splitSpans(data, n, cutoff, s.Pool.NumWorkers()*rangesPerWorker)
	s.Pool.ForEach(len(spans), func(i int) {
		quickSort(data, spans[i].lo, spans[i].hi)
	})
}

// splitSpans partitions data[0:n] breadth-first until there are at least
// target unsorted spans or every span is at most cutoff long. The returned
// spans are disjoint and, once each is sorted, data is sorted.
func splitSpans(data sort.Interface, n, cutoff, target int) []span {
	pending := []span{{0, n}}
	var ready []span

	for len(pending) > 0 && len(ready)+len(pending) < target {
		r := pending[0]
		pending = pending[1:]

		if r.hi-r.lo <= cutoff {
			ready = append(ready, r)
			continue
		}

		p := partition(data, r.lo, r.hi)
		for _, side := range [2]span{{r.lo, p}, {p + 1, r.hi}} {
			if side.hi-side.lo > 1 {
				pending = append(pending, side)
			}
		}
	}

	return append(ready, pending...)
}
