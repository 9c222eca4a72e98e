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
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Counter wraps a sort.Interface and counts the comparisons and swaps made
// through it. It is safe for use with ParallelQuickSort.
type Counter struct {
	sort.Interface

	comparisons atomic.Int64
	_           cpu.CacheLinePad
	swaps       atomic.Int64
	_           cpu.CacheLinePad
}

// Instrument returns a Counter wrapping data.
func Instrument(data sort.Interface) *Counter {
	return &Counter{Interface: data}
}

// Less counts the comparison and forwards it.
func (c *Counter) Less(i, j int) bool {
	c.comparisons.Add(1)
	return c.Interface.Less(i, j)
}

// Swap counts the swap and forwards it.
func (c *Counter) Swap(i, j int) {
	c.swaps.Add(1)
	c.Interface.Swap(i, j)
}

// Comparisons returns the number of Less calls so far.
func (c *Counter) Comparisons() int64 {
	return c.comparisons.Load()
}

// Swaps returns the number of Swap calls so far.
func (c *Counter) Swaps() int64 {
	return c.swaps.Load()
}

// Reset zeroes both counts.
func (c *Counter) Reset() {
	c.comparisons.Store(0)
	c.swaps.Store(0)
}
