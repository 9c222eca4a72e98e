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

import "sort"

// InsertionSort grows a sorted prefix one element at a time, moving each new
// element left by adjacent swaps until its left neighbor is not greater.
//
// It is stable and runs in O(n) on already sorted input.
type InsertionSort struct{}

// Sort implements Sorter.
func (InsertionSort) Sort(data sort.Interface) {
	insertionSort(data, 0, data.Len())
}

// insertionSort sorts data[lo:hi].
func insertionSort(data sort.Interface, lo, hi int) {
	// [sorted | unsorted]
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}
