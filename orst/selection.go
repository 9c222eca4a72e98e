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

// SelectionSort repeatedly finds the smallest element of the unsorted suffix
// and swaps it to the front of that suffix.
//
// It always performs n(n-1)/2 comparisons and is not stable.
type SelectionSort struct{}

// Sort implements Sorter.
func (SelectionSort) Sort(data sort.Interface) {
	selectionSort(data, 0, data.Len())
}

// selectionSort sorts data[lo:hi].
func selectionSort(data sort.Interface, lo, hi int) {
	for i := lo; i < hi; i++ {
		// First minimum wins on ties.
		smallest := i
		for j := i + 1; j < hi; j++ {
			if data.Less(j, smallest) {
				smallest = j
			}
		}
		if smallest != i {
			data.Swap(i, smallest)
		}
	}
}
