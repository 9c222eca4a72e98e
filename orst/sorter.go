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
	"cmp"
	"sort"
)

// Sorter sorts a sequence in place.
//
// Implementations only call Len, Less and Swap on data. Sequences of length
// 0 or 1 are returned untouched.
type Sorter interface {
	Sort(data sort.Interface)
}

// DefaultSorter is used by Sort when no strategy is given.
var DefaultSorter Sorter = QuickSort{}

// Slice adapts a slice of ordered values to sort.Interface.
//
// Floating point NaNs order before every other value, as in cmp.Compare.
type Slice[T cmp.Ordered] []T

func (s Slice[T]) Len() int           { return len(s) }
func (s Slice[T]) Less(i, j int) bool { return cmp.Less(s[i], s[j]) }
func (s Slice[T]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// SliceFunc adapts a slice and a three-way comparison to sort.Interface.
// Cmp returns a negative number when a < b, zero when a == b and a positive
// number when a > b.
type SliceFunc[T any] struct {
	Data []T
	Cmp  func(a, b T) int
}

func (s SliceFunc[T]) Len() int           { return len(s.Data) }
func (s SliceFunc[T]) Less(i, j int) bool { return s.Cmp(s.Data[i], s.Data[j]) < 0 }
func (s SliceFunc[T]) Swap(i, j int)      { s.Data[i], s.Data[j] = s.Data[j], s.Data[i] }

// Sort sorts data in place with s, or with DefaultSorter when s is nil.
func Sort(data sort.Interface, s Sorter) {
	if s == nil {
		s = DefaultSorter
	}
	s.Sort(data)
}

// SortWith sorts data in place in ascending order using s.
func SortWith[T cmp.Ordered](data []T, s Sorter) {
	if len(data) <= 1 {
		return
	}
	Sort(Slice[T](data), s)
}

// SortFuncWith sorts data in place in ascending order as determined by cmp,
// using s.
func SortFuncWith[T any](data []T, cmp func(a, b T) int, s Sorter) {
	if len(data) <= 1 {
		return
	}
	Sort(SliceFunc[T]{Data: data, Cmp: cmp}, s)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is in non-decreasing order as determined
// by cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
