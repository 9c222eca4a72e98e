// Package orst provides a small collection of in-place comparison sorts
// behind a single Sorter abstraction.
//
// # Strategies
//
// Three interchangeable strategies implement Sorter:
//   - InsertionSort: stable, O(n) on sorted input, O(n²) otherwise
//   - SelectionSort: always n(n-1)/2 comparisons, not stable
//   - QuickSort: first-element pivot, O(n log n) average, O(n²) worst case
//
// ParallelQuickSort is an opt-in variant of QuickSort that sorts disjoint
// partitions on a workerpool.Pool.
//
// All strategies operate on a sort.Interface and only ever compare and swap
// elements by index, so any sequence type can be sorted without copying.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-orst/orst"
//
//	func SortScores(scores []int) {
//	    orst.SortWith(scores, orst.QuickSort{})
//	}
//
//	func SortByName(users []User) {
//	    orst.SortFuncWith(users, func(a, b User) int {
//	        return strings.Compare(a.Name, b.Name)
//	    }, orst.InsertionSort{})
//	}
//
// Strategies can also be chosen by name through Algorithm:
//
//	alg, err := orst.ParseAlgorithm("selection")
//	if err != nil {
//	    return err
//	}
//	orst.SortWith(data, alg.Sorter())
//
// # Requirements
//
// The comparison must be a strict weak ordering. Inconsistent comparators do
// not crash the algorithms but leave the result order unspecified.
package orst
