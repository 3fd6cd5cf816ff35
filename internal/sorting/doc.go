// Package sorting provides step producers for the classic comparison and
// distribution sorts.
//
// Every producer copies its input, yields a start step showing the original
// order, one step per unit of work (a comparison, a swap, a shift, a bucket
// insertion or a write-back) and a final done step whose array is the sorted
// permutation of the input. Empty and single-element inputs yield only the
// done step.
//
// Counters on each step are cumulative for the run.
package sorting
