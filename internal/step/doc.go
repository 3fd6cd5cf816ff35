// Package step provides the core primitives shared by every visualizer.
//
// The package defines the types that connect algorithms to views:
//
//   - [Step]: immutable snapshot describing what a view should highlight
//   - [Producer]: lazy sequence of steps for one algorithm run
//   - [Iterator]: pull-based state machine over a producer
//
// # Example
//
//	it := step.Pull(sorting.Bubble([]int{5, 3, 8, 4, 2}))
//	defer it.Stop()
//	for s, ok := it.Next(); ok; s, ok = it.Next() {
//		fmt.Println(s.Phase, s.Array)
//	}
//
// # Thread Safety
//
// Iterators are NOT thread-safe. A producer is consumed by exactly one
// iterator; start a new producer for every run.
package step
