// Package viz draws algorithm steps in the terminal.
//
// The view functions are pure: each takes a step and returns text, colored
// through one fixed palette. Two Bubble Tea models build on them:
//
//   - [PlayModel]: plays an algorithm step by step
//   - [StructureModel]: drives a container with typed commands
//
// # Key Bindings
//
//	Space - Start/pause playback
//	N     - Single step (paused only)
//	R     - Reset (paused only)
//	+/-   - Faster/slower
//	?     - Show full help
//
// Guard errors such as "stack overflow" appear under the input and clear
// after a moment.
package viz
