// Package playback advances step producers one step at a time.
//
// A Session is the manual state machine used by interactive views: Start,
// Pause, Reset, Tick and StepOnce, gated by a single running flag. A Driver
// wraps a session in a ticker loop for headless runs, feeding every applied
// step to metrics and observers:
//
//	d := playback.New()
//	d.AddMetric(metrics.NewComparisons())
//	res, err := d.Run(ctx, sorting.Bubble(values), playback.Config{Delay: 500 * time.Millisecond})
//
// Cancelling the context stops the run after the last applied step. The
// result reports Canceled and keeps that step as Final.
package playback
