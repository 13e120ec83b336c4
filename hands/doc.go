// Package hands splits a performance into two playable streams, one per hand.
//
// Notes are validated and sorted by onset (then pitch) before either engine
// runs. Each hand's ergonomic load is tracked from the notes already assigned
// to it that are still sounding, and a Cost is charged for placing the next
// note in that hand:
//
//	span     = max(0, newSpan-AllowedSpread)^2
//	finger   = 2.0 when MaxFingers pitch classes are held and the note adds another
//	register = 0.8 when the note sits on the wrong side of middle C
//	density  = 0.2 per sounding note
//
// Two engines consume the cost model. Greedy decides each note once, with a
// hysteresis margin so near-ties do not flip hands back and forth. Optimal
// fills a two-column dynamic programming table and backtracks the cheapest
// hand sequence.
//
// Engines are pure: no I/O, no shared state, safe to call concurrently.
package hands
