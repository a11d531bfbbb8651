// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions form the per-element building blocks that
// the channel operators in package lite lift over streams.
//
// Highlights:
// - Map/MapFailure: transform one side, pass the other through
// - MapTo/MapFailureTo: replace one side with a constant
// - UnwrapOrMap/UnwrapOrMapTo: collapse to T, recovering failures
// - Switch: move from Result[In, E] to Result[Out, E] with a Result-returning step
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/failure handlers
//
// Every derived Result keeps the id and creation time of its input.
package solo
