// Package lite provides Result-aware stream operators: channel stages that
// carry rop.Result[T, E] values through a pipeline and transform only the
// success side or only the failure side, leaving the other untouched.
//
// Common usage:
// - Map/MapFailure, MapTo/MapFailureTo: transform one side of every Result
// - UnwrapOrMap/UnwrapOrMapTo: leave the Result world, recovering failures
// - FilterSuccess/FilterFailure: keep one side, unwrapped, drop the other
// - SwitchMap/MergeMap: flatten Result-producing inner streams (see Inner)
// - Switch/Try/Tee/Finally: lift the matching solo primitives over channels
//
// Every operator returns immediately. Its goroutines stop, and its output
// closes, when the input closes or ctx is done.
package lite
