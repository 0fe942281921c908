// Package modify implements intersection-based modification tools:
// trim, extend, fillet, and chamfer.
//
// The geometry lives in pure functions (ComputeTrim, ComputeExtend,
// ComputeFillet, ComputeChamfer) that take entity data and return new
// data without touching any store. Store application and the
// interactive boundary-selection state machine are thin layers on top.
package modify
