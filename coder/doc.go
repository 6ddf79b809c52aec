// Package coder enumerates an axis-aligned integer box densely.
//
// VectorCoder is a mixed-radix bijection between the lattice points of
// [lower₀, upper₀] × … × [lowerₙ₋₁, upperₙ₋₁] and the codes 0..Size()-1, with
// axis 0 as the least significant digit. BitVector is the per-code visited flag
// used by exhaustive searches over such a box.
package coder
