// Package radix bundles a radix base M with the invariants every number-system
// computation needs: its exact inverse, integer adjugate, determinant, Smith
// normal form and the adapted operator norm of M⁻¹.
//
// Properties are computed once by New and never change; accessors hand out copies.
package radix
