// Package norm builds the adapted operator norm of a matrix from its Jordan form.
//
// For P·A·P⁻¹ = J the norm is ‖v‖ = ‖S·v‖∞ with S = D·P, where D scales each
// Jordan block so that its superdiagonal ones shrink to μ = (1-|λ|)/2. Under this
// norm ‖A‖ = max over blocks of |λ| + μ, which is strictly below 1 whenever every
// eigenvalue of A lies inside the unit disc, defective blocks included.
//
// The gns engine uses it on A = M⁻¹ for an expanding base M: as the certificate
// that φ contracts and as the scale of the bounding box for cycle search.
package norm
