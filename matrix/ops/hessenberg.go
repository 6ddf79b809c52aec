package ops

import "github.com/katalvlaran/gns/matrix"

// Hessenberg reduces m to upper Hessenberg form by unitary similarity.
// It returns (Q, H) with m = Q·H·Q* and H[i][j] = 0 for i > j+1.
//
// Implementation:
//   - Stage 1: validate square input; H = clone(m), Q = I.
//   - Stage 2: for k = 0..n-3 build the reflector of the sub-column H[k+1:, k],
//     apply it from the left (rows k+1..) and from the right (columns k+1..),
//     and accumulate it into Q.
//
// Complexity: O(n³).
func Hessenberg(m *matrix.Dense[complex128]) (*matrix.Dense[complex128], *matrix.Dense[complex128], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, opsErrorf(opHessenberg, err)
	}
	n := m.Rows()
	H := m.Clone()
	Q, err := identityC(n)
	if err != nil {
		return nil, nil, opsErrorf(opHessenberg, err)
	}
	x := make([]complex128, n)
	var i, k int
	for k = 0; k < n-2; k++ {
		for i = k + 1; i < n; i++ {
			x[i-k-1] = H.Get(i, k)
		}
		v, beta := householder(x[:n-k-1])
		reflectLeft(H, v, beta, k+1, 0, n)
		reflectRight(H, v, beta, k+1, 0, n)
		reflectRight(Q, v, beta, k+1, 0, n)
		for i = k + 2; i < n; i++ {
			H.Put(i, k, 0)
		}
	}

	return Q, H, nil
}
