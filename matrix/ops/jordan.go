package ops

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

// JordanBlock describes one block of a Jordan matrix.
type JordanBlock struct {
	Eigenvalue complex128
	Size       int
	// Start is the row/column index of the block's top-left entry in J.
	Start int
}

// JordanForm is a decomposition P·A·P⁻¹ = J over the complex numbers.
// Blocks are ordered by eigenvalue (real part, then imaginary part) and, for
// one eigenvalue, by decreasing size.
type JordanForm struct {
	P, J, PInv  *matrix.Dense[complex128]
	Eigenvalues []complex128
	Blocks      []JordanBlock
}

// eigenCluster is a group of Schur eigenvalues treated as one eigenvalue.
type eigenCluster struct {
	sum   complex128
	count int
}

func (c *eigenCluster) mean() complex128 { return c.sum / complex(float64(c.count), 0) }

// Jordan computes the Jordan form of a square complex matrix.
//
// Implementation:
//   - Stage 1: eigenvalues from Schur; values within 2·clusterEps of a cluster
//     mean join that cluster (multiplicity = cluster size). A Schur form with
//     forced deflations is accepted only if ‖Q·T·Q* − A‖F stays within
//     clusterEps·max(1, ‖A‖F).
//   - Stage 2: for each cluster λ with multiplicity m, compute the null spaces
//     of (A-λI)^k for k = 1, 2, … until their dimension reaches m.
//   - Stage 3: walk the levels from the top down; at level k start as many new
//     chains as the dimension increment requires, picking null-space vectors
//     that raise the rank of ker (A-λI)^(k-1) plus the vectors already present
//     at level k.
//   - Stage 4: columns [B^(k-1)v, …, Bv, v] per chain form P⁻¹; P = inverse.
//
// Returns ErrEigenFailed when forced deflations left a residual above that
// bound, and ErrJordanFailed when the null-space dimensions stall, overshoot the
// multiplicity, or no rank-increasing vector exists.
func Jordan(m *matrix.Dense[complex128], opts ...Option) (*JordanForm, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opJordan, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	// Stage 1: eigenvalues and clusters
	sf, err := Schur(m, opts...)
	if err != nil {
		return nil, opsErrorf(opJordan, err)
	}
	if sf.Forced > 0 {
		tol := o.clusterEps * math.Max(1, frobenius(m))
		if res := schurResidual(sf, m); res > tol {
			return nil, opsErrorf(opJordan, fmt.Errorf("%d forced deflation(s), residual %g > %g: %w",
				sf.Forced, res, tol, ErrEigenFailed))
		}
	}
	clusters := clusterEigenvalues(sf.Eigenvalues(), o.clusterEps)

	// Stages 2-3: chains per cluster
	cols := make([][]complex128, 0, n)
	blocks := make([]JordanBlock, 0, n)
	for _, c := range clusters {
		lambda := c.mean()
		chains, err := jordanChains(m, lambda, c.count, o.clusterEps)
		if err != nil {
			return nil, opsErrorf(opJordan, fmt.Errorf("eigenvalue %v: %w", lambda, err))
		}
		for _, chain := range chains {
			blocks = append(blocks, JordanBlock{Eigenvalue: lambda, Size: len(chain), Start: len(cols)})
			cols = append(cols, chain...)
		}
	}
	if len(cols) != n {
		return nil, opsErrorf(opJordan, fmt.Errorf("%d of %d columns: %w", len(cols), n, ErrJordanFailed))
	}

	// Stage 4: assemble
	pinv, err := matrix.New[complex128](n, n)
	if err != nil {
		return nil, opsErrorf(opJordan, err)
	}
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			pinv.Put(i, j, cols[j][i])
		}
	}
	p, err := Inverse[complex128](ring.Complex128{}, pinv)
	if err != nil {
		return nil, opsErrorf(opJordan, fmt.Errorf("generalized eigenvectors: %v: %w", err, ErrJordanFailed))
	}
	jm, err := matrix.New[complex128](n, n)
	if err != nil {
		return nil, opsErrorf(opJordan, err)
	}
	eig := make([]complex128, n)
	for _, b := range blocks {
		for i = b.Start; i < b.Start+b.Size; i++ {
			jm.Put(i, i, b.Eigenvalue)
			eig[i] = b.Eigenvalue
			if i > b.Start {
				jm.Put(i-1, i, 1)
			}
		}
	}

	return &JordanForm{P: p, J: jm, PInv: pinv, Eigenvalues: eig, Blocks: blocks}, nil
}

// clusterEigenvalues groups values whose distance to a cluster mean is at most
// 2·eps, then orders clusters by real part, then imaginary part.
func clusterEigenvalues(values []complex128, eps float64) []*eigenCluster {
	sorted := append([]complex128(nil), values...)
	sort.Slice(sorted, func(a, b int) bool { return complexLess(sorted[a], sorted[b]) })

	var clusters []*eigenCluster
	for _, v := range sorted {
		joined := false
		for _, c := range clusters {
			if cmplx.Abs(c.mean()-v) <= 2*eps {
				c.sum += v
				c.count++
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, &eigenCluster{sum: v, count: 1})
		}
	}
	sort.SliceStable(clusters, func(a, b int) bool { return complexLess(clusters[a].mean(), clusters[b].mean()) })

	return clusters
}

func complexLess(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}

	return imag(a) < imag(b)
}

// jordanChains returns the chains [B^(k-1)v, …, Bv, v] of B = A - λI, longest first.
func jordanChains(a *matrix.Dense[complex128], lambda complex128, mult int, eps float64) ([][][]complex128, error) {
	n := a.Rows()
	b := a.Clone()
	for i := 0; i < n; i++ {
		b.Put(i, i, b.Get(i, i)-lambda)
	}

	// Stage 2: nested kernels; kernels[k] spans ker B^k, kernels[0] is empty
	kernels := [][][]complex128{nil}
	bk := b
	var err error
	for k := 1; ; k++ {
		if k > 1 {
			if bk, err = matrix.Mul[complex128](ring.Complex128{}, bk, b); err != nil {
				return nil, err
			}
		}
		tol := ring.Complex128{Eps: eps * math.Max(1, maxAbs(bk))}
		basis, serr := SolveHomogeneous[complex128](tol, bk)
		if serr != nil {
			return nil, serr
		}
		prev := len(kernels[k-1])
		if len(basis) <= prev || len(basis) > mult {
			return nil, fmt.Errorf("dim ker B^%d = %d (previous %d, multiplicity %d): %w",
				k, len(basis), prev, mult, ErrJordanFailed)
		}
		for _, v := range basis {
			normalizeInf(v)
		}
		kernels = append(kernels, basis)
		if len(basis) == mult {
			break
		}
	}

	// Stage 3: top-down chain selection
	top := len(kernels) - 1
	present := make([][][]complex128, top+1)
	var chains [][][]complex128
	for k := top; k >= 1; k-- {
		need := len(kernels[k]) - len(kernels[k-1]) - len(present[k])
		set := append(append([][]complex128(nil), kernels[k-1]...), present[k]...)
		rank := vectorRank(set, eps)
		for _, cand := range kernels[k] {
			if need <= 0 {
				break
			}
			trial := append(append([][]complex128(nil), set...), cand)
			r := vectorRank(trial, eps)
			if r <= rank {
				continue
			}
			set, rank = trial, r
			need--

			chain := make([][]complex128, k)
			chain[k-1] = append([]complex128(nil), cand...)
			for l := k - 2; l >= 0; l-- {
				next := make([]complex128, n)
				matrix.MatVecInto[complex128](ring.Complex128{}, b, chain[l+1], next)
				chain[l] = next
				present[l+1] = append(present[l+1], next)
			}
			chains = append(chains, chain)
		}
		if need > 0 {
			return nil, fmt.Errorf("level %d: %d chain(s) without a rank-increasing vector: %w", k, need, ErrJordanFailed)
		}
	}

	return chains, nil
}

// vectorRank returns the rank of the matrix whose columns are vs, each scaled to unit max-norm.
func vectorRank(vs [][]complex128, eps float64) int {
	if len(vs) == 0 {
		return 0
	}
	n := len(vs[0])
	m, err := matrix.New[complex128](n, len(vs))
	if err != nil {
		return 0
	}
	for j, v := range vs {
		scale := maxAbsSlice(v)
		if scale == 0 {
			continue
		}
		for i, x := range v {
			m.Put(i, j, x/complex(scale, 0))
		}
	}

	return rref[complex128](ring.Complex128{Eps: eps}, m).rank
}

// normalizeInf scales v in place to unit max-norm.
func normalizeInf(v []complex128) {
	scale := maxAbsSlice(v)
	if scale == 0 {
		return
	}
	for i := range v {
		v[i] /= complex(scale, 0)
	}
}

func maxAbsSlice(v []complex128) float64 {
	out := 0.0
	for _, x := range v {
		out = math.Max(out, cmplx.Abs(x))
	}

	return out
}

func maxAbs(m *matrix.Dense[complex128]) float64 { return maxAbsSlice(m.Raw()) }
