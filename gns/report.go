package gns

// Report summarizes a complete classification of (M, D).
type Report struct {
	Dim            int     `json:"dim"`
	Det            int64   `json:"det"`
	Contraction    float64 `json:"contraction"`
	Lower          []int64 `json:"lower"`
	Upper          []int64 `json:"upper"`
	Volume         uint64  `json:"volume"`
	Cycles         []Cycle `json:"cycles"`
	ZeroIsDigit    bool    `json:"zero_is_digit"`
	IsNumberSystem bool    `json:"is_number_system"`
}

// Classify runs the cycle search and decides whether (M, D) is a number system:
// every lattice point has a finite expansion iff the only cycle is {0}.
// The box is computed once and shared with the search; when the search fails
// after the box is known, the partial report is returned with the error.
func (ns *NumberSystem) Classify() (*Report, error) {
	res, err := ns.timedSearch()
	if res.lower == nil {
		return nil, gnsErrorf(opClassify, err)
	}
	r := &Report{
		Dim:         ns.n,
		Det:         ns.det,
		Contraction: ns.props.Contraction(),
		Lower:       res.lower,
		Upper:       res.upper,
		Volume:      res.volume,
		ZeroIsDigit: isZero(ns.table.digits[ns.table.hash.Hash(make([]int64, ns.n))]),
	}
	if err != nil {
		return r, gnsErrorf(opClassify, gnsErrorf(opCycles, err))
	}
	r.Cycles = res.cycles
	r.IsNumberSystem = r.ZeroIsDigit && len(r.Cycles) == 1 && r.Cycles[0].IsZero()

	return r, nil
}

// NonTrivial returns the cycles other than {0}.
func (r *Report) NonTrivial() []Cycle {
	var out []Cycle
	for _, c := range r.Cycles {
		if !c.IsZero() {
			out = append(out, c)
		}
	}

	return out
}
