package config

import (
	"fmt"
	"strconv"
	"strings"
)

// File is the top-level document of a jobs file.
//
//	defaults:
//	  epsilon: 1e-9
//	  max_volume: 17179869184
//	jobs:
//	  - name: span
//	    matrix: [[1, 2], [3, 1]]
//	    digits: canonical
//	  - name: companion
//	    matrix: [[0, -7], [1, -5]]
//	    digit_vectors: [[0, 0], [1, 0], [2, 0], [3, 0], [4, 0], [5, 0], [6, 0]]
type File struct {
	Defaults Limits `yaml:"defaults" validate:"-"`
	Jobs     []Job  `yaml:"jobs" validate:"required,min=1,dive"`
}

// Limits holds the numeric knobs of a cycle search. Zero values mean "use the default".
type Limits struct {
	Epsilon   float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty" validate:"omitempty,gt=0,lt=1"`
	MaxVolume uint64  `yaml:"max_volume,omitempty" json:"max_volume,omitempty"`
	MaxOrbit  int     `yaml:"max_orbit,omitempty" json:"max_orbit,omitempty" validate:"gte=0"`
}

// Job describes one (base, digit set) pair.
// Exactly one of Digits and DigitVectors must be set.
type Job struct {
	Name         string    `yaml:"name" json:"name" validate:"required"`
	Matrix       [][]int64 `yaml:"matrix" json:"matrix" validate:"required,min=1,dive,required"`
	Digits       string    `yaml:"digits,omitempty" json:"digits,omitempty" validate:"omitempty,oneof=canonical symmetric jsymmetric"`
	DigitVectors [][]int64 `yaml:"digit_vectors,omitempty" json:"digit_vectors,omitempty" validate:"omitempty,dive,required"`
	Points       [][]int64 `yaml:"points,omitempty" json:"points,omitempty" validate:"omitempty,dive,required"`
	Limits       `yaml:",inline"`
}

// withDefaults fills unset limits from d.
func (j Job) withDefaults(d Limits) Job {
	if j.Epsilon == 0 {
		j.Epsilon = d.Epsilon
	}
	if j.MaxVolume == 0 {
		j.MaxVolume = d.MaxVolume
	}
	if j.MaxOrbit == 0 {
		j.MaxOrbit = d.MaxOrbit
	}

	return j
}

// ParseMatrix parses rows separated by ';' and entries separated by ',', e.g. "1,2;3,1".
func ParseMatrix(s string) ([][]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("config: empty matrix")
	}
	parts := strings.Split(s, ";")
	rows := make([][]int64, 0, len(parts))
	for i, p := range parts {
		row, err := ParseVector(p)
		if err != nil {
			return nil, fmt.Errorf("config: row %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ParseVector parses comma-separated integers, e.g. "3,-1".
func ParseVector(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("config: empty vector")
	}
	fields := strings.Split(s, ",")
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: entry %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
