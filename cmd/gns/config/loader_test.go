package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobsYAML = `
defaults:
  epsilon: 1e-8
  max_volume: 1000000
jobs:
  - name: span
    matrix: [[1, 2], [3, 1]]
    digits: canonical
  - name: companion
    matrix: [[0, -7], [1, -5]]
    digit_vectors: [[0, 0], [1, 0], [2, 0], [3, 0], [4, 0], [5, 0], [6, 0]]
    max_volume: 5000
    points: [[3, 4]]
`

// TestLoad_File verifies reading, defaults and per-job overrides.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(jobsYAML), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Jobs, 2)

	span := f.Jobs[0]
	assert.Equal(t, "span", span.Name)
	assert.Equal(t, [][]int64{{1, 2}, {3, 1}}, span.Matrix)
	assert.Equal(t, "canonical", span.Digits)
	assert.Equal(t, 1e-8, span.Epsilon)
	assert.Equal(t, uint64(1000000), span.MaxVolume)

	comp, err := f.Find("companion")
	require.NoError(t, err)
	assert.Len(t, comp.DigitVectors, 7)
	assert.Equal(t, uint64(5000), comp.MaxVolume)
	assert.Equal(t, 1e-8, comp.Epsilon)
	assert.Equal(t, [][]int64{{3, 4}}, comp.Points)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no jobs", "jobs: []"},
		{"missing name", "jobs:\n  - matrix: [[2]]\n    digits: canonical"},
		{"not square", "jobs:\n  - name: a\n    matrix: [[1, 2]]\n    digits: canonical"},
		{"unknown kind", "jobs:\n  - name: a\n    matrix: [[2]]\n    digits: balanced"},
		{"no digits", "jobs:\n  - name: a\n    matrix: [[2]]"},
		{"both digit sources", "jobs:\n  - name: a\n    matrix: [[2]]\n    digits: canonical\n    digit_vectors: [[0], [1]]"},
		{"digit dimension", "jobs:\n  - name: a\n    matrix: [[2]]\n    digit_vectors: [[0, 0], [1, 0]]"},
		{"point dimension", "jobs:\n  - name: a\n    matrix: [[2]]\n    digits: canonical\n    points: [[1, 1]]"},
		{"epsilon range", "jobs:\n  - name: a\n    matrix: [[2]]\n    digits: canonical\n    epsilon: 2"},
		{"bad defaults", "defaults:\n  epsilon: -1\njobs:\n  - name: a\n    matrix: [[2]]\n    digits: canonical"},
		{"duplicate names", "jobs:\n  - name: a\n    matrix: [[2]]\n    digits: canonical\n  - name: a\n    matrix: [[3]]\n    digits: symmetric"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("jobs: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestFile_Find(t *testing.T) {
	f, err := Parse([]byte("jobs:\n  - name: only\n    matrix: [[2]]\n    digits: canonical"))
	require.NoError(t, err)

	j, err := f.Find("")
	require.NoError(t, err)
	assert.Equal(t, "only", j.Name)

	_, err = f.Find("other")
	require.Error(t, err)

	f.Jobs = append(f.Jobs, Job{Name: "second"})
	_, err = f.Find("")
	require.Error(t, err)
}

func TestJob_Validate(t *testing.T) {
	j := Job{Name: "flags", Matrix: [][]int64{{-1, -1}, {1, -1}}, Digits: "canonical"}
	require.NoError(t, j.Validate())

	j.Matrix = [][]int64{{-1, -1}, {1}}
	require.ErrorIs(t, j.Validate(), ErrInvalid)
}

func TestParseMatrix(t *testing.T) {
	m, err := ParseMatrix("1,2; 3, 1")
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 2}, {3, 1}}, m)

	m, err = ParseMatrix("-2")
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-2}}, m)

	for _, bad := range []string{"", "1,x", "1,2;", " ; "} {
		_, err = ParseMatrix(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseVector(t *testing.T) {
	v, err := ParseVector(" 3,-1 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -1}, v)

	_, err = ParseVector("3,,1")
	require.Error(t, err)
}
