package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateJob, Job{})
}

// validateJob checks the cross-field rules struct tags cannot express.
func validateJob(sl validator.StructLevel) {
	j := sl.Current().Interface().(Job)
	n := len(j.Matrix)
	for _, row := range j.Matrix {
		if len(row) != n {
			sl.ReportError(j.Matrix, "Matrix", "matrix", "square", "")
			break
		}
	}
	if (j.Digits == "") == (len(j.DigitVectors) == 0) {
		sl.ReportError(j.Digits, "Digits", "digits", "digits_xor_vectors", "")
	}
	for _, d := range j.DigitVectors {
		if len(d) != n {
			sl.ReportError(j.DigitVectors, "DigitVectors", "digit_vectors", "dim", "")
			break
		}
	}
	for _, p := range j.Points {
		if len(p) != n {
			sl.ReportError(j.Points, "Points", "points", "dim", "")
			break
		}
	}
}

// Load reads, parses and validates a jobs file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a jobs document, applies the defaults block to every job and
// validates the result.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := validate.Struct(&f.Defaults); err != nil {
		return nil, fmt.Errorf("%w: defaults: %v", ErrInvalid, err)
	}
	for i := range f.Jobs {
		f.Jobs[i] = f.Jobs[i].withDefaults(f.Defaults)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	seen := make(map[string]bool, len(f.Jobs))
	for _, j := range f.Jobs {
		if seen[j.Name] {
			return nil, fmt.Errorf("%w: duplicate job name %q", ErrInvalid, j.Name)
		}
		seen[j.Name] = true
	}

	return &f, nil
}

// Validate checks a single job, e.g. one assembled from command-line flags.
func (j *Job) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Find returns the job called name; an empty name selects the only job of a
// single-job file.
func (f *File) Find(name string) (Job, error) {
	if name == "" {
		if len(f.Jobs) == 1 {
			return f.Jobs[0], nil
		}
		return Job{}, fmt.Errorf("config: %d jobs defined, select one by name", len(f.Jobs))
	}
	for _, j := range f.Jobs {
		if j.Name == name {
			return j, nil
		}
	}

	return Job{}, fmt.Errorf("config: no job named %q", name)
}
