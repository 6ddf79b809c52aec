package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/gns/gns"
)

type classifyResult struct {
	RunID  string      `json:"run_id"`
	Job    string      `json:"job"`
	Report *gns.Report `json:"report,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type batchResult struct {
	Jobs []*classifyResult `json:"jobs"`
}

type pointHash struct {
	Point []int64 `json:"point"`
	Hash  int64   `json:"hash"`
	Digit []int64 `json:"digit"`
}

type hashResult struct {
	RunID  string      `json:"run_id"`
	Job    string      `json:"job"`
	Moduli []int64     `json:"moduli"`
	Size   int64       `json:"size"`
	Digits [][]int64   `json:"digits"`
	Points []pointHash `json:"points,omitempty"`
}

type pointResult struct {
	Point   []int64   `json:"point"`
	Vectors [][]int64 `json:"vectors"`
	Error   string    `json:"error,omitempty"`
}

type pointsResult struct {
	RunID  string        `json:"run_id"`
	Job    string        `json:"job"`
	Points []pointResult `json:"points"`
}

// emit writes v as one JSON line, or calls text for the human format.
func (c *cli) emit(v any, text func()) error {
	if c.output != outputJSON {
		text()
		return nil
	}
	b, err := sonnet.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = c.out.Write(append(b, '\n'))

	return err
}

func writeClassify(w io.Writer, r *classifyResult) {
	fmt.Fprintf(w, "job            %s\n", r.Job)
	fmt.Fprintf(w, "run id         %s\n", r.RunID)
	if r.Error != "" {
		fmt.Fprintf(w, "error          %s\n", r.Error)
		return
	}
	rep := r.Report
	fmt.Fprintf(w, "dimension      %d\n", rep.Dim)
	fmt.Fprintf(w, "determinant    %d\n", rep.Det)
	fmt.Fprintf(w, "contraction    %.6f\n", rep.Contraction)
	fmt.Fprintf(w, "box            %s .. %s (%d points)\n", formatVec(rep.Lower), formatVec(rep.Upper), rep.Volume)
	fmt.Fprintf(w, "cycles         %d\n", len(rep.Cycles))
	for _, cy := range rep.Cycles {
		fmt.Fprintf(w, "  %s\n", formatPath(cy))
	}
	fmt.Fprintf(w, "zero is digit  %s\n", yesNo(rep.ZeroIsDigit))
	fmt.Fprintf(w, "number system  %s\n", yesNo(rep.IsNumberSystem))
}

func writeBatch(w io.Writer, r *batchResult) {
	for i, j := range r.Jobs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeClassify(w, j)
	}
}

func writeHash(w io.Writer, r *hashResult) {
	fmt.Fprintf(w, "job      %s\n", r.Job)
	fmt.Fprintf(w, "run id   %s\n", r.RunID)
	fmt.Fprintf(w, "moduli   %s\n", formatVec(r.Moduli))
	fmt.Fprintf(w, "classes  %d\n", r.Size)
	for h, d := range r.Digits {
		fmt.Fprintf(w, "  %6d  %s\n", h, formatVec(d))
	}
	for _, p := range r.Points {
		fmt.Fprintf(w, "%s  hash %d  digit %s\n", formatVec(p.Point), p.Hash, formatVec(p.Digit))
	}
}

func writePoints(w io.Writer, verb string, r *pointsResult) {
	fmt.Fprintf(w, "job      %s\n", r.Job)
	fmt.Fprintf(w, "run id   %s\n", r.RunID)
	for _, p := range r.Points {
		if p.Error != "" {
			fmt.Fprintf(w, "%s %s: error: %s\n", verb, formatVec(p.Point), p.Error)
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", verb, formatVec(p.Point), formatPath(p.Vectors))
	}
}

// formatVec renders v as "(1, -2)".
func formatVec(v []int64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatInt(x, 10)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// formatPath renders vectors separated by arrows; an empty path is "-".
func formatPath(vs [][]int64) string {
	if len(vs) == 0 {
		return "-"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatVec(v)
	}

	return strings.Join(parts, " -> ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
