// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Status of a finished job.
type Status string

// Job statuses.
const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Value is one eigenvalue; Im is omitted for real values.
type Value struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im,omitempty"`
}

// AlertInfo is the user-facing part of a failed job.
type AlertInfo struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Cause   string `yaml:"cause,omitempty"`
}

// Result is the outcome of one job.
type Result struct {
	ID     string        `yaml:"id"`
	Name   string        `yaml:"name,omitempty"`
	Kind   Kind          `yaml:"kind"`
	Status Status        `yaml:"status"`
	Output string        `yaml:"output,omitempty"`
	Values []Value       `yaml:"eigenvalues,omitempty"`
	Matrix [][]float64   `yaml:"matrix,omitempty,flow"`
	Alert  *AlertInfo    `yaml:"alert,omitempty"`
	Took   time.Duration `yaml:"took"`
}

// Report collects the results of one run, in job order.
type Report struct {
	RunID    string    `yaml:"run_id"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished"`
	Failed   int       `yaml:"failed"`
	Results  []Result  `yaml:"results"`
}

// Write encodes the report as YAML.
func (r *Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("batch: failed to write report: %w", err)
	}

	return enc.Close()
}
