// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Kind selects the screen a job drives.
type Kind string

// Job kinds.
const (
	KindEigen    Kind = "eigen"
	KindGenerate Kind = "generate"
)

var (
	// ErrNoJobs indicates a job file without jobs.
	ErrNoJobs = errors.New("batch: no jobs")

	// ErrUnknownKind indicates a job kind other than eigen or generate.
	ErrUnknownKind = errors.New("batch: unknown job kind")
)

// Job is one unit of work. Matrix is used by eigen jobs; Eigenvalues and
// Eigenvectors by generate jobs. Text fields use the interactive input syntax.
type Job struct {
	ID           string `yaml:"id,omitempty"`
	Name         string `yaml:"name,omitempty"`
	Kind         Kind   `yaml:"kind"`
	Matrix       string `yaml:"matrix,omitempty"`
	Eigenvalues  string `yaml:"eigenvalues,omitempty"`
	Eigenvectors string `yaml:"eigenvectors,omitempty"`
}

// File is the top-level job document.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Decode reads a job document and assigns IDs to jobs that lack one.
//
// Errors:
//   - ErrNoJobs for an empty list.
//   - ErrUnknownKind naming the offending job.
func Decode(r io.Reader) ([]Job, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("batch: failed to parse jobs: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrNoJobs
	}
	for i := range f.Jobs {
		j := &f.Jobs[i]
		if j.Kind != KindEigen && j.Kind != KindGenerate {
			return nil, fmt.Errorf("job %d (%s): kind %q: %w", i+1, j.Name, j.Kind, ErrUnknownKind)
		}
		if j.ID == "" {
			j.ID = uuid.NewString()
		}
	}

	return f.Jobs, nil
}

// Load decodes the job file at path.
func Load(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: failed to open jobs: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
