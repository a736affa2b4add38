// Package batch expands every CSF listed in a YAML job file and can watch
// the file to re-run it on change.
//
// A job file looks like:
//
//	jobs:
//	  - name: singlet
//	    stepvec: "2ud0"
//	    twoms: 0
//	  - stepvec: "uu"
//	    twoms: 2
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoJobs is returned for a job file without jobs.
var ErrNoJobs = errors.New("job file has no jobs")

// Job is one expansion request.
type Job struct {
	Name       string `yaml:"name"`
	StepVector string `yaml:"stepvec"`
	TwoMs      *int   `yaml:"twoms"`
}

// File is the top-level job file document.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Parse decodes a job file. Every job needs a step-vector and a twoms
// value; unnamed jobs are named after their position.
func Parse(r io.Reader) ([]Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	for i := range f.Jobs {
		job := &f.Jobs[i]
		if job.Name == "" {
			job.Name = fmt.Sprintf("job %d", i+1)
		}
		if job.StepVector == "" {
			return nil, fmt.Errorf("%s: missing stepvec", job.Name)
		}
		if job.TwoMs == nil {
			return nil, fmt.Errorf("%s: missing twoms", job.Name)
		}
	}
	return f.Jobs, nil
}

// Load reads a job file from path; "-" reads standard input.
func Load(path string) ([]Job, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
