// Package manifest loads batch-suite manifests for the ucore CLI.
//
// A manifest names a list of jobs, each a CORE program with optional
// input data and optional expected output. TOML is the default format;
// YAML is selected by the .yaml/.yml file extension.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Suite is a parsed batch manifest.
type Suite struct {
	Name string `toml:"name" yaml:"name"`
	Jobs []Job  `toml:"jobs" yaml:"jobs"`
}

// Job is one program run within a suite.
// Input and Data are mutually exclusive, as are Expect and ExpectFile.
type Job struct {
	Name       string `toml:"name" yaml:"name"`
	Program    string `toml:"program" yaml:"program"`         // program file path
	Input      string `toml:"input" yaml:"input"`             // input data file path
	Data       string `toml:"data" yaml:"data"`               // inline input data
	Expect     string `toml:"expect" yaml:"expect"`           // inline expected output
	ExpectFile string `toml:"expect_file" yaml:"expect_file"` // expected output file path
}

// HasExpectation reports whether the job declares expected output.
func (j *Job) HasExpectation() bool {
	return j.Expect != "" || j.ExpectFile != ""
}

// Load reads and validates a manifest file.
// The format is detected from the file extension (.yaml/.yml for YAML,
// TOML otherwise). File paths inside the manifest are resolved
// relative to the manifest's own directory.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite Suite
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	}

	if err := suite.validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	suite.resolvePaths(filepath.Dir(path))
	return &suite, nil
}

func (s *Suite) validate() error {
	if len(s.Jobs) == 0 {
		return fmt.Errorf("no jobs defined")
	}
	for i := range s.Jobs {
		j := &s.Jobs[i]
		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%d", i+1)
		}
		if j.Program == "" {
			return fmt.Errorf("job %q: program is required", j.Name)
		}
		if j.Input != "" && j.Data != "" {
			return fmt.Errorf("job %q: input and data are mutually exclusive", j.Name)
		}
		if j.Expect != "" && j.ExpectFile != "" {
			return fmt.Errorf("job %q: expect and expect_file are mutually exclusive", j.Name)
		}
	}
	return nil
}

func (s *Suite) resolvePaths(dir string) {
	for i := range s.Jobs {
		j := &s.Jobs[i]
		j.Program = resolve(dir, j.Program)
		j.Input = resolve(dir, j.Input)
		j.ExpectFile = resolve(dir, j.ExpectFile)
	}
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
