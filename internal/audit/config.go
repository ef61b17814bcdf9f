// Package audit checks the trusted base of deptypes.
//
// Every axiom of the numeric and boolean families is recorded in a Ledger
// together with a check that evaluates its claim over a bounded range of
// runtime values. A Runner executes the checks described by a Profile
// (deptypes.yaml), a Store keeps the history of runs in sqlite, and Scan
// lists every call to a trusted constructor of package rel in a module so
// that new axioms outside the audited packages do not go unnoticed.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/deptypes/internal/config"
)

// Profile is the top-level deptypes.yaml configuration.
type Profile struct {
	// Bound limits the sampled values: signed checks cover [-Bound, Bound],
	// unsigned checks cover [0, Bound].
	Bound int `yaml:"bound,omitempty"`

	// Families selects which term families to check. Empty means all.
	Families []string `yaml:"families,omitempty"`

	// Axioms restricts the run to the named axioms.
	Axioms []string `yaml:"axioms,omitempty"`

	// Skip lists axioms reported as skipped instead of checked.
	Skip []string `yaml:"skip,omitempty"`

	// Workers is the number of checks run at once.
	Workers int `yaml:"workers,omitempty"`

	// DB is the sqlite history path, relative to the profile.
	DB string `yaml:"db,omitempty"`

	Scan ScanConfig `yaml:"scan,omitempty"`
}

// ScanConfig describes where trusted constructor calls may appear.
type ScanConfig struct {
	// Dir is the module directory to load, relative to the profile.
	Dir string `yaml:"dir,omitempty"`

	// Patterns are go/packages patterns. Defaults to ./...
	Patterns []string `yaml:"patterns,omitempty"`

	// Allow lists the packages whose calls are expected. A trailing /...
	// matches every package below the prefix.
	Allow []string `yaml:"allow,omitempty"`
}

// maxBound keeps the product of two samples within int32.
const maxBound = 1 << 15

// DefaultProfile is the profile used when no deptypes.yaml is found.
func DefaultProfile() *Profile {
	p := &Profile{}
	p.setDefaults()
	return p
}

// LoadConfig reads and parses a deptypes.yaml file.
func LoadConfig(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	p, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	p.resolve(filepath.Dir(path))
	return p, nil
}

// ParseConfig parses deptypes.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := p.validate(path); err != nil {
		return nil, err
	}
	p.setDefaults()
	return &p, nil
}

// FindConfig searches for deptypes.yaml starting from dir and walking up to
// parent directories. It returns an empty path and nil error if none exists.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range config.ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Validate checks a profile after command-line flags have overridden the
// values it was loaded with.
func (p *Profile) Validate() error {
	return p.validate("flags")
}

func (p *Profile) validate(path string) error {
	if p.Bound < 0 || p.Bound > maxBound {
		return fmt.Errorf("%s: bound %d out of range [0, %d]", path, p.Bound, maxBound)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%s: workers must not be negative", path)
	}

	for i, f := range p.Families {
		if !slices.Contains(config.Families, f) {
			return fmt.Errorf("%s: families[%d]: unknown family %q (want one of %s)",
				path, i, f, strings.Join(config.Families, ", "))
		}
	}

	for i, name := range p.Axioms {
		if _, ok := DefaultLedger.Lookup(name); !ok {
			return fmt.Errorf("%s: axioms[%d]: unknown axiom %q", path, i, name)
		}
	}
	for i, name := range p.Skip {
		if _, ok := DefaultLedger.Lookup(name); !ok {
			return fmt.Errorf("%s: skip[%d]: unknown axiom %q", path, i, name)
		}
		if slices.Contains(p.Axioms, name) {
			return fmt.Errorf("%s: skip[%d]: %q is both selected and skipped", path, i, name)
		}
	}

	for i, pat := range p.Scan.Allow {
		if pat == "" {
			return fmt.Errorf("%s: scan.allow[%d]: empty pattern", path, i)
		}
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (p *Profile) setDefaults() {
	if p.Bound == 0 {
		p.Bound = config.DefaultBound
	}
	if p.Workers == 0 {
		p.Workers = config.DefaultWorkers
	}
	if len(p.Families) == 0 {
		p.Families = slices.Clone(config.Families)
	}
	if p.DB == "" {
		p.DB = config.DefaultDBPath
	}
	if p.Scan.Dir == "" {
		p.Scan.Dir = "."
	}
	if len(p.Scan.Patterns) == 0 {
		p.Scan.Patterns = []string{"./..."}
	}
	if len(p.Scan.Allow) == 0 {
		p.Scan.Allow = DefaultAllow()
	}
}

// resolve makes relative paths relative to the profile's directory.
func (p *Profile) resolve(dir string) {
	if !filepath.IsAbs(p.DB) {
		p.DB = filepath.Join(dir, p.DB)
	}
	if !filepath.IsAbs(p.Scan.Dir) {
		p.Scan.Dir = filepath.Join(dir, p.Scan.Dir)
	}
}

// Selected reports whether the profile checks e.
func (p *Profile) Selected(e *Entry) bool {
	if !slices.Contains(p.Families, e.Family) {
		return false
	}
	return len(p.Axioms) == 0 || slices.Contains(p.Axioms, e.Name)
}

// Skipped reports whether the profile skips e.
func (p *Profile) Skipped(e *Entry) bool {
	return slices.Contains(p.Skip, e.Name)
}

// DefaultAllow lists the packages of this module that define axioms.
func DefaultAllow() []string {
	return []string{
		config.ModulePath + "/pkg/rel",
		config.ModulePath + "/pkg/term",
		config.ModulePath + "/pkg/transm",
		config.ModulePath + "/pkg/brand",
		config.ModulePath + "/pkg/peano",
		config.ModulePath + "/pkg/logic",
	}
}
