package discovery

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/wagiedev/randctl-go/internal/errors"
)

const (
	// BinaryName is the generator executable name searched for.
	BinaryName = "randgen"

	// EnvGeneratorPath overrides the search with an explicit path.
	EnvGeneratorPath = "RANDCTL_GENERATOR_PATH"
)

// Config holds configuration for generator discovery.
type Config struct {
	// GeneratorPath is an explicit path that skips every other search step.
	GeneratorPath string

	// Logger is an optional logger for discovery operations.
	// If nil, a discard logger is used.
	Logger *slog.Logger

	// executable returns the running binary's path; os.Executable when nil.
	executable func() (string, error)
}

// Discoverer locates the generator binary.
type Discoverer interface {
	// Discover returns the path to the generator binary or a
	// GeneratorNotFoundError listing what was searched.
	Discover() (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new generator discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the generator binary.
func (d *discoverer) Discover() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.GeneratorPath != "" {
		return d.explicit(d.cfg.GeneratorPath)
	}

	if path := os.Getenv(EnvGeneratorPath); path != "" {
		d.log.Debug("Using generator path from environment", "env", EnvGeneratorPath)

		return d.explicit(path)
	}

	searchedPaths := make([]string, 0, 2)

	if sibling, ok := d.siblingPath(); ok {
		searchedPaths = append(searchedPaths, sibling)
		d.log.Debug("Checking next to executable", "path", sibling)

		if isExecutable(sibling) {
			return sibling, nil
		}
	}

	d.log.Debug("Searching for generator in PATH", "name", BinaryName)

	if path, err := exec.LookPath(BinaryName); err == nil {
		d.log.Debug("Found generator in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	d.log.Warn("Generator binary not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.GeneratorNotFoundError{SearchedPaths: searchedPaths}
}

func (d *discoverer) explicit(path string) (string, error) {
	d.log.Debug("Using explicit generator path", "path", path)

	if isExecutable(path) {
		return path, nil
	}

	d.log.Debug("Explicit generator path not usable", "path", path)

	return "", &errors.GeneratorNotFoundError{SearchedPaths: []string{path}}
}

// siblingPath returns where a generator shipped alongside the controller
// would live.
func (d *discoverer) siblingPath() (string, bool) {
	executable := d.cfg.executable
	if executable == nil {
		executable = os.Executable
	}

	self, err := executable()
	if err != nil {
		d.log.Debug("Could not resolve own executable", "error", err)

		return "", false
	}

	name := BinaryName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	return filepath.Join(filepath.Dir(self), name), true
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	if runtime.GOOS == "windows" {
		return true
	}

	return info.Mode().Perm()&0o111 != 0
}
