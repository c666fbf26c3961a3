// Package cli provides the command-line interface layer for the scaffold
// tool, including command dispatch, the interactive menu, and the wiring
// between configuration, emitter and markers.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dealstack/testscaffold/internal/config"
	"github.com/dealstack/testscaffold/internal/emitter"
	"github.com/dealstack/testscaffold/internal/scaffold"
	"github.com/dealstack/testscaffold/internal/system"
	"github.com/dealstack/testscaffold/internal/ui"
)

// Context holds all dependencies needed for scaffold operations
type Context struct {
	Config  *config.Config
	Markers *config.Markers
	UI      *ui.UI
	// Stdout receives the emitter's confirmation lines. Overridable in tests.
	Stdout io.Writer
}

// NewContext creates a Context with all dependencies initialized
func NewContext() (*Context, error) {
	return NewContextWithOptions(false)
}

// NewContextWithOptions creates a Context with custom options
func NewContextWithOptions(nonInteractive bool) (*Context, error) {
	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	return &Context{
		Config:  cfg,
		Markers: config.NewMarkers(""),
		UI:      uiInstance,
		Stdout:  os.Stdout,
	}, nil
}

// OptionsFromConfig builds emitter options from persisted configuration.
// Command-line flags are applied on top by the callers.
func OptionsFromConfig(cfg *config.Config) emitter.Options {
	opts := emitter.Options{
		Root:       cfg.GetOrDefault(config.KeyProjectRoot, "."),
		Atomic:     cfg.GetOrDefault(config.KeyAtomicWrites, "false") == "true",
		CreateDirs: cfg.GetOrDefault(config.KeyCreateDirs, "false") == "true",
	}

	if mode, err := strconv.ParseUint(cfg.GetOrDefault(config.KeyFileMode, "0644"), 8, 32); err == nil {
		opts.FileMode = os.FileMode(mode)
	}

	return opts
}

// NewEmitter builds an emitter against the real filesystem
func (c *Context) NewEmitter(opts emitter.Options) *emitter.Emitter {
	return emitter.New(system.NewFileSystem(), c.UI, c.Stdout, opts)
}

// ResolveScaffolds maps a command argument to catalog entries: "all" selects
// the full catalog, anything else is a single scaffold name.
func ResolveScaffolds(arg string) ([]scaffold.Scaffold, error) {
	if arg == "all" {
		return scaffold.All(), nil
	}

	s, err := scaffold.Lookup(arg)
	if err != nil {
		return nil, err
	}
	return []scaffold.Scaffold{s}, nil
}
