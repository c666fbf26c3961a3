// Package emitter implements the scaffold write operation: put an embedded
// payload at its fixed destination, truncating anything already there, and
// confirm on stdout. A filesystem failure is returned to the caller as-is;
// there is no retry and no partial-write recovery.
package emitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dealstack/testscaffold/internal/common"
	"github.com/dealstack/testscaffold/internal/scaffold"
	"github.com/dealstack/testscaffold/internal/system"
	"github.com/dealstack/testscaffold/internal/ui"
)

// Options controls how scaffolds are written. The zero value reproduces the
// plain behavior: resolve against the current directory, write in place with
// truncate semantics, do not create parent directories.
type Options struct {
	// Root is the project root destinations resolve against. Empty means the
	// current working directory.
	Root string
	// CreateDirs creates missing parent directories before writing.
	CreateDirs bool
	// Atomic writes via a temp file plus rename instead of in-place truncate.
	Atomic bool
	// SkipExisting leaves an existing destination file untouched.
	SkipExisting bool
	// DryRun reports what would be written without touching the filesystem.
	DryRun bool
	// FileMode is the permission for emitted files. Zero means 0644.
	FileMode os.FileMode
}

// Emitter writes scaffolds to disk and reports the result.
type Emitter struct {
	fs   system.FileWriter
	ui   *ui.UI
	out  io.Writer
	opts Options
}

// New creates an Emitter. Confirmation lines go to out, which should be
// stdout in production; operator messages go through the UI on stderr.
func New(fs system.FileWriter, u *ui.UI, out io.Writer, opts Options) *Emitter {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	return &Emitter{
		fs:   fs,
		ui:   u,
		out:  out,
		opts: opts,
	}
}

// DestinationPath resolves a scaffold's destination against the project root.
func (e *Emitter) DestinationPath(s scaffold.Scaffold) string {
	return filepath.Join(e.opts.Root, filepath.FromSlash(s.Destination))
}

// Emit writes one scaffold's payload to its destination in a single
// operation and prints the confirmation lines:
//
//	File written successfully to <path>
//	Total characters: <N>
//
// Re-running is idempotent: the destination is truncated and rewritten with
// the same constant payload. A filesystem fault (missing parent directory,
// permission denied, disk full) aborts the emit and leaves no new file.
func (e *Emitter) Emit(s scaffold.Scaffold) error {
	if err := common.ValidateDestination(s.Destination); err != nil {
		return err
	}

	dest := e.DestinationPath(s)

	if e.opts.SkipExisting {
		exists, err := e.fs.FileExists(dest)
		if err != nil {
			return err
		}
		if exists {
			e.ui.Infof("Skipping %s: %s already exists", s.Name, dest)
			return nil
		}
	}

	if e.opts.DryRun {
		e.ui.Infof("Would write %d characters to %s", s.CharCount(), dest)
		return nil
	}

	if e.opts.CreateDirs {
		if err := e.fs.EnsureDirectory(filepath.Dir(dest), 0755); err != nil {
			return err
		}
	}

	var err error
	if e.opts.Atomic {
		err = e.fs.WriteFileAtomic(dest, s.Bytes(), e.opts.FileMode)
	} else {
		err = e.fs.WriteFile(dest, s.Bytes(), e.opts.FileMode)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "File written successfully to %s\n", dest)
	fmt.Fprintf(e.out, "Total characters: %d\n", s.CharCount())

	return nil
}

// EmitAll writes every given scaffold in order, stopping at the first
// failure.
func (e *Emitter) EmitAll(scaffolds []scaffold.Scaffold) error {
	for _, s := range scaffolds {
		if err := e.Emit(s); err != nil {
			return fmt.Errorf("emit %s: %w", s.Name, err)
		}
	}
	return nil
}

// Status describes the on-disk state of one scaffold's destination.
type Status struct {
	Scaffold    scaffold.Scaffold
	Destination string
	Exists      bool
	// Matches is true when the destination file exists and its contents are
	// byte-identical to the payload.
	Matches bool
}

// Inspect reports whether a scaffold's destination exists and whether its
// contents still match the embedded payload.
func (e *Emitter) Inspect(s scaffold.Scaffold) (Status, error) {
	dest := e.DestinationPath(s)

	exists, err := e.fs.FileExists(dest)
	if err != nil {
		return Status{}, err
	}

	st := Status{
		Scaffold:    s,
		Destination: dest,
		Exists:      exists,
	}
	if !exists {
		return st, nil
	}

	matches, err := e.fs.ContentMatches(dest, s.Bytes())
	if err != nil {
		return Status{}, err
	}
	st.Matches = matches

	return st, nil
}

// Remove deletes a scaffold's destination file if present.
func (e *Emitter) Remove(s scaffold.Scaffold) error {
	return e.fs.RemoveFile(e.DestinationPath(s))
}
