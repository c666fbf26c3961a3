package cli

import (
	"fmt"

	"github.com/dealstack/testscaffold/internal/emitter"
	"github.com/dealstack/testscaffold/internal/scaffold"
)

// RunEmit emits the selected scaffolds and records an emit marker for each
// one written. A filesystem fault stops the run and propagates unchanged.
func RunEmit(ctx *Context, scaffolds []scaffold.Scaffold, opts emitter.Options) error {
	e := ctx.NewEmitter(opts)

	for _, s := range scaffolds {
		if err := e.Emit(s); err != nil {
			return fmt.Errorf("emit %s: %w", s.Name, err)
		}

		if opts.DryRun {
			continue
		}
		if err := ctx.Markers.Create(s.Name); err != nil {
			// The file is on disk; a marker failure should not fail the emit.
			ctx.UI.Warningf("Failed to record emit marker for %s: %v", s.Name, err)
		}
	}

	return nil
}

// RunList prints the catalog
func RunList(ctx *Context) {
	ctx.UI.Header("Available Scaffolds")

	for _, s := range scaffold.All() {
		ctx.UI.Printf("  %-24s %s", s.Name, s.Description)
		ctx.UI.Printf("  %-24s -> %s (%d characters)", "", s.Destination, s.CharCount())
		ctx.UI.Print("")
	}
}

// RunStatus reports, for every scaffold: whether the destination file exists,
// whether its contents still match the embedded payload, and whether an emit
// marker is recorded.
func RunStatus(ctx *Context, opts emitter.Options) error {
	ctx.UI.Header("Scaffold Status")

	e := ctx.NewEmitter(opts)
	emitted := 0

	for _, s := range scaffold.All() {
		st, err := e.Inspect(s)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", s.Name, err)
		}

		marked, err := ctx.Markers.Exists(s.Name)
		if err != nil {
			return fmt.Errorf("check marker for %s: %w", s.Name, err)
		}

		switch {
		case st.Exists && st.Matches:
			ctx.UI.Successf("%s: up to date at %s", s.Name, st.Destination)
			emitted++
		case st.Exists:
			ctx.UI.Warningf("%s: %s exists but differs from the embedded payload", s.Name, st.Destination)
		case marked:
			ctx.UI.Warningf("%s: emit recorded but %s is missing", s.Name, st.Destination)
		default:
			ctx.UI.Infof("%s: not emitted (%s)", s.Name, st.Destination)
		}
	}

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Infof("Up to date: %d/%d scaffolds", emitted, len(scaffold.All()))

	return nil
}

// RunClean removes emitted destination files and their markers. The caller
// handles confirmation.
func RunClean(ctx *Context, opts emitter.Options) error {
	e := ctx.NewEmitter(opts)

	for _, s := range scaffold.All() {
		dest := e.DestinationPath(s)

		if err := e.Remove(s); err != nil {
			return fmt.Errorf("remove %s: %w", s.Name, err)
		}
		if err := ctx.Markers.Remove(s.Name); err != nil {
			return fmt.Errorf("remove marker for %s: %w", s.Name, err)
		}

		ctx.UI.Successf("Removed %s", dest)
	}

	return nil
}
