package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dealstack/testscaffold/internal/cli"
)

var (
	emitRoot         string
	emitAtomic       bool
	emitCreateDirs   bool
	emitSkipExisting bool
	emitDryRun       bool
)

var emitCmd = &cobra.Command{
	Use:   "emit [scaffold|all]",
	Short: "Write scaffolds to their destinations",
	Long: `Write one scaffold, or every scaffold, to its fixed destination path.

The destination is created if absent and truncated if present; the parent
directory must already exist unless --create-dirs is given. On success the
command prints the destination path and the payload length in characters.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringVar(&emitRoot, "root", "", "Project root the destinations resolve against")
	emitCmd.Flags().BoolVar(&emitAtomic, "atomic", false, "Write via temp file and rename")
	emitCmd.Flags().BoolVar(&emitCreateDirs, "create-dirs", false, "Create missing parent directories")
	emitCmd.Flags().BoolVar(&emitSkipExisting, "skip-existing", false, "Leave existing destination files untouched")
	emitCmd.Flags().BoolVar(&emitDryRun, "dry-run", false, "Report what would be written without writing")

	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContextWithOptions(true)
	if err != nil {
		return fmt.Errorf("failed to initialize context: %w", err)
	}

	scaffolds, err := cli.ResolveScaffolds(args[0])
	if err != nil {
		return err
	}

	opts := cli.OptionsFromConfig(ctx.Config)
	if emitRoot != "" {
		opts.Root = emitRoot
	}
	if emitAtomic {
		opts.Atomic = true
	}
	if emitCreateDirs {
		opts.CreateDirs = true
	}
	opts.SkipExisting = emitSkipExisting
	opts.DryRun = emitDryRun

	return cli.RunEmit(ctx, scaffolds, opts)
}
