package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dealstack/testscaffold/internal/cli"
)

var (
	cleanRoot  string
	cleanForce bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove emitted scaffold files",
	Long: `Delete every emitted destination file and clear the emit markers.

Destinations that were never emitted are skipped. The project tree itself is
left in place; only the scaffold files are removed.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanRoot, "root", "", "Project root the destinations resolve against")
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext()
	if err != nil {
		return fmt.Errorf("failed to initialize context: %w", err)
	}

	opts := cli.OptionsFromConfig(ctx.Config)
	if cleanRoot != "" {
		opts.Root = cleanRoot
	}

	if !cleanForce {
		ctx.UI.Warning("This will delete every emitted scaffold file")

		confirm, err := ctx.UI.PromptYesNo("Are you sure?", false)
		if err != nil {
			return err
		}
		if !confirm {
			ctx.UI.Info("Clean cancelled")
			return nil
		}
	}

	if err := cli.RunClean(ctx, opts); err != nil {
		return err
	}

	ctx.UI.Success("Clean complete")
	return nil
}
