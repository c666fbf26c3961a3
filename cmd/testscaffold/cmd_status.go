package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dealstack/testscaffold/internal/cli"
)

var statusRoot string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show scaffold status",
	Long: `Display, for every scaffold, whether its destination file exists and
whether the contents still match the embedded payload.`,
	RunE: showStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusRoot, "root", "", "Project root the destinations resolve against")
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext()
	if err != nil {
		return fmt.Errorf("failed to initialize context: %w", err)
	}

	opts := cli.OptionsFromConfig(ctx.Config)
	if statusRoot != "" {
		opts.Root = statusRoot
	}

	return cli.RunStatus(ctx, opts)
}
