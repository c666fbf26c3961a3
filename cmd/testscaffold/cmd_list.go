package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dealstack/testscaffold/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scaffolds",
	Long:  `Display every scaffold in the catalog with its destination path and size.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext()
	if err != nil {
		return fmt.Errorf("failed to initialize context: %w", err)
	}

	cli.RunList(ctx)
	return nil
}
