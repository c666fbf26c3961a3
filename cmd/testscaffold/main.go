package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dealstack/testscaffold/internal/cli"
	"github.com/dealstack/testscaffold/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "testscaffold",
	Short: "Front-end test scaffold emitter",
	Long: `testscaffold emits embedded front-end test suites into a project tree.

Each scaffold is a fixed payload compiled into the binary, paired with a fixed
destination path relative to the project root. Emitting is idempotent: the
destination is truncated and rewritten with the same content on every run.

Run without arguments to launch the interactive menu.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext()
	if err != nil {
		return fmt.Errorf("failed to initialize context: %w", err)
	}

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
