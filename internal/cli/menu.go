package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dealstack/testscaffold/internal/scaffold"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu provides an interactive menu interface
type Menu struct {
	ctx *Context
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *Context) *Menu {
	return &Menu{ctx: ctx}
}

// Show displays the main menu and handles user input
func (m *Menu) Show() error {
	for {
		m.displayMenu()

		choice, err := m.ctx.UI.PromptInput("Enter your choice", "")
		if err != nil {
			return err
		}

		choice = strings.ToUpper(strings.TrimSpace(choice))

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(fmt.Sprintf("%v", err))
			m.ctx.UI.Print("")
			m.ctx.UI.Info("Press Enter to continue...")
			fmt.Scanln()
		}
	}
}

// displayMenu displays the main menu
func (m *Menu) displayMenu() {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	cyan.Println(strings.Repeat("=", 70))
	cyan.Println("  testscaffold - Front-End Test Scaffold Emitter")
	cyan.Println(strings.Repeat("=", 70))
	fmt.Println()

	bold.Println("  [1] Emit all scaffolds")
	bold.Println("  [2] Emit a single scaffold")
	bold.Println("  [3] Show status")
	bold.Println("  [4] List scaffolds")
	bold.Println("  [5] Clean emitted files")
	bold.Println("  [Q] Quit")
	fmt.Println()
}

// handleChoice dispatches a menu selection
func (m *Menu) handleChoice(choice string) error {
	opts := OptionsFromConfig(m.ctx.Config)

	switch choice {
	case "1":
		return RunEmit(m.ctx, scaffold.All(), opts)
	case "2":
		return m.emitSingle()
	case "3":
		return RunStatus(m.ctx, opts)
	case "4":
		RunList(m.ctx)
		return nil
	case "5":
		return m.cleanWithConfirm()
	case "Q", "QUIT", "EXIT":
		return ErrExit
	case "":
		return nil
	default:
		return fmt.Errorf("unknown choice: %s", choice)
	}
}

// emitSingle prompts for a scaffold and emits it
func (m *Menu) emitSingle() error {
	names := scaffold.Names()
	idx, err := m.ctx.UI.PromptSelect("Select a scaffold", names)
	if err != nil {
		return err
	}

	scaffolds, err := ResolveScaffolds(names[idx])
	if err != nil {
		return err
	}

	return RunEmit(m.ctx, scaffolds, OptionsFromConfig(m.ctx.Config))
}

// cleanWithConfirm asks before removing emitted files
func (m *Menu) cleanWithConfirm() error {
	m.ctx.UI.Warning("This will delete every emitted scaffold file")

	confirm, err := m.ctx.UI.PromptYesNo("Are you sure?", false)
	if err != nil {
		return err
	}
	if !confirm {
		m.ctx.UI.Info("Clean cancelled")
		return nil
	}

	return RunClean(m.ctx, OptionsFromConfig(m.ctx.Config))
}
