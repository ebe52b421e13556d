package commands

import (
	"fmt"
	"os"

	"github.com/reeflective/console"
	"github.com/spf13/cobra"
)

// shellCmd launches an interactive REPL built on reeflective/console, the
// menu-driven shell library the teacher's go.mod carries but never imports.
// Every gobfdctl subcommand is exposed unchanged inside the shell menu, so
// "session list", "monitor", etc. behave the same whether typed inside the
// shell or passed as a one-shot gobfdctl invocation.
func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive gobfdctl shell",
		Long:  "Launches a reeflective/console REPL exposing the gobfdctl command tree. Tab-completes subcommands, 'exit' quits.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runShell()
		},
	}
}

// runShell wires the cobra command tree into a reeflective/console menu and
// blocks until the user exits the REPL.
func runShell() error {
	app := console.New("gobfdctl")

	menu := app.ActiveMenu()
	menu.SetCommands(func() *cobra.Command {
		return shellRootCmd()
	})

	if err := app.Start(); err != nil {
		return fmt.Errorf("start interactive shell: %w", err)
	}

	return nil
}

// shellRootCmd rebuilds the command tree for in-shell use: the same
// subcommands as the standalone CLI, minus "shell" itself (re-entering the
// REPL from within the REPL), plus an "exit" command since reeflective/console
// owns the read loop and doesn't interpret bare "exit"/"quit" input itself.
func shellRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gobfdctl",
		Short: "CLI client for the GoBFD daemon",
	}

	root.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:50051",
		"gobfd daemon address (host:port)")
	root.PersistentFlags().StringVar(&outputFormat, "format", "table",
		"output format: table, json")
	root.PersistentPreRunE = rootCmd.PersistentPreRunE

	root.AddCommand(sessionCmd())
	root.AddCommand(monitorCmd())
	root.AddCommand(versionCmd())
	root.AddCommand(&cobra.Command{
		Use:   "exit",
		Short: "Leave the interactive shell",
		Run: func(*cobra.Command, []string) {
			os.Exit(0)
		},
	})

	return root
}
