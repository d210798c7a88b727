package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daytally/internal/update"
)

func main() {
	if len(os.Args) > 1 {
		if handled, code := runCLI(os.Args[1:], os.Stdout, os.Stderr); handled {
			os.Exit(code)
		}
	}
	if err := runTUI(); err != nil {
		fmt.Fprintf(os.Stderr, "daytally failed: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	sess, err := openSession(cfg, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	program := tea.NewProgram(
		update.NewModel(sess.tracker, cfg, sess.logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err = program.Run()
	return err
}
