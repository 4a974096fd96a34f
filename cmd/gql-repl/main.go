// Command gql-repl is an interactive terminal front end for gql.Parse: type
// a query, see its Abstract Query Tree rendered as an indented outline as
// you type, toggle dialect with ctrl+d.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

func main() {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		opts = append(opts, tea.WithInput(nil))
	}

	p := tea.NewProgram(newModel(), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
