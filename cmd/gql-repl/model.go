package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arbograph/gql"
)

var dialectCycle = []gql.Dialect{gql.Default, gql.V1_9, gql.V2_0}

type model struct {
	input    textinput.Model
	result   viewport.Model
	dialect  int
	width    int
	height   int
	tree     string
	parseErr error
	ready    bool
}

func newModel() model {
	ti := textinput.New()
	ti.Placeholder = "MATCH (n:Person) RETURN n"
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 80

	return model{input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 4
		if !m.ready {
			m.result = viewport.New(m.width, m.height-headerHeight)
			m.ready = true
		} else {
			m.result.Width, m.result.Height = m.width, m.height-headerHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+d":
			m.dialect = (m.dialect + 1) % len(dialectCycle)
			m.reparse()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.reparse()

	m.result, cmd = m.result.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) reparse() {
	query := m.input.Value()
	if query == "" {
		m.tree, m.parseErr = "", nil
		m.result.SetContent("")
		return
	}

	tree, err := gql.Parse(query, dialectCycle[m.dialect])
	if err != nil {
		m.parseErr = err
		m.result.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.parseErr = nil
	m.tree = renderTree(tree)
	m.result.SetContent(m.tree)
}

func (m model) View() string {
	if !m.ready {
		return "initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("gql-repl"))
	b.WriteString("  ")
	b.WriteString(dialectStyle.Render(fmt.Sprintf("dialect: %s", dialectCycle[m.dialect])))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.result.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(keyStyle.Render("ctrl+d") + " cycle dialect    " + keyStyle.Render("esc") + " quit"))
	return b.String()
}
