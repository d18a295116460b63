package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	flexbridge "github.com/onebit/flexbridge"
	"github.com/onebit/flexbridge/bridge"
	"github.com/onebit/flexbridge/scene"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	rectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateEditStyle
)

type interactiveModel struct {
	err          error
	session      *bridge.Session
	closeBackend func()
	doc          *scene.Document
	tree         *scene.Tree
	sceneFile    string
	wasmFile     string
	status       string
	order        []string
	depths       map[string]int
	input        textinput.Model
	selected     int
	width        int
	height       int
	state        modelState
}

func newInteractiveModel(sceneFile, wasmFile string) *interactiveModel {
	return &interactiveModel{
		sceneFile: sceneFile,
		wasmFile:  wasmFile,
		state:     stateBrowse,
		width:     80,
		height:    24,
	}
}

type loadedMsg struct {
	err          error
	session      *bridge.Session
	closeBackend func()
	doc          *scene.Document
	tree         *scene.Tree
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadScene
}

func (m *interactiveModel) loadScene() tea.Msg {
	ctx := context.Background()

	doc, err := scene.ParseFile(m.sceneFile)
	if err != nil {
		return loadedMsg{err: err}
	}

	backend, closeBackend, err := newBackend(ctx, m.wasmFile)
	if err != nil {
		return loadedMsg{err: err}
	}

	session, err := bridge.NewSession(backend)
	if err != nil {
		closeBackend()
		return loadedMsg{err: err}
	}

	tree, err := scene.Build(session, doc)
	if err != nil {
		session.Close()
		closeBackend()
		return loadedMsg{err: err}
	}

	return loadedMsg{session: session, closeBackend: closeBackend, doc: doc, tree: tree}
}

func (m *interactiveModel) relayout() {
	if m.tree == nil {
		return
	}
	// Reserve rows for the title and help lines.
	m.session.CalculateLayout(m.tree.Root, float32(m.width), float32(m.height-4), flexbridge.DirectionLTR)
}

func (m *interactiveModel) teardown() {
	if m.session != nil {
		m.session.Close()
	}
	if m.closeBackend != nil {
		m.closeBackend()
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.teardown()
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				m.teardown()
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.order)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.order) == 0 {
					break
				}
				ti := textinput.New()
				ti.Placeholder = "width 50%"
				ti.Prompt = "set: "
				ti.Width = 40
				ti.Focus()
				m.input = ti
				m.state = stateEditStyle
				m.status = ""

			case stateEditStyle:
				m.applyEdit(m.input.Value())
				m.state = stateBrowse
			}

		case "esc":
			if m.state == stateEditStyle {
				m.state = stateBrowse
				m.status = ""
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.session = msg.session
		m.closeBackend = msg.closeBackend
		m.doc = msg.doc
		m.tree = msg.tree

		m.order = m.order[:0]
		m.depths = make(map[string]int, len(m.doc.Nodes))
		for _, n := range m.doc.Nodes {
			m.order = append(m.order, n.ID)
			if n.Parent == "" {
				m.depths[n.ID] = 0
			} else {
				m.depths[n.ID] = m.depths[n.Parent] + 1
			}
		}
		m.relayout()
	}

	if m.state == stateEditStyle {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applyEdit parses "property value" and applies it to the selected node.
func (m *interactiveModel) applyEdit(raw string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return
	}
	id := m.order[m.selected]
	h, ok := m.tree.Handle(id)
	if !ok {
		return
	}

	prop := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	if err := applyStyleEdit(m.session, h, prop, arg); err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}
	m.relayout()
	m.status = statusStyle.Render(fmt.Sprintf("%s %s applied to %s", prop, arg, id))
}

func applyStyleEdit(s *bridge.Session, h bridge.Handle, prop, arg string) error {
	switch prop {
	case "flex-grow", "flex-shrink", "flex":
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return fmt.Errorf("bad number %q", arg)
		}
		switch prop {
		case "flex-grow":
			s.SetFlexGrow(h, float32(f))
		case "flex-shrink":
			s.SetFlexShrink(h, float32(f))
		default:
			s.SetFlex(h, float32(f))
		}
		return nil

	case "direction":
		dirs := map[string]flexbridge.FlexDirection{
			"column": flexbridge.FlexDirectionColumn, "row": flexbridge.FlexDirectionRow,
			"column-reverse": flexbridge.FlexDirectionColumnReverse, "row-reverse": flexbridge.FlexDirectionRowReverse,
		}
		d, ok := dirs[arg]
		if !ok {
			return fmt.Errorf("unknown direction %q", arg)
		}
		s.SetFlexDirection(h, d)
		return nil
	}

	v, err := parseEditValue(arg)
	if err != nil {
		return err
	}
	switch prop {
	case "width":
		s.SetWidth(h, v)
	case "height":
		s.SetHeight(h, v)
	case "min-width":
		s.SetMinWidth(h, v)
	case "min-height":
		s.SetMinHeight(h, v)
	case "max-width":
		s.SetMaxWidth(h, v)
	case "max-height":
		s.SetMaxHeight(h, v)
	case "basis":
		s.SetFlexBasis(h, v)
	case "margin":
		s.SetMargin(h, flexbridge.EdgeAll, v)
	case "padding":
		s.SetPadding(h, flexbridge.EdgeAll, v)
	default:
		return fmt.Errorf("unknown property %q", prop)
	}
	return nil
}

func parseEditValue(arg string) (flexbridge.Value, error) {
	if arg == "auto" {
		return flexbridge.Auto(), nil
	}
	if pct, ok := strings.CutSuffix(arg, "%"); ok {
		f, err := strconv.ParseFloat(pct, 32)
		if err != nil {
			return flexbridge.Value{}, fmt.Errorf("bad percent %q", arg)
		}
		return flexbridge.Percent(float32(f)), nil
	}
	f, err := strconv.ParseFloat(arg, 32)
	if err != nil {
		return flexbridge.Value{}, fmt.Errorf("bad value %q", arg)
	}
	return flexbridge.Points(float32(f)), nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.tree == nil {
		return "Loading scene..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Flex Bridge"))
	b.WriteString(" ")
	b.WriteString(m.sceneFile)
	b.WriteString("\n\n")

	for i, id := range m.order {
		h, ok := m.tree.Handle(id)
		if !ok {
			continue
		}
		r := m.session.Layout(h)
		line := fmt.Sprintf("%s%s %s",
			strings.Repeat("  ", m.depths[id]),
			nodeStyle.Render(id),
			rectStyle.Render(fmt.Sprintf("%g,%g %gx%g", r.Left, r.Top, r.Width, r.Height)))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> "))
			b.WriteString(line)
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case stateEditStyle:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	default:
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit style • q quit"))
	}

	return b.String()
}

func runInteractive(sceneFile, wasmFile string) error {
	p := tea.NewProgram(newInteractiveModel(sceneFile, wasmFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
