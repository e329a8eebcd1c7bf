package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	clscodec "github.com/geofmt/cls-codec"
	"github.com/geofmt/cls-codec/cls"
	"github.com/geofmt/cls-codec/value"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateBrowse browserState = iota
	stateDetail
)

type browserModel struct {
	err       error
	doc       *cls.Document
	recs      []*value.Value
	rows      []string
	visible   []int
	path      string
	opts      cls.Options
	vopts     cls.ValueOptions
	filter    textinput.Model
	detail    viewport.Model
	selected  int
	height    int
	state     browserState
	filtering bool
	ready     bool
}

func newBrowserModel(path string, opts cls.Options, vopts cls.ValueOptions) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "kind or text"
	ti.Prompt = "/ "
	ti.Width = 40
	return &browserModel{
		path:   path,
		opts:   opts,
		vopts:  vopts,
		filter: ti,
		state:  stateBrowse,
	}
}

type loadedMsg struct {
	err error
	doc *cls.Document
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *browserModel) loadFile() tea.Msg {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return loadedMsg{err: err}
	}
	doc, err := clscodec.Parse(data, m.opts)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{doc: doc}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if !m.ready {
			m.detail = viewport.New(msg.Width, msg.Height-5)
			m.ready = true
		} else {
			m.detail.Width = msg.Width
			m.detail.Height = msg.Height - 5
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.doc = msg.doc
		m.recs = msg.doc.ToValue(m.vopts).Get("records").Items()
		m.rows = make([]string, len(msg.doc.Records))
		for i := range msg.doc.Records {
			m.rows[i] = rowLabel(msg.doc, i)
		}
		m.applyFilter()

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				m.filtering = false
				m.filter.Blur()
			case "esc":
				m.filtering = false
				m.filter.SetValue("")
				m.filter.Blur()
				m.applyFilter()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateBrowse && len(m.visible) > 0 {
				m.openDetail()
			}

		case "esc":
			switch {
			case m.state == stateDetail:
				m.state = stateBrowse
			case m.filter.Value() != "":
				m.filter.SetValue("")
				m.applyFilter()
			}

		case "/":
			if m.state == stateBrowse {
				m.filtering = true
				m.filter.Focus()
			}
		}

		if m.state == stateDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// applyFilter recomputes the visible rows from the filter text and keeps
// the selection in range.
func (m *browserModel) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, row := range m.rows {
		if needle == "" || strings.Contains(strings.ToLower(row), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *browserModel) openDetail() {
	idx := m.visible[m.selected]
	text, err := yaml.Marshal(m.recs[idx])
	if err != nil {
		m.detail.SetContent(errorStyle.Render(fmt.Sprintf("render record: %v", err)))
	} else {
		m.detail.SetContent(string(text))
	}
	m.detail.GotoTop()
	m.state = stateDetail
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.doc == nil {
		return "Loading file..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("CLS Browser"))
	b.WriteString(" ")
	b.WriteString(m.path)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		if m.filtering || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}

		start, end := m.window()
		for row := start; row < end; row++ {
			idx := m.visible[row]
			if row == m.selected {
				b.WriteString(selectedStyle.Render(fmt.Sprintf("> #%-4d %s", idx, m.rows[idx])))
			} else {
				// The first 12 characters of a row are the padded kind name.
				b.WriteString(fmt.Sprintf("  #%-4d ", idx))
				b.WriteString(kindStyle.Render(m.rows[idx][:12]))
				b.WriteString(m.rows[idx][12:])
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("  no records match"))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(fieldStyle.Render(fmt.Sprintf("%d of %d records", len(m.visible), len(m.rows))))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))

	case stateDetail:
		idx := m.visible[m.selected]
		b.WriteString(fmt.Sprintf("Record %d (%s)\n\n", idx, kindStyle.Render(m.doc.Records[idx].KindName())))
		b.WriteString(m.detail.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

// window returns the half-open range of visible rows that fits the
// terminal, centered on the selection.
func (m *browserModel) window() (int, int) {
	capacity := m.height - 7
	if capacity < 1 {
		capacity = len(m.visible)
	}
	if capacity >= len(m.visible) {
		return 0, len(m.visible)
	}
	start := m.selected - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > len(m.visible) {
		start = len(m.visible) - capacity
	}
	return start, start + capacity
}

// rowLabel renders one plain-text list row. Styling happens at view time
// so the filter matches what the user sees.
func rowLabel(doc *cls.Document, i int) string {
	rec := &doc.Records[i]
	switch rec.Kind {
	case cls.KindStation:
		s := rec.Station
		return fmt.Sprintf("%-12s %-16s (%g, %g, %g)", "station", s.Name, s.X, s.Y, s.Z)
	case cls.KindObservation:
		o := rec.Observation
		return fmt.Sprintf("%-12s %s to %s, %g m", "observation",
			stationRef(doc, o.From), stationRef(doc, o.To), o.Distance)
	case cls.KindAnnotation:
		text := rec.Annotation.Text
		if r := []rune(text); len(r) > 40 {
			text = string(r[:40]) + "..."
		}
		return fmt.Sprintf("%-12s %q", "annotation", text)
	case cls.KindFix:
		f := rec.Fix
		return fmt.Sprintf("%-12s (%g, %g, %g) %s", "fix", f.X, f.Y, f.Z, f.Quality)
	case cls.KindTraverse:
		t := rec.Traverse
		shape := "open"
		if t.Closed {
			shape = "closed"
		}
		return fmt.Sprintf("%-12s %d stations, %s", "traverse", len(t.Stations), shape)
	default:
		return fmt.Sprintf("%-12s kind 0x%02X", "unknown", rec.Kind)
	}
}

// stationRef names a referenced station, falling back to its record index.
func stationRef(doc *cls.Document, i uint32) string {
	if s := doc.StationAt(i); s != nil && s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("#%d", i)
}

func runInteractive(path string, opts cls.Options, vopts cls.ValueOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive browser requires a terminal (stdout is not a tty)")
	}
	p := tea.NewProgram(newBrowserModel(path, opts, vopts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
