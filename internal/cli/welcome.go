package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/recent"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/tips"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// welcomeCommand creates the welcome command, the interactive entry screen.
func (c *CLI) welcomeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "welcome",
		Short: "Interactive start screen with recent documents",
		Long: `Interactive start screen with recent documents.

Shows the documents you analyzed recently plus the dialogue tip of the day.
Selecting a document rebuilds its word cloud.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWelcome(cmd)
		},
	}
}

func (c *CLI) runWelcome(cmd *cobra.Command) error {
	list, err := recent.NewList("", 0)
	if err != nil {
		return err
	}
	entries, err := list.Entries()
	if err != nil {
		return err
	}

	tip, _ := tips.Builtin().OfTheDay(time.Now())

	model := NewWelcomeModel(entries, tip)
	prog := tea.NewProgram(model)
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("welcome screen: %w", err)
	}

	m, ok := final.(WelcomeModel)
	if !ok || m.Selected == nil {
		return nil
	}

	opts := pipeline.Options{
		Document: m.Selected.Path,
		Formats:  []string{pipeline.FormatSVG},
	}
	applyPrefs(&opts, c.loadPrefs())
	return c.runCloud(cmd.Context(), opts, "", false)
}

// =============================================================================
// WelcomeModel - Recent document selection
// =============================================================================

// WelcomeModel is the bubbletea model for the welcome screen.
type WelcomeModel struct {
	Entries  []recent.Entry
	Tip      tips.Tip
	Cursor   int
	Selected *recent.Entry
	Height   int
	Offset   int
}

// NewWelcomeModel creates the welcome screen model.
func NewWelcomeModel(entries []recent.Entry, tip tips.Tip) WelcomeModel {
	return WelcomeModel{
		Entries: entries,
		Tip:     tip,
		Height:  10,
	}
}

func (m WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Entries) > 0 {
				entry := m.Entries[m.Cursor]
				m.Selected = &entry
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("QuillPilot"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ analyze  q quit"))
	b.WriteString("\n\n")

	if m.Tip.Text != "" {
		b.WriteString(StyleHighlight.Render("Tip of the day"))
		b.WriteString(listDimStyle.Render(" (" + m.Tip.Category + ")"))
		b.WriteString("\n")
		b.WriteString("  " + listNormalStyle.Render(m.Tip.Text))
		b.WriteString("\n\n")
	}

	if len(m.Entries) == 0 {
		b.WriteString(listDimStyle.Render("No recent documents. Run 'quillpilot cloud <file>' to get started."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleHighlight.Render("Recent documents"))
	b.WriteString("\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		title := e.Title
		if title == "" {
			title = e.Path
		}
		line := fmt.Sprintf("%s%-30s  %s", cursor, title,
			listDimStyle.Render(formatRelativeTime(e.OpenedAt)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// formatRelativeTime renders a timestamp as a short "ago" string.
func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
