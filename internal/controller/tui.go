package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "covmap.dev/pkg/covmap/internal/model"
)

// Lines taken by the pager header and footer.
const (
	pagerHeaderHeight = 2
	pagerFooterHeight = 2
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	addedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	hunkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))
)

// TUI implements UI using Bubble Tea. Output that fits the terminal is
// printed directly; longer output opens a scrollable pager.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// DisplayBuildResult reports where an attribution was written.
func (t *TUI) DisplayBuildResult(ctx context.Context, source m.Path, destination m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output(), "%s %s %s\n",
		string(source), mutedStyle.Render("->"), titleStyle.Render(string(destination)))
}

// DisplayAttribution shows attribution tables in the pager.
func (t *TUI) DisplayAttribution(ctx context.Context, reports []m.AttributionReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := fmt.Sprintf("covmap - %d attribution report(s)", len(reports))

	return t.page(ctx, title, renderReports(reports))
}

// DisplayDiff shows a colored unified diff in the pager.
func (t *TUI) DisplayDiff(ctx context.Context, oldPath, newPath m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		_, err := fmt.Fprintf(t.output(), "No attribution differences between %s and %s\n", oldPath, newPath)
		return err
	}

	title := fmt.Sprintf("covmap - %s vs %s", oldPath, newPath)

	return t.page(ctx, title, colorizeDiff(diff))
}

func (t *TUI) output() io.Writer {
	return t.cmd.OutOrStdout()
}

func (t *TUI) page(ctx context.Context, title, content string) error {
	output := t.output()

	height := terminalHeight(output)
	if height == 0 || lineCount(content)+pagerHeaderHeight+pagerFooterHeight <= height {
		_, err := fmt.Fprint(output, content)
		return err
	}

	program := tea.NewProgram(
		newPagerModel(title, content),
		tea.WithContext(ctx),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func terminalHeight(output io.Writer) int {
	f, ok := output.(*os.File)
	if !ok || !IsTTY(f) {
		return 0
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return height
}

func lineCount(content string) int {
	return strings.Count(strings.TrimRight(content, "\n"), "\n") + 1
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// pagerModel is the Bubble Tea model of the scrollable pager.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{
		title:   title,
		content: content,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - pagerHeaderHeight - pagerFooterHeight
		if height < 1 {
			height = 1
		}

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.YPosition = pagerHeaderHeight
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"%3.f%%  j/k scroll  g/G top/bottom  q quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}
