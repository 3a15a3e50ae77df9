package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/duckdialect/duckspec/internal/config"
)

func init() {
	rootCmd.AddCommand(formCmd)
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Interactively pick a folder and save the JSON files",
	Long: `Open a single-field form asking for a destination folder, then write
keywords.json and functions.json under it. The folder is created if it
does not exist.`,
	RunE: runForm,
}

var (
	formTitleStyle   = lipgloss.NewStyle().Bold(true)
	formHelpStyle    = lipgloss.NewStyle().Faint(true)
	formSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	formErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// savedMsg carries the pipeline result back into the form model.
type savedMsg struct {
	resp *SavedResponse
	code int
	err  error
}

type formModel struct {
	ctx      context.Context
	cfg      *config.Config
	input    textinput.Model
	saving   bool
	saved    *SavedResponse
	err      error
	code     int
	canceled bool
}

func newFormModel(ctx context.Context, cfg *config.Config) formModel {
	ti := textinput.New()
	ti.Placeholder = "duckdb"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40
	return formModel{ctx: ctx, cfg: cfg, input: ti}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.saving {
				return m, nil
			}
			folder := strings.TrimSpace(m.input.Value())
			if folder == "" {
				return m, nil
			}
			m.saving = true
			ctx, cfg := m.ctx, m.cfg
			return m, func() tea.Msg {
				resp, code, err := saveToFolder(ctx, cfg, folder)
				return savedMsg{resp: resp, code: code, err: err}
			}
		}
	case savedMsg:
		m.saving = false
		m.saved = msg.resp
		m.code = msg.code
		m.err = msg.err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("DuckDB dialect export"))
	b.WriteString("\n\n")
	b.WriteString("Folder: ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.saving:
		b.WriteString("Saving...")
	case m.err != nil:
		b.WriteString(formErrorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	case m.saved != nil:
		b.WriteString(formSuccessStyle.Render(fmt.Sprintf("Saved JSON files to %s!", filepath.Dir(m.saved.KeywordsPath))))
	default:
		b.WriteString(formHelpStyle.Render("enter to save, esc to quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// saveToFolder writes keywords.json and functions.json under folder,
// creating it if needed.
func saveToFolder(ctx context.Context, cfg *config.Config, folder string) (*SavedResponse, int, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, ExitError, fmt.Errorf("creating %s: %w", folder, err)
	}
	return buildAndWrite(ctx, cfg,
		filepath.Join(folder, cfg.KeywordsFile),
		filepath.Join(folder, cfg.FunctionsFile))
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	p := tea.NewProgram(newFormModel(cmd.Context(), cfg))
	final, err := p.Run()
	if err != nil {
		exitWithError(ExitError, "running form: %v", err)
	}

	m := final.(formModel)
	switch {
	case m.err != nil:
		exitWithError(m.code, "%v", m.err)
	case m.saved != nil:
		printSaved(m.saved)
	}
	return nil
}
