// Package tui provides the interactive setup form shown when the binary
// runs without arguments. It collects the conversion options with a small
// Bubbletea form; the CLI turns the result into a conversion run.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/exporta-cli/internal/i18n"
)

// Result holds the options collected by the setup form.
type Result struct {
	InputDir            string
	OutputPath          string
	Recursive           bool
	IncludeCustomFields bool
	IncludeRawItem      bool
	Beautify            bool
	Language            string
}

// field indices for focus handling. Text fields come first, then the
// toggles, then the language picker.
const (
	fieldInput = iota
	fieldOutput
	fieldRecursive
	fieldCustomFields
	fieldRawItem
	fieldBeautify
	fieldLanguage
	fieldCount
)

var languages = []string{"en", "pt-BR"}

// Model is the setup form. It implements tea.Model.
type Model struct {
	inputDir   textinput.Model
	outputPath textinput.Model

	recursive    bool
	customFields bool
	rawItem      bool
	beautify     bool
	langIndex    int

	focus     int
	confirmed bool
	quitting  bool

	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	focusedStyle  lipgloss.Style
	helpStyle     lipgloss.Style
	selectedStyle lipgloss.Style
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// NewSetup creates the setup form pre-filled with defaults.
func NewSetup(defaults Result) *Model {
	inputDir := textinput.New()
	inputDir.Placeholder = "path/to/xml-exports"
	inputDir.CharLimit = 512
	inputDir.SetValue(defaults.InputDir)
	inputDir.Focus()

	outputPath := textinput.New()
	outputPath.Placeholder = "issues.jsonl"
	outputPath.CharLimit = 512
	outputPath.SetValue(defaults.OutputPath)

	langIndex := 0
	for i, lang := range languages {
		if lang == i18n.NormalizeLanguage(defaults.Language) {
			langIndex = i
		}
	}

	return &Model{
		inputDir:     inputDir,
		outputPath:   outputPath,
		recursive:    defaults.Recursive,
		customFields: defaults.IncludeCustomFields,
		rawItem:      defaults.IncludeRawItem,
		beautify:     defaults.Beautify,
		langIndex:    langIndex,

		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		labelStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		focusedStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		helpStyle:     lipgloss.NewStyle().Faint(true).MarginTop(1),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil

	case " ":
		if m.toggle() {
			return m, nil
		}

	case "left", "right":
		if m.focus == fieldLanguage {
			m.langIndex = (m.langIndex + 1) % len(languages)
			return m, nil
		}

	case "enter":
		if m.focus < fieldCount-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		if strings.TrimSpace(m.inputDir.Value()) == "" {
			m.setFocus(fieldInput)
			return m, nil
		}
		m.confirmed = true
		return m, tea.Quit
	}

	return m, m.updateInputs(msg)
}

// toggle flips the focused boolean field. Returns false when focus is
// not on a toggle so the key falls through to the text inputs.
func (m *Model) toggle() bool {
	switch m.focus {
	case fieldRecursive:
		m.recursive = !m.recursive
	case fieldCustomFields:
		m.customFields = !m.customFields
	case fieldRawItem:
		m.rawItem = !m.rawItem
	case fieldBeautify:
		m.beautify = !m.beautify
	default:
		return false
	}
	return true
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.inputDir.Blur()
	m.outputPath.Blur()
	switch focus {
	case fieldInput:
		m.inputDir.Focus()
	case fieldOutput:
		m.outputPath.Focus()
	}
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.inputDir, cmd = m.inputDir.Update(msg)
	cmds = append(cmds, cmd)
	m.outputPath, cmd = m.outputPath.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.confirmed {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.titleStyle.Render(i18n.T("setup.title")))
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel(fieldInput, "Input folder"))
	b.WriteString("  " + m.inputDir.View() + "\n")
	b.WriteString(m.renderLabel(fieldOutput, "Output file"))
	b.WriteString("  " + m.outputPath.View() + "\n\n")

	b.WriteString(m.renderToggle(fieldRecursive, "Scan subfolders", m.recursive))
	b.WriteString(m.renderToggle(fieldCustomFields, "Include custom fields", m.customFields))
	b.WriteString(m.renderToggle(fieldRawItem, "Keep raw item XML", m.rawItem))
	b.WriteString(m.renderToggle(fieldBeautify, "Write indented copy", m.beautify))

	b.WriteString(m.renderLabel(fieldLanguage, "Language"))
	b.WriteString("  " + m.renderLanguage() + "\n")

	b.WriteString(m.helpStyle.Render(i18n.T("setup.help")))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderLabel(field int, label string) string {
	if m.focus == field {
		return m.focusedStyle.Render("> "+label) + "\n"
	}
	return m.labelStyle.Render("  "+label) + "\n"
}

func (m *Model) renderToggle(field int, label string, on bool) string {
	mark := "[ ]"
	if on {
		mark = m.selectedStyle.Render("[x]")
	}
	line := "  " + mark + " " + label
	if m.focus == field {
		return m.focusedStyle.Render(">") + line[1:] + "\n"
	}
	return line + "\n"
}

func (m *Model) renderLanguage() string {
	parts := make([]string, len(languages))
	for i, lang := range languages {
		if i == m.langIndex {
			parts[i] = m.selectedStyle.Render("[" + lang + "]")
		} else {
			parts[i] = " " + lang + " "
		}
	}
	return strings.Join(parts, " ")
}

// Result returns the collected options and whether the form was
// confirmed rather than cancelled.
func (m *Model) Result() (Result, bool) {
	output := strings.TrimSpace(m.outputPath.Value())
	if output == "" {
		output = "issues.jsonl"
	}
	return Result{
		InputDir:            strings.TrimSpace(m.inputDir.Value()),
		OutputPath:          output,
		Recursive:           m.recursive,
		IncludeCustomFields: m.customFields,
		IncludeRawItem:      m.rawItem,
		Beautify:            m.beautify,
		Language:            languages[m.langIndex],
	}, m.confirmed
}
