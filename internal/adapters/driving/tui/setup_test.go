package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m *Model, keys ...string) *Model {
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(key(k))
	}
	return model.(*Model)
}

func TestNewSetup_AppliesDefaults(t *testing.T) {
	m := NewSetup(Result{
		InputDir:   "exports",
		OutputPath: "out.jsonl",
		Recursive:  true,
		Language:   "pt",
	})

	result, confirmed := m.Result()
	assert.False(t, confirmed)
	assert.Equal(t, "exports", result.InputDir)
	assert.Equal(t, "out.jsonl", result.OutputPath)
	assert.True(t, result.Recursive)
	assert.Equal(t, "pt-BR", result.Language)
}

func TestSetup_ConfirmOnLastField(t *testing.T) {
	m := NewSetup(Result{InputDir: "exports"})

	// Enter advances through every field; on the last one it confirms.
	m = send(m, "enter", "enter", "enter", "enter", "enter", "enter", "enter")

	result, confirmed := m.Result()
	assert.True(t, confirmed)
	assert.Equal(t, "exports", result.InputDir)
	assert.Equal(t, "issues.jsonl", result.OutputPath)
}

func TestSetup_EmptyInputBlocksConfirm(t *testing.T) {
	m := NewSetup(Result{})

	m = send(m, "enter", "enter", "enter", "enter", "enter", "enter", "enter")

	_, confirmed := m.Result()
	assert.False(t, confirmed)
	assert.Equal(t, fieldInput, m.focus)
}

func TestSetup_EscCancels(t *testing.T) {
	m := NewSetup(Result{InputDir: "exports"})

	var model tea.Model
	model, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)

	_, confirmed := model.(*Model).Result()
	assert.False(t, confirmed)
}

func TestSetup_ToggleWithSpace(t *testing.T) {
	m := NewSetup(Result{InputDir: "exports"})

	// Tab to the recursive toggle and flip it.
	m = send(m, "tab", "tab", " ")

	result, _ := m.Result()
	assert.True(t, result.Recursive)

	m = send(m, " ")
	result, _ = m.Result()
	assert.False(t, result.Recursive)
}

func TestSetup_LanguageCycles(t *testing.T) {
	m := NewSetup(Result{InputDir: "exports"})

	m = send(m, "shift+tab", "right")
	result, _ := m.Result()
	assert.Equal(t, "pt-BR", result.Language)

	m = send(m, "right")
	result, _ = m.Result()
	assert.Equal(t, "en", result.Language)
}

func TestSetup_TypingFillsFocusedInput(t *testing.T) {
	m := NewSetup(Result{})

	m = send(m, "a", "b", "c")

	result, _ := m.Result()
	assert.Equal(t, "abc", result.InputDir)
}

func TestSetup_ViewShowsFields(t *testing.T) {
	m := NewSetup(Result{InputDir: "exports"})

	view := m.View()
	assert.Contains(t, view, "Input folder")
	assert.Contains(t, view, "Output file")
	assert.Contains(t, view, "Scan subfolders")
	assert.Contains(t, view, "Language")
}
