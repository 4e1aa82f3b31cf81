package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type externalEditorDoneMsg struct {
	err error
}

func externalEditorName() string {
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	return "vi"
}

// openExternalEditorForTerms suspends the TUI and edits the form's renewal terms
// in the user's editor.
func (m *appModel) openExternalEditorForTerms() (tea.Cmd, error) {
	args := splitShellWords(externalEditorName())
	if len(args) == 0 {
		args = []string{"vi"}
	}

	f, err := os.CreateTemp("", "photolicense-terms-*.md")
	if err != nil {
		return nil, err
	}
	path := f.Name()

	before := m.form.terms.Value()
	if _, err := f.WriteString(before); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	_ = f.Close()

	m.externalEditorPath = path
	m.externalEditorBefore = before

	cmd := exec.Command(args[0], append(args[1:], path)...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalEditorDoneMsg{err: err}
	}), nil
}

func (m *appModel) applyExternalEditorResult(msg externalEditorDoneMsg) {
	path := m.externalEditorPath
	before := m.externalEditorBefore

	m.externalEditorPath = ""
	m.externalEditorBefore = ""

	if strings.TrimSpace(path) == "" {
		return
	}
	defer func() { _ = os.Remove(path) }()

	if msg.err != nil {
		m.showMinibuffer("Editor failed: " + msg.err.Error())
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		m.showMinibuffer("Editor read failed: " + err.Error())
		return
	}

	after := strings.TrimRight(string(b), "\n")
	if m.modal != modalForm {
		return
	}
	m.form.setRenewalTerms(after)

	if strings.TrimSpace(after) == strings.TrimSpace(before) {
		m.showMinibuffer(fmt.Sprintf("No changes from %s", externalEditorName()))
		return
	}
	m.showMinibuffer(fmt.Sprintf("Updated from %s (ctrl+s to save)", externalEditorName()))
}
