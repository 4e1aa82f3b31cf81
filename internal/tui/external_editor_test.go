package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"photolicense-cli/internal/form"

	"github.com/rs/zerolog"
)

func TestApplyExternalEditorResult_UpdatesTermsAndCleansUp(t *testing.T) {
	m := newAppModel(newTestCollection(), zerolog.Nop())
	m.openForm(form.NewCreate())
	m.form.setRenewalTerms("before")

	path := filepath.Join(t.TempDir(), "terms.md")
	if err := os.WriteFile(path, []byte("Renew **yearly**\n"), 0600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	m.externalEditorPath = path
	m.externalEditorBefore = "before"
	m.applyExternalEditorResult(externalEditorDoneMsg{})

	if got := m.form.terms.Value(); got != "Renew **yearly**" {
		t.Fatalf("expected terms to be updated, got %q", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be removed, stat err=%v", err)
	}
	if m.externalEditorPath != "" {
		t.Fatalf("expected editor state to reset")
	}
}

func TestApplyExternalEditorResult_ErrorKeepsTerms(t *testing.T) {
	m := newAppModel(newTestCollection(), zerolog.Nop())
	m.openForm(form.NewCreate())
	m.form.setRenewalTerms("keep me")

	path := filepath.Join(t.TempDir(), "terms.md")
	if err := os.WriteFile(path, []byte("ignored"), 0600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	m.externalEditorPath = path
	m.applyExternalEditorResult(externalEditorDoneMsg{err: errors.New("exit status 1")})

	if got := m.form.terms.Value(); got != "keep me" {
		t.Fatalf("expected terms unchanged, got %q", got)
	}
	if m.minibufferText == "" {
		t.Fatalf("expected failure feedback")
	}
}
