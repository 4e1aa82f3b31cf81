package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalConfirmDelete
	modalDetail
	modalHelp
)

func (k modalKind) String() string {
	switch k {
	case modalForm:
		return "form"
	case modalConfirmDelete:
		return "confirm-delete"
	case modalDetail:
		return "detail"
	case modalHelp:
		return "help"
	default:
		return "none"
	}
}

type minibufferClearMsg struct{ seq int }

const minibufferTTL = 4 * time.Second

func clearMinibufferAfter(seq int) tea.Cmd {
	return tea.Tick(minibufferTTL, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}
