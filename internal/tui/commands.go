package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/showcraft/internal/domain"
	"github.com/mmcdole/showcraft/internal/wizard"
)

// spinnerInterval is the delay between spinner frames
const spinnerInterval = 100 * time.Millisecond

// SubmitCmd finalizes series off the UI goroutine
func SubmitCmd(f domain.Finalizer, series domain.Series, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		payload, err := wizard.Finalize(ctx, f, series)
		return SubmitResultMsg{Payload: payload, Err: err}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}
