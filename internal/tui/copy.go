package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robobadge/robobadge/internal/logger"
)

const (
	copyLabelIdle   = "Copy"
	copyLabelDone   = "Copied!"
	copyLabelFailed = "Copy failed"

	copyResetDelay = 2000 * time.Millisecond
)

// copyResultMsg reports a finished clipboard write for activation seq.
type copyResultMsg struct {
	seq int
	err error
}

// copyResetMsg restores the idle label. It only applies while seq is still
// the latest activation, so a newer copy reschedules rather than stacks.
type copyResetMsg struct {
	seq int
}

// copy writes the current markdown to the clipboard. With nothing generated
// yet there is nothing to copy.
func (a App) copy() (App, tea.Cmd) {
	if a.links.Markdown == "" || a.opts.Clipboard == nil {
		return a, nil
	}
	a.copySeq++
	seq := a.copySeq
	text := a.links.Markdown
	write := a.opts.Clipboard
	return a, func() tea.Msg {
		return copyResultMsg{seq: seq, err: write(text)}
	}
}

func (a App) handleCopyResult(msg copyResultMsg) (App, tea.Cmd) {
	if msg.seq != a.copySeq {
		return a, nil
	}
	if msg.err != nil {
		a.log.Warn("clipboard write failed", logger.Error(msg.err))
		a.copyLabel = copyLabelFailed
	} else {
		a.log.Debug("copied markdown", logger.Int("bytes", len(a.links.Markdown)))
		a.copyLabel = copyLabelDone
	}
	return a, copyResetCmd(msg.seq)
}

func copyResetCmd(seq int) tea.Cmd {
	return tea.Tick(copyResetDelay, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}

func (a App) renderCopyButton() string {
	style := a.pal.button
	if a.focus == focusCopy {
		style = a.pal.buttonFocus
	}
	label := a.copyLabel
	if label == copyLabelFailed {
		return style.Render(a.pal.warn.Render(label))
	}
	return style.Render(label)
}
