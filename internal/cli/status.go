package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type status struct {
	w     io.Writer
	quiet bool
	ok    lipgloss.Style
	fail  lipgloss.Style
}

func newStatus(w io.Writer, quiet bool) status {
	r := lipgloss.NewRenderer(w)
	return status{
		w:     w,
		quiet: quiet,
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (s status) success(msg string) {
	if !s.quiet {
		fmt.Fprintln(s.w, s.ok.Render(msg))
	}
}

func (s status) failure(msg string) {
	if !s.quiet {
		fmt.Fprintln(s.w, s.fail.Render(msg))
	}
}
