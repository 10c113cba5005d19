package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	timeoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// reporter renders results as they complete. It runs on the orchestrating
// goroutine only; workers never touch it.
type reporter struct {
	out   io.Writer
	root  string
	total int
	done  int
}

// report counts res and, unless it is up-to-date, renders it. Up-to-date
// repositories are counted silently to keep the output to things that need
// attention.
func (r *reporter) report(res UpdateResult) {
	r.done++
	if res.Status == StatusUpToDate {
		return
	}

	path := res.Repo
	if rel, err := filepath.Rel(r.root, res.Repo); err == nil {
		path = rel
	}

	fmt.Fprintf(r.out, "%s [%d/%d] Repository: %s\n", icon(res.Status), r.done, r.total, path)
	fmt.Fprintf(r.out, "Status: %s\n", styleFor(res.Status).Render(string(res.Status)))
	if res.Detail != "" {
		fmt.Fprintln(r.out, "Details:")
		fmt.Fprintln(r.out, res.Detail)
	}
	r.separator()
}

func (r *reporter) separator() {
	fmt.Fprintln(r.out, strings.Repeat("-", 60))
}

func icon(s Status) string {
	switch s {
	case StatusSuccess:
		return "✅"
	case StatusTimeout:
		return "⏰"
	default:
		return "❌"
	}
}

func styleFor(s Status) lipgloss.Style {
	switch s {
	case StatusSuccess, StatusUpToDate:
		return successStyle
	case StatusTimeout:
		return timeoutStyle
	default:
		return failureStyle
	}
}
