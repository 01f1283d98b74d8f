// Package ui renders terminal output for devctl runs.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/addonhub/devctl/internal/bootstrap"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	failedStyle = lipgloss.NewStyle().Foreground(colorRed)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
)

// Summary renders the per-task outcome of a run. When err is non-nil the
// failing task name is shown after the completed ones.
func Summary(target string, state *bootstrap.State, err error) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("devctl %s", target)))
	b.WriteString("\n")

	for _, r := range state.Completed {
		line := fmt.Sprintf("%s %s %s",
			okStyle.Render(checkMark),
			r.Name,
			dimStyle.Render(r.Duration.Round(time.Millisecond).String()))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err != nil {
		b.WriteString(fmt.Sprintf("%s %v\n", failedStyle.Render(crossMark), err))
	} else {
		b.WriteString(okStyle.Render("Done") + "\n")
	}

	return b.String()
}
