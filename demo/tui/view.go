package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("FixMySheet Demo"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Job summary
	b.WriteString(InfoStyle.Render("Job: " + m.Job.Description()))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Output: " + m.Job.OutPath()))
	b.WriteString("\n\n")

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Results
	if m.State == StateComplete {
		result := HighlightStyle.Render("Saved") + "\n\n" +
			StatusStyle.Render(m.Job.OutPath())
		b.WriteString(BoxStyle.Render(result))
		b.WriteString("\n\n")
	}

	// Help text
	switch m.State {
	case StateReady:
		b.WriteString(InfoStyle.Render("Press 'r' to run | Press 'q' or Ctrl+C to quit"))
	case StateComplete, StateError:
		b.WriteString(InfoStyle.Render("Press 'r' to run again | Press 'q' or Ctrl+C to quit"))
	default:
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateConnecting:
		return StatusStyle.Render("Connecting to service...")
	case StateReady:
		return HighlightStyle.Render("Ready") + "  " + StatusStyle.Render(m.Status)
	case StateRunning:
		return StatusStyle.Render("Uploading and processing...")
	case StateComplete:
		return HighlightStyle.Render("COMPLETE")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("Error: %s", errMsg))
	default:
		return ""
	}
}
