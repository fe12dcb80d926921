package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/magrebiali/FixMySheet-Backend/demo/client"
)

// checkHealth creates a command that pings the service health endpoint
func checkHealth(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		status, err := c.Health(context.Background())
		return HealthCheckedMsg{Status: status, Err: err}
	}
}

// runJob creates a command that submits the job and saves the workbook
func runJob(c *client.Client, job Job) tea.Cmd {
	return func() tea.Msg {
		var err error
		if job.Reconcile != nil {
			err = c.Reconcile(context.Background(), *job.Reconcile)
		} else {
			err = c.Dedupe(context.Background(), *job.Dedupe)
		}
		return RunCompleteMsg{Err: err}
	}
}
