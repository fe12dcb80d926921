package tui

import (
	"fmt"
	"time"

	"github.com/magrebiali/FixMySheet-Backend/demo/client"
)

// State represents the application state machine
type State string

const (
	StateConnecting State = "connecting"
	StateReady      State = "ready"
	StateRunning    State = "running"
	StateComplete   State = "complete"
	StateError      State = "error"
)

// Job describes what pressing 'r' will run against the service. Exactly one
// of the two requests is set.
type Job struct {
	Reconcile *client.ReconcileRequest
	Dedupe    *client.DedupeRequest
}

// OutPath returns where the job saves its workbook.
func (j Job) OutPath() string {
	if j.Reconcile != nil {
		return j.Reconcile.OutPath
	}
	return j.Dedupe.OutPath
}

// Description returns a one-line summary of the job.
func (j Job) Description() string {
	if j.Reconcile != nil {
		return fmt.Sprintf("reconcile %s + %s on %q", j.Reconcile.FileA, j.Reconcile.FileB, j.Reconcile.MatchColumn)
	}
	if j.Dedupe.Mode == "column" {
		return fmt.Sprintf("dedupe %s by column %q", j.Dedupe.File, j.Dedupe.KeyColumn)
	}
	return fmt.Sprintf("dedupe %s by full rows", j.Dedupe.File)
}

// Model represents the TUI client state
type Model struct {
	AppClient *client.Client
	Job       Job

	State  State
	Status string
	Logs   []string
	Err    error
}

// NewModel creates a new TUI model
func NewModel(appClient *client.Client, job Job) Model {
	return Model{
		AppClient: appClient,
		Job:       job,
		State:     StateConnecting,
		Logs:      make([]string, 0),
	}
}

// AddLog appends a timestamped log line, keeping the most recent entries.
func (m Model) AddLog(msg string) Model {
	entry := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg)
	m.Logs = append(m.Logs, entry)
	if len(m.Logs) > 8 {
		m.Logs = m.Logs[len(m.Logs)-8:]
	}
	return m
}
