package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return checkHealth(m.AppClient)
}

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HealthCheckedMsg:
		return m.handleHealthChecked(msg)
	case RunCompleteMsg:
		return m.handleRunComplete(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r", "R":
		if m.State == StateReady || m.State == StateComplete || m.State == StateError {
			m.State = StateRunning
			m.Err = nil
			m = m.AddLog("Running: " + m.Job.Description())
			return m, runJob(m.AppClient, m.Job)
		}
	}
	return m, nil
}

// handleHealthChecked processes the initial health check result
func (m Model) handleHealthChecked(msg HealthCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.State = StateReady
	m.Status = msg.Status
	m = m.AddLog("Connected: " + msg.Status)
	return m, nil
}

// handleRunComplete processes job completion
func (m Model) handleRunComplete(msg RunCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		m = m.AddLog("Run failed: " + msg.Err.Error())
		return m, nil
	}
	m.State = StateComplete
	m = m.AddLog("Workbook saved to " + m.Job.OutPath())
	return m, nil
}
