package tui

// Messages for the tea program

// HealthCheckedMsg is sent after the initial service health check
type HealthCheckedMsg struct {
	Status string
	Err    error
}

// RunCompleteMsg is sent when the submitted job finishes
type RunCompleteMsg struct {
	Err error
}
