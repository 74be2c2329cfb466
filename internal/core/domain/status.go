package domain

// ModuleStatus is the state a module reaches during one build.
type ModuleStatus string

const (
	// ModuleStatusPending indicates the module is waiting for its turn.
	ModuleStatusPending ModuleStatus = "pending"
	// ModuleStatusRunning indicates the module's commands are executing.
	ModuleStatusRunning ModuleStatus = "running"
	// ModuleStatusCompleted indicates every command of the module succeeded.
	ModuleStatusCompleted ModuleStatus = "completed"
	// ModuleStatusFailed indicates planning or a command of the module failed.
	ModuleStatusFailed ModuleStatus = "failed"
	// ModuleStatusSkipped indicates the module was not built because a dependency did not build.
	ModuleStatusSkipped ModuleStatus = "skipped"
)

// IsTerminal reports whether the module is done for this build.
func (s ModuleStatus) IsTerminal() bool {
	switch s {
	case ModuleStatusCompleted, ModuleStatusFailed, ModuleStatusSkipped:
		return true
	default:
		return false
	}
}

// BlocksDependents reports whether modules importing this one must be skipped.
func (s ModuleStatus) BlocksDependents() bool {
	return s == ModuleStatusFailed || s == ModuleStatusSkipped
}
