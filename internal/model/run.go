package model

import (
	"time"
)

// RunStatus represents the lifecycle state of a host run.
type RunStatus string

const (
	// RunStatusRunning indicates the hosted service is currently being served.
	RunStatusRunning RunStatus = "running"
	// RunStatusStopped indicates the run finished cleanly.
	RunStatusStopped RunStatus = "stopped"
	// RunStatusFailed indicates the hosted service returned an error.
	RunStatusFailed RunStatus = "failed"
)

// Run represents a single execution of a hosted service.
type Run struct {
	ID        string
	Status    RunStatus
	Version   string
	Err       string
	StartedAt time.Time
	StoppedAt *time.Time
}
