package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix prefixes every lookup task ID
const TaskIDPrefix = "lookup-"

// LookupKind identifies the user action behind a task
type LookupKind string

const (
	LookupTitleSearch LookupKind = "title-search"
	LookupGenreSearch LookupKind = "genre-search"
	LookupDetails     LookupKind = "details"
)

// LookupTask represents one user action and its remote calls
type LookupTask struct {
	ID         string
	Kind       LookupKind
	Query      string
	Status     TaskStatus
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewLookupTask creates a pending task for the given action
func NewLookupTask(kind LookupKind, query string) *LookupTask {
	return &LookupTask{
		ID:        generateTaskID(),
		Kind:      kind,
		Query:     query,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// Start marks the task as running
func (t *LookupTask) Start() {
	t.Status = TaskStatusRunning
}

// Finish records the final status of the task
func (t *LookupTask) Finish(status TaskStatus, err error) {
	t.Status = status
	if err != nil {
		t.LastError = err.Error()
	}
	t.FinishedAt = time.Now()
}

// Elapsed returns how long the task ran (or has been running)
func (t *LookupTask) Elapsed() time.Duration {
	if t.FinishedAt.IsZero() {
		return time.Since(t.StartedAt)
	}
	return t.FinishedAt.Sub(t.StartedAt)
}

// generateTaskID generates a time-ordered task ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
