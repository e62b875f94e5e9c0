package assistant

import "time"

const (
	// DefaultBaseURL is the OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the model backing new assistants.
	DefaultModel = "gpt-4o"

	// DefaultTimeout bounds a single HTTP call, not a run.
	DefaultTimeout = 60 * time.Second

	betaHeader = "assistants=v2"

	toolCodeInterpreter = "code_interpreter"
)

// RunStatus is the lifecycle state of a run.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusIncomplete     RunStatus = "incomplete"
	RunStatusExpired        RunStatus = "expired"
)

// Pending reports whether the run may still change state on its own.
func (s RunStatus) Pending() bool {
	return s == RunStatusQueued || s == RunStatusInProgress
}
