package provision

import "time"

// Stage represents one step of a provisioning run.
type Stage string

const (
	StageAptUpdate Stage = "apt-update"
	StagePackages  Stage = "packages"
	StageDetect    Stage = "detect"
	StageCloudCLI  Stage = "cloud-cli"
	StageComplete  Stage = "complete"
	StageError     Stage = "error"
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageAptUpdate:
		return "Updating Package Index"
	case StagePackages:
		return "Installing Packages"
	case StageDetect:
		return "Detecting Cloud Platform"
	case StageCloudCLI:
		return "Installing Cloud CLI"
	case StageComplete:
		return "Complete"
	case StageError:
		return "Error"
	default:
		return string(s)
	}
}

// ProgressEvent represents a provisioning progress update.
type ProgressEvent struct {
	Stage     Stage     // Current stage
	Message   string    // Human-readable message
	Detail    string    // Additional detail or output
	IsError   bool      // True if this is an error message
	Timestamp time.Time // When this event occurred
}

// ProgressFunc receives progress events during a run. May be nil.
type ProgressFunc func(ProgressEvent)

// emit sends an event if a callback is registered.
func (f ProgressFunc) emit(stage Stage, message, detail string, isErr bool) {
	if f == nil {
		return
	}
	f(ProgressEvent{
		Stage:     stage,
		Message:   message,
		Detail:    detail,
		IsError:   isErr,
		Timestamp: time.Now(),
	})
}
