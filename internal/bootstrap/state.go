package bootstrap

import "github.com/MKhiriev/dollhouse-client/models"

// State is a step of the bootstrap sequence. States only move forward.
type State int

const (
	StateStart State = iota
	StateArchitectureChecked
	StateDependenciesChecked
	StateInstallResolved
	StateAborted
	StateVersionResolved
	StateDocumentsPathEnsured
	StateDisplayArgsParsed
	StateLaunched
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateArchitectureChecked:
		return "architecture_checked"
	case StateDependenciesChecked:
		return "dependencies_checked"
	case StateInstallResolved:
		return "install_resolved"
	case StateAborted:
		return "aborted"
	case StateVersionResolved:
		return "version_resolved"
	case StateDocumentsPathEnsured:
		return "documents_path_ensured"
	case StateDisplayArgsParsed:
		return "display_args_parsed"
	case StateLaunched:
		return "launched"
	default:
		return "unknown"
	}
}

// Outcome is what a bootstrap run reached.
type Outcome struct {
	State State
	// Settings holds every field resolved before the run stopped.
	Settings   models.Settings
	Advisories []models.Advisory
}

// Aborted reports whether the launch was blocked by a fatal condition.
func (o Outcome) Aborted() bool {
	return o.State == StateAborted
}
