package spec

// BuildType is a build-for purpose on a scheme build entry.
type BuildType string

const (
	BuildTypeRunning   BuildType = "running"
	BuildTypeTesting   BuildType = "testing"
	BuildTypeProfiling BuildType = "profiling"
	BuildTypeAnalyzing BuildType = "analyzing"
	BuildTypeArchiving BuildType = "archiving"
)

// BuildTarget is one entry in a scheme's build action.
type BuildTarget struct {
	// Target names a declared target.
	Target string

	// BuildTypes limits what the target is built for. Empty means all.
	BuildTypes []BuildType
}

// BuildAction is the build step of a top-level scheme.
type BuildAction struct {
	Targets []BuildTarget
}

// ExecutionAction is one of the run/test/profile/analyze/archive steps of a
// top-level scheme. Each carries the name of the configuration it uses.
type ExecutionAction struct {
	// Config names a declared configuration, resolved by exact name.
	Config string

	CommandLineArguments map[string]bool
	EnvironmentVariables map[string]string
}

// Scheme is a top-level, explicitly declared scheme.
type Scheme struct {
	Name  string
	Build BuildAction

	Run     *ExecutionAction
	Test    *ExecutionAction
	Profile *ExecutionAction
	Analyze *ExecutionAction
	Archive *ExecutionAction
}

// ExecutionActions returns the scheme's present optional actions keyed by
// action name, in a fixed order suitable for deterministic reporting.
func (s *Scheme) ExecutionActions() []struct {
	Name   string
	Action *ExecutionAction
} {
	all := []struct {
		Name   string
		Action *ExecutionAction
	}{
		{"run", s.Run},
		{"test", s.Test},
		{"profile", s.Profile},
		{"analyze", s.Analyze},
		{"archive", s.Archive},
	}
	present := all[:0]
	for _, a := range all {
		if a.Action != nil {
			present = append(present, a)
		}
	}
	return present
}
