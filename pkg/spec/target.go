package spec

// DependencyType classifies a target dependency.
type DependencyType string

const (
	// DependencyTypeTarget references another target in the same
	// project by name. This is the only dependency kind the validator
	// resolves; the others point outside the specification.
	DependencyTypeTarget    DependencyType = "target"
	DependencyTypeFramework DependencyType = "framework"
	DependencyTypeCarthage  DependencyType = "carthage"
	DependencyTypeSDK       DependencyType = "sdk"
)

// Dependency is a single entry in a target's dependency list.
type Dependency struct {
	Type      DependencyType
	Reference string

	// Embed and Link carry through to generation and are not validated.
	Embed *bool
	Link  *bool
}

// Source is a file or directory of sources belonging to a target,
// relative to the project base path.
type Source struct {
	Path string

	// Optional grouping overrides, passed through to generation.
	Name           string
	CompilerFlags  []string
	ExcludePattern string
}

// BuildScript is a script phase attached to a target. Exactly one of Path
// and Script is set: Path references a script file relative to the project
// base path, Script holds the script text inline. Only path-sourced scripts
// are subject to existence validation.
type BuildScript struct {
	Name   string
	Path   string
	Script string

	Shell                 string
	InputFiles            []string
	OutputFiles           []string
	RunOnlyWhenInstalling bool
}

// IsPathSourced returns true if the script body comes from a file on disk.
func (b BuildScript) IsPathSourced() bool {
	return b.Path != ""
}

// Target is a buildable unit within the project.
type Target struct {
	Name     string
	Type     string
	Platform string

	Sources      []Source
	Dependencies []Dependency

	// ConfigFiles maps configuration name to an xcconfig path relative
	// to the project base path.
	ConfigFiles map[string]string

	Settings Settings

	PreBuildScripts  []BuildScript
	PostBuildScripts []BuildScript

	// Scheme, when present, asks the generator to produce a scheme for
	// this target automatically.
	Scheme *TargetScheme
}

// BuildScripts returns the target's pre- and post-build scripts in phase
// order.
func (t *Target) BuildScripts() []BuildScript {
	scripts := make([]BuildScript, 0, len(t.PreBuildScripts)+len(t.PostBuildScripts))
	scripts = append(scripts, t.PreBuildScripts...)
	scripts = append(scripts, t.PostBuildScripts...)
	return scripts
}

// TargetScheme describes an auto-generated scheme for a single target.
type TargetScheme struct {
	// ConfigVariants are name fragments matched (case-sensitively, as
	// substrings) against declared configuration names of each type.
	// Empty means the scheme uses the project's plain debug and release
	// configurations, which must then exist.
	ConfigVariants []string

	// TestTargets are names of targets whose tests the scheme runs.
	TestTargets []string

	GatherCoverageData   bool
	CommandLineArguments map[string]bool
	EnvironmentVariables map[string]string
}
