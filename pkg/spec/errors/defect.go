package errors

import (
	"fmt"
	"strings"
)

// DefectKind identifies the category of a validation defect.
type DefectKind string

const (
	// InvalidTargetDependency: a target-typed dependency names a target
	// that is not declared.
	InvalidTargetDependency DefectKind = "invalid_target_dependency"
	// MissingTargetSource: a declared source path does not exist under
	// the project base path.
	MissingTargetSource DefectKind = "missing_target_source"
	// InvalidTargetConfigFile: a target's config-file path does not
	// exist under the project base path.
	InvalidTargetConfigFile DefectKind = "invalid_target_config_file"
	// InvalidTargetSchemeConfigVariant: a target scheme's config
	// variant matches no declared configuration of the required type.
	InvalidTargetSchemeConfigVariant DefectKind = "invalid_target_scheme_config_variant"
	// InvalidTargetSchemeTest: a target scheme's test target is not
	// declared.
	InvalidTargetSchemeTest DefectKind = "invalid_target_scheme_test"
	// InvalidSchemeTarget: a top-level scheme's build entry names a
	// target that is not declared.
	InvalidSchemeTarget DefectKind = "invalid_scheme_target"
	// InvalidSchemeConfig: a top-level scheme action names a
	// configuration that is not declared.
	InvalidSchemeConfig DefectKind = "invalid_scheme_config"
	// InvalidConfigFile: a project-level config-file path does not
	// exist under the project base path.
	InvalidConfigFile DefectKind = "invalid_config_file"
	// InvalidConfigFileConfig: a config-file mapping is keyed by a
	// configuration name that is not declared.
	InvalidConfigFileConfig DefectKind = "invalid_config_file_config"
	// InvalidBuildSettingConfig: a config-settings key matches no
	// declared configuration name.
	InvalidBuildSettingConfig DefectKind = "invalid_build_setting_config"
	// InvalidSettingsGroup: a settings bundle includes a group name
	// that is not declared.
	InvalidSettingsGroup DefectKind = "invalid_settings_group"
	// InvalidBuildScriptPath: a path-sourced build script's path does
	// not exist under the project base path.
	InvalidBuildScriptPath DefectKind = "invalid_build_script_path"
	// InvalidFileGroup: a declared file-group path does not exist under
	// the project base path.
	InvalidFileGroup DefectKind = "invalid_file_group"
	// MissingConfigTypeForGeneratedTargetScheme: a target scheme with
	// no config variants requires at least one configuration of each of
	// the debug and release types, and one is missing.
	MissingConfigTypeForGeneratedTargetScheme DefectKind = "missing_config_type_for_generated_target_scheme"
)

// Defect is a single detected inconsistency in a specification.
// Kind determines which context fields are meaningful.
type Defect struct {
	Kind DefectKind `json:"kind"`

	// Context fields. Each kind populates the subset it needs.
	Target     string `json:"target,omitempty"`
	Dependency string `json:"dependency,omitempty"`
	Source     string `json:"source,omitempty"`
	ConfigFile string `json:"config_file,omitempty"`
	Config     string `json:"config,omitempty"`
	ConfigType string `json:"config_type,omitempty"`
	Variant    string `json:"config_variant,omitempty"`
	TestTarget string `json:"test_target,omitempty"`
	Scheme     string `json:"scheme,omitempty"`
	Group      string `json:"group,omitempty"`
	ScriptName string `json:"script_name,omitempty"`
	Path       string `json:"path,omitempty"`

	// Suggestion is an optional rendering hint ("Did you mean ...?").
	// It is presentation only and never part of defect identity.
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface, rendering a single human-readable
// line for the defect.
func (d *Defect) Error() string {
	var msg string
	switch d.Kind {
	case InvalidTargetDependency:
		msg = fmt.Sprintf("target %q has invalid dependency: %q", d.Target, d.Dependency)
	case MissingTargetSource:
		msg = fmt.Sprintf("target %q has a missing source directory %q", d.Target, d.Source)
	case InvalidTargetConfigFile:
		msg = fmt.Sprintf("target %q has invalid config file %q for config %q", d.Target, d.ConfigFile, d.Config)
	case InvalidTargetSchemeConfigVariant:
		msg = fmt.Sprintf("target %q has invalid scheme config variant which requires a config that has a %s type and contains the name %q", d.Target, d.ConfigType, d.Variant)
	case InvalidTargetSchemeTest:
		msg = fmt.Sprintf("target %q scheme has invalid test target %q", d.Target, d.TestTarget)
	case InvalidSchemeTarget:
		msg = fmt.Sprintf("scheme %q has invalid build target %q", d.Scheme, d.Target)
	case InvalidSchemeConfig:
		msg = fmt.Sprintf("scheme %q has invalid config %q", d.Scheme, d.Config)
	case InvalidConfigFile:
		msg = fmt.Sprintf("invalid config file %q for config %q", d.ConfigFile, d.Config)
	case InvalidConfigFileConfig:
		msg = fmt.Sprintf("config file has invalid config %q", d.Config)
	case InvalidBuildSettingConfig:
		msg = fmt.Sprintf("build setting has invalid build configuration %q", d.Config)
	case InvalidSettingsGroup:
		msg = fmt.Sprintf("invalid settings group %q", d.Group)
	case InvalidBuildScriptPath:
		if d.ScriptName != "" {
			msg = fmt.Sprintf("target %q has a script %q which has a missing path %q", d.Target, d.ScriptName, d.Path)
		} else {
			msg = fmt.Sprintf("target %q has a script which has a missing path %q", d.Target, d.Path)
		}
	case InvalidFileGroup:
		msg = fmt.Sprintf("invalid file group %q", d.Group)
	case MissingConfigTypeForGeneratedTargetScheme:
		msg = fmt.Sprintf("target %q is missing a config of type %s to generate its scheme", d.Target, d.ConfigType)
	default:
		msg = fmt.Sprintf("unknown defect %q", string(d.Kind))
	}

	if d.Suggestion != "" {
		return msg + ". " + d.Suggestion
	}
	return msg
}

// ValidationErrorList accumulates defects across a validation pass.
// The order of defects follows discovery order and is deterministic for a
// given specification.
type ValidationErrorList struct {
	Defects []*Defect `json:"defects"`
}

// NewValidationErrorList creates an empty list.
func NewValidationErrorList() *ValidationErrorList {
	return &ValidationErrorList{
		Defects: make([]*Defect, 0),
	}
}

// Add appends a defect to the list.
func (l *ValidationErrorList) Add(d *Defect) {
	l.Defects = append(l.Defects, d)
}

// Append appends all defects from another list.
func (l *ValidationErrorList) Append(other *ValidationErrorList) {
	if other == nil {
		return
	}
	l.Defects = append(l.Defects, other.Defects...)
}

// HasDefects returns true if the list contains any defects.
func (l *ValidationErrorList) HasDefects() bool {
	return len(l.Defects) > 0
}

// Count returns the number of defects in the list.
func (l *ValidationErrorList) Count() int {
	return len(l.Defects)
}

// ByKind returns all defects of the given kind.
func (l *ValidationErrorList) ByKind(kind DefectKind) []*Defect {
	var result []*Defect
	for _, d := range l.Defects {
		if d.Kind == kind {
			result = append(result, d)
		}
	}
	return result
}

// HasKind returns true if the list contains at least one defect of the
// given kind.
func (l *ValidationErrorList) HasKind(kind DefectKind) bool {
	for _, d := range l.Defects {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Error implements the error interface, rendering the whole list as a
// multi-line report.
func (l *ValidationErrorList) Error() string {
	if !l.HasDefects() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Spec validation error: %d defect(s)\n", l.Count()))
	for _, d := range l.Defects {
		sb.WriteString("\t- ")
		sb.WriteString(d.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (l *ValidationErrorList) ToError() error {
	if !l.HasDefects() {
		return nil
	}
	return l
}
