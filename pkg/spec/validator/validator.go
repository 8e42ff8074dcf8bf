package validator

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arunabhdas/xcodegen/pkg/spec"
	specErrors "github.com/arunabhdas/xcodegen/pkg/spec/errors"
)

// PathExistsFunc reports whether relPath, joined to basePath, exists on
// disk. Implementations must treat any failure to stat the path, including
// permission errors, as non-existence.
type PathExistsFunc func(basePath, relPath string) bool

// Validator validates project specifications. The zero value is not usable;
// construct with NewValidator.
type Validator struct {
	pathExists PathExistsFunc

	// Per-call state, reset by Validate.
	project *spec.Project
	defects *specErrors.ValidationErrorList
}

// NewValidator creates a validator backed by the real file system.
func NewValidator() *Validator {
	return &Validator{
		pathExists: defaultPathExists,
	}
}

// NewValidatorWithPathExists creates a validator with a custom path
// existence oracle. Used by tests and by hosts that resolve paths through
// something other than the local file system.
func NewValidatorWithPathExists(fn PathExistsFunc) *Validator {
	if fn == nil {
		fn = defaultPathExists
	}
	return &Validator{
		pathExists: fn,
	}
}

// Validate walks every referencing relationship in the project and
// accumulates defects. It returns nil if the specification is fully
// resolvable, otherwise a *errors.ValidationErrorList with every defect
// found. Validation is read-only and never mutates the project.
func (v *Validator) Validate(project *spec.Project) error {
	v.project = project
	v.defects = specErrors.NewValidationErrorList()

	// Project-level settings.
	v.validateSettings(project.Settings, make(map[string]bool))

	// File groups must exist under the base path.
	for _, group := range project.FileGroups {
		if !v.pathExists(project.BasePath, group) {
			v.defects.Add(&specErrors.Defect{
				Kind:  specErrors.InvalidFileGroup,
				Group: group,
			})
		}
	}

	// Project-level config files: the path and the config name are
	// independent checks, each reported on its own.
	for _, config := range sortedKeys(project.ConfigFiles) {
		configFile := project.ConfigFiles[config]
		if !v.pathExists(project.BasePath, configFile) {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidConfigFile,
				ConfigFile: configFile,
				Config:     config,
			})
		}
		if project.GetConfig(config) == nil {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidConfigFileConfig,
				Config:     config,
				Suggestion: specErrors.SuggestName(config, project.ConfigNames()),
			})
		}
	}

	// Every declared settings group is validated against itself, so
	// dangling includes surface even from groups nothing references.
	groupNames := project.GroupNames()
	sort.Strings(groupNames)
	for _, name := range groupNames {
		v.validateSettings(project.SettingGroups[name], map[string]bool{name: true})
	}

	for i := range project.Targets {
		v.validateTarget(&project.Targets[i])
	}

	for i := range project.Schemes {
		v.validateScheme(&project.Schemes[i])
	}

	return v.defects.ToError()
}

// sortedKeys returns the map's keys in sorted order. Map iteration order is
// random in Go; defect order must be deterministic for a given spec.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// defaultPathExists stats the joined path. Any error, including permission
// failures, reads as non-existence.
func defaultPathExists(basePath, relPath string) bool {
	_, err := os.Stat(filepath.Join(basePath, relPath))
	return err == nil
}
