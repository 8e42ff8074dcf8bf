package validator

import (
	"path/filepath"
	"strings"

	"github.com/arunabhdas/xcodegen/pkg/spec"
	specErrors "github.com/arunabhdas/xcodegen/pkg/spec/errors"
)

// validateTarget runs every per-target check: dependency resolution, config
// files, source existence, the embedded scheme, build-script paths, and the
// target's own settings.
func (v *Validator) validateTarget(target *spec.Target) {
	for _, dependency := range target.Dependencies {
		// Only target-typed dependencies resolve within the spec;
		// framework, carthage, and sdk references point outside it.
		if dependency.Type != spec.DependencyTypeTarget {
			continue
		}
		if v.project.GetTarget(dependency.Reference) == nil {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidTargetDependency,
				Target:     target.Name,
				Dependency: dependency.Reference,
				Suggestion: specErrors.SuggestName(dependency.Reference, v.project.TargetNames()),
			})
		}
	}

	for _, config := range sortedKeys(target.ConfigFiles) {
		configFile := target.ConfigFiles[config]
		if !v.pathExists(v.project.BasePath, configFile) {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidTargetConfigFile,
				Target:     target.Name,
				ConfigFile: configFile,
				Config:     config,
			})
		}
		if v.project.GetConfig(config) == nil {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidConfigFileConfig,
				Config:     config,
				Suggestion: specErrors.SuggestName(config, v.project.ConfigNames()),
			})
		}
	}

	for _, source := range target.Sources {
		if !v.pathExists(v.project.BasePath, source.Path) {
			v.defects.Add(&specErrors.Defect{
				Kind:   specErrors.MissingTargetSource,
				Target: target.Name,
				Source: filepath.Join(v.project.BasePath, source.Path),
			})
		}
	}

	if target.Scheme != nil {
		v.validateTargetScheme(target, target.Scheme)
	}

	for _, script := range target.BuildScripts() {
		if !script.IsPathSourced() {
			continue
		}
		if !v.pathExists(v.project.BasePath, script.Path) {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidBuildScriptPath,
				Target:     target.Name,
				ScriptName: script.Name,
				Path:       script.Path,
			})
		}
	}

	v.validateSettings(target.Settings, make(map[string]bool))
}

// validateTargetScheme checks a target's auto-generated scheme. Each config
// variant must match, as a case-sensitive substring, the name of at least
// one debug-typed and one release-typed configuration. With no variants the
// project must declare at least one configuration of each type, or the
// scheme cannot be generated at all.
func (v *Validator) validateTargetScheme(target *spec.Target, scheme *spec.TargetScheme) {
	if len(scheme.ConfigVariants) > 0 {
		for _, variant := range scheme.ConfigVariants {
			if !v.hasConfigWithVariant(variant, spec.ConfigTypeDebug) {
				v.defects.Add(&specErrors.Defect{
					Kind:       specErrors.InvalidTargetSchemeConfigVariant,
					Target:     target.Name,
					Variant:    variant,
					ConfigType: string(spec.ConfigTypeDebug),
				})
			}
			if !v.hasConfigWithVariant(variant, spec.ConfigTypeRelease) {
				v.defects.Add(&specErrors.Defect{
					Kind:       specErrors.InvalidTargetSchemeConfigVariant,
					Target:     target.Name,
					Variant:    variant,
					ConfigType: string(spec.ConfigTypeRelease),
				})
			}
		}
	} else {
		if !v.hasConfigOfType(spec.ConfigTypeDebug) {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.MissingConfigTypeForGeneratedTargetScheme,
				Target:     target.Name,
				ConfigType: string(spec.ConfigTypeDebug),
			})
		}
		if !v.hasConfigOfType(spec.ConfigTypeRelease) {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.MissingConfigTypeForGeneratedTargetScheme,
				Target:     target.Name,
				ConfigType: string(spec.ConfigTypeRelease),
			})
		}
	}

	for _, testTarget := range scheme.TestTargets {
		if v.project.GetTarget(testTarget) == nil {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidTargetSchemeTest,
				Target:     target.Name,
				TestTarget: testTarget,
				Suggestion: specErrors.SuggestName(testTarget, v.project.TargetNames()),
			})
		}
	}
}

// hasConfigWithVariant reports whether a configuration of the given type
// contains the variant as a case-sensitive substring of its name.
func (v *Validator) hasConfigWithVariant(variant string, configType spec.ConfigType) bool {
	for _, config := range v.project.Configs {
		if config.Type == configType && containsVariant(config.Name, variant) {
			return true
		}
	}
	return false
}

// hasConfigOfType reports whether any configuration of the given type is
// declared.
func (v *Validator) hasConfigOfType(configType spec.ConfigType) bool {
	for _, config := range v.project.Configs {
		if config.Type == configType {
			return true
		}
	}
	return false
}

func containsVariant(name, variant string) bool {
	// Case-sensitive, unlike build-setting config keys.
	return strings.Contains(name, variant)
}
