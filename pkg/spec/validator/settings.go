package validator

import (
	"sort"
	"strings"

	"github.com/arunabhdas/xcodegen/pkg/spec"
	specErrors "github.com/arunabhdas/xcodegen/pkg/spec/errors"
)

// validateSettings checks a settings bundle: every included group must be
// declared, and every config-settings key must match a declared
// configuration name.
//
// Group includes form a graph with no acyclicity guarantee, so the
// traversal carries a visited set per path. A group seen again on the same
// path is skipped silently; revisiting it could only repeat defects already
// reported when the group was validated against itself.
func (v *Validator) validateSettings(settings spec.Settings, visited map[string]bool) {
	for _, group := range settings.Groups {
		groupSettings, ok := v.project.SettingGroups[group]
		if !ok {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidSettingsGroup,
				Group:      group,
				Suggestion: specErrors.SuggestName(group, v.project.GroupNames()),
			})
			continue
		}

		if visited[group] {
			continue
		}
		visited[group] = true
		v.validateSettings(groupSettings, visited)
		delete(visited, group)
	}

	configKeys := make([]string, 0, len(settings.ConfigSettings))
	for key := range settings.ConfigSettings {
		configKeys = append(configKeys, key)
	}
	sort.Strings(configKeys)

	for _, key := range configKeys {
		if !v.matchesAnyConfigName(key) {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidBuildSettingConfig,
				Config:     key,
				Suggestion: specErrors.SuggestName(key, v.project.ConfigNames()),
			})
		}
	}
}

// matchesAnyConfigName reports whether any declared configuration name
// contains the key as a case-insensitive substring. A configuration named
// "Release-iOS" satisfies the keys "release", "Rel", and "REL". This loose
// matching mirrors multi-variant configuration naming and is part of the
// contract.
func (v *Validator) matchesAnyConfigName(key string) bool {
	lowered := strings.ToLower(key)
	for _, config := range v.project.Configs {
		if strings.Contains(strings.ToLower(config.Name), lowered) {
			return true
		}
	}
	return false
}
