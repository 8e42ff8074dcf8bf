package validator

import (
	"github.com/arunabhdas/xcodegen/pkg/spec"
	specErrors "github.com/arunabhdas/xcodegen/pkg/spec/errors"
)

// validateScheme checks a top-level scheme: every build entry must name a
// declared target, and each optional action present on the scheme must name
// a declared configuration. The actions are checked independently, so one
// scheme can accumulate up to five distinct config defects.
func (v *Validator) validateScheme(scheme *spec.Scheme) {
	for _, buildTarget := range scheme.Build.Targets {
		if v.project.GetTarget(buildTarget.Target) == nil {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidSchemeTarget,
				Scheme:     scheme.Name,
				Target:     buildTarget.Target,
				Suggestion: specErrors.SuggestName(buildTarget.Target, v.project.TargetNames()),
			})
		}
	}

	for _, entry := range scheme.ExecutionActions() {
		if v.project.GetConfig(entry.Action.Config) == nil {
			v.defects.Add(&specErrors.Defect{
				Kind:       specErrors.InvalidSchemeConfig,
				Scheme:     scheme.Name,
				Config:     entry.Action.Config,
				Suggestion: specErrors.SuggestName(entry.Action.Config, v.project.ConfigNames()),
			})
		}
	}
}
