package main

import (
	"strings"
	"testing"

	specErrors "github.com/arunabhdas/xcodegen/pkg/spec/errors"
)

func TestValidationResult_String(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		result := validationResult{Spec: "project.yml", Valid: true}
		s := result.String()
		if !strings.Contains(s, "project.yml") || !strings.Contains(s, "valid") {
			t.Errorf("String() = %q", s)
		}
	})

	t.Run("defects render one per line", func(t *testing.T) {
		result := validationResult{
			Spec: "project.yml",
			Defects: []*specErrors.Defect{
				{Kind: specErrors.InvalidSettingsGroup, Group: "base"},
				{Kind: specErrors.InvalidFileGroup, Group: "Configs"},
			},
		}
		s := result.String()
		if !strings.Contains(s, "2 defect(s)") {
			t.Errorf("String() missing count: %q", s)
		}
		if got := strings.Count(s, "\t- "); got != 2 {
			t.Errorf("String() has %d defect lines, want 2: %q", got, s)
		}
	})
}

func TestVersionDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version is empty")
	}
	if GitCommit == "" || BuildDate == "" {
		t.Error("build metadata defaults are empty")
	}
}
