package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arunabhdas/xcodegen/pkg/spec"
)

const basicSpec = `
name: App
configs:
  Debug: debug
  Release: release
settings:
  groups: [base]
  configs:
    debug:
      SWIFT_OPTIMIZATION_LEVEL: "-Onone"
settingGroups:
  base:
    SWIFT_VERSION: "5.0"
fileGroups: [Configs]
configFiles:
  Debug: Configs/debug.xcconfig
targets:
  App:
    type: application
    platform: iOS
    sources:
      - Sources/App
      - path: Generated
        name: Gen
    dependencies:
      - target: Kit
      - framework: Vendor.framework
        embed: false
    prebuildScripts:
      - name: lint
        path: scripts/lint.sh
    postbuildScripts:
      - script: echo done
    scheme:
      configVariants: [Beta]
      testTargets: [KitTests]
  Kit:
    type: framework
    platform: iOS
    sources: [Sources/Kit]
schemes:
  App-CI:
    build:
      targets:
        App: all
        Kit: [testing]
    run:
      config: Debug
    test:
      config: Debug
`

func TestParseBytes_BasicSpec(t *testing.T) {
	p := NewParser()
	project, err := p.ParseBytes([]byte(basicSpec), "/tmp/project")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if project.Name != "App" {
		t.Errorf("Name = %q, want %q", project.Name, "App")
	}
	if project.BasePath != "/tmp/project" {
		t.Errorf("BasePath = %q, want %q", project.BasePath, "/tmp/project")
	}

	// Configs come out in name order with their declared types.
	if len(project.Configs) != 2 {
		t.Fatalf("Configs = %d entries, want 2", len(project.Configs))
	}
	if project.Configs[0].Name != "Debug" || project.Configs[0].Type != spec.ConfigTypeDebug {
		t.Errorf("Configs[0] = %+v, want Debug/debug", project.Configs[0])
	}
	if project.Configs[1].Name != "Release" || project.Configs[1].Type != spec.ConfigTypeRelease {
		t.Errorf("Configs[1] = %+v, want Release/release", project.Configs[1])
	}

	if got := project.Settings.Groups; len(got) != 1 || got[0] != "base" {
		t.Errorf("Settings.Groups = %v, want [base]", got)
	}
	if _, ok := project.Settings.ConfigSettings["debug"]; !ok {
		t.Errorf("Settings.ConfigSettings missing %q key", "debug")
	}
	if _, ok := project.SettingGroups["base"]; !ok {
		t.Error("SettingGroups missing base group")
	}
	if got := project.SettingGroups["base"].BuildSettings["SWIFT_VERSION"]; got != "5.0" {
		t.Errorf("base group SWIFT_VERSION = %v, want 5.0", got)
	}

	app := project.GetTarget("App")
	if app == nil {
		t.Fatal("GetTarget(App) = nil")
	}
	if len(app.Sources) != 2 {
		t.Fatalf("App sources = %d, want 2", len(app.Sources))
	}
	if app.Sources[0].Path != "Sources/App" {
		t.Errorf("Sources[0].Path = %q", app.Sources[0].Path)
	}
	if app.Sources[1].Path != "Generated" || app.Sources[1].Name != "Gen" {
		t.Errorf("Sources[1] = %+v, want path Generated name Gen", app.Sources[1])
	}

	if len(app.Dependencies) != 2 {
		t.Fatalf("App dependencies = %d, want 2", len(app.Dependencies))
	}
	if app.Dependencies[0].Type != spec.DependencyTypeTarget || app.Dependencies[0].Reference != "Kit" {
		t.Errorf("Dependencies[0] = %+v", app.Dependencies[0])
	}
	if app.Dependencies[1].Type != spec.DependencyTypeFramework {
		t.Errorf("Dependencies[1] = %+v", app.Dependencies[1])
	}
	if app.Dependencies[1].Embed == nil || *app.Dependencies[1].Embed {
		t.Errorf("Dependencies[1].Embed = %v, want false", app.Dependencies[1].Embed)
	}

	if len(app.PreBuildScripts) != 1 || !app.PreBuildScripts[0].IsPathSourced() {
		t.Errorf("PreBuildScripts = %+v, want one path-sourced script", app.PreBuildScripts)
	}
	if len(app.PostBuildScripts) != 1 || app.PostBuildScripts[0].IsPathSourced() {
		t.Errorf("PostBuildScripts = %+v, want one inline script", app.PostBuildScripts)
	}

	if app.Scheme == nil || len(app.Scheme.ConfigVariants) != 1 || app.Scheme.ConfigVariants[0] != "Beta" {
		t.Errorf("App scheme = %+v", app.Scheme)
	}

	if len(project.Schemes) != 1 {
		t.Fatalf("Schemes = %d, want 1", len(project.Schemes))
	}
	scheme := project.Schemes[0]
	if scheme.Name != "App-CI" {
		t.Errorf("Scheme name = %q", scheme.Name)
	}
	if len(scheme.Build.Targets) != 2 {
		t.Fatalf("Scheme build targets = %d, want 2", len(scheme.Build.Targets))
	}
	// Build targets are sorted by name: App ("all" => no restriction),
	// then Kit with an explicit list.
	if scheme.Build.Targets[0].Target != "App" || scheme.Build.Targets[0].BuildTypes != nil {
		t.Errorf("Build.Targets[0] = %+v", scheme.Build.Targets[0])
	}
	if scheme.Build.Targets[1].Target != "Kit" || len(scheme.Build.Targets[1].BuildTypes) != 1 {
		t.Errorf("Build.Targets[1] = %+v", scheme.Build.Targets[1])
	}
	if scheme.Run == nil || scheme.Run.Config != "Debug" {
		t.Errorf("Run = %+v", scheme.Run)
	}
	if scheme.Profile != nil {
		t.Errorf("Profile = %+v, want nil for absent action", scheme.Profile)
	}
}

func TestParseBytes_FlatSettings(t *testing.T) {
	data := []byte(`
name: App
settings:
  SWIFT_VERSION: "5.0"
  ENABLE_TESTABILITY: true
`)
	p := NewParser()
	project, err := p.ParseBytes(data, "/tmp")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if got := project.Settings.BuildSettings["SWIFT_VERSION"]; got != "5.0" {
		t.Errorf("BuildSettings[SWIFT_VERSION] = %v", got)
	}
	if len(project.Settings.Groups) != 0 {
		t.Errorf("Groups = %v, want empty for flat settings", project.Settings.Groups)
	}
}

func TestParseBytes_InvalidYAML(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseBytes([]byte("{{not yaml"), "/tmp"); err == nil {
		t.Error("ParseBytes() = nil error for invalid YAML")
	}
}

func TestParseBytes_InvalidDependency(t *testing.T) {
	data := []byte(`
targets:
  App:
    dependencies:
      - embed: true
`)
	p := NewParser()
	_, err := p.ParseBytes(data, "/tmp")
	if err == nil {
		t.Fatal("ParseBytes() = nil error for dependency with no reference")
	}
	if !strings.Contains(err.Error(), "dependency") {
		t.Errorf("error = %v, expected dependency context", err)
	}
}

func TestParse_Includes(t *testing.T) {
	dir := t.TempDir()

	base := `
configs:
  Debug: debug
  Release: release
settingGroups:
  base:
    SWIFT_VERSION: "5.0"
targets:
  Kit:
    type: framework
    platform: iOS
`
	outer := `
name: App
include: [base.yml]
configs:
  Release: release
targets:
  App:
    type: application
    platform: iOS
`
	if err := os.WriteFile(filepath.Join(dir, "base.yml"), []byte(base), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "project.yml"), []byte(outer), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewParser()
	project, err := p.Parse(filepath.Join(dir, "project.yml"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if project.Name != "App" {
		t.Errorf("Name = %q", project.Name)
	}
	if project.BasePath != dir {
		t.Errorf("BasePath = %q, want %q", project.BasePath, dir)
	}
	// Included entities merge in; the outer file's keys win.
	if !project.HasTarget("App") || !project.HasTarget("Kit") {
		t.Errorf("targets = %v, want App and Kit", project.TargetNames())
	}
	if !project.HasConfig("Debug") || !project.HasConfig("Release") {
		t.Errorf("configs = %v, want Debug and Release", project.ConfigNames())
	}
	if _, ok := project.SettingGroups["base"]; !ok {
		t.Error("SettingGroups missing included base group")
	}
}

func TestParse_CircularInclude(t *testing.T) {
	dir := t.TempDir()
	a := "include: [b.yml]\n"
	b := "include: [a.yml]\n"
	if err := os.WriteFile(filepath.Join(dir, "a.yml"), []byte(a), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.yml"), []byte(b), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewParser()
	_, err := p.Parse(filepath.Join(dir, "a.yml"))
	if err == nil {
		t.Fatal("Parse() = nil error for circular include")
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("error = %v, expected circular include report", err)
	}
}

func TestParse_MissingFile(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Parse() = nil error for missing file")
	}
}
